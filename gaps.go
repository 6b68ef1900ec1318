package refbase

import (
	"context"
	"sync"

	"github.com/lodgekit/refbase/core"
	"github.com/lodgekit/refbase/search"
)

// gapTopK is the result count used when probing each recent query.
const gapTopK = 3

// IdentifyGaps reports which of the recent queries the knowledge
// source could not answer. A query counts as a gap when it produced no
// results at all or when every result came from the zero-score
// fallback.
//
// The queries are scored concurrently on the retriever's worker pool;
// the reported gaps keep the input order. This is a read-only
// diagnostic: the document set is not mutated.
func (r *Retriever) IdentifyGaps(ctx context.Context, recentQueries []string) core.GapAnalysis {
	_ = ctx

	results := make([][]core.ScoredDocument, len(recentQueries))
	var wg sync.WaitGroup
	for i, query := range recentQueries {
		i, query := i, query
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = search.Rank(r.set.Snapshot(), query, gapTopK, nil)
		}
		// A released pool degrades to inline execution.
		if err := r.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	analysis := core.GapAnalysis{
		TotalQueriesAnalyzed: len(recentQueries),
	}
	for i, query := range recentQueries {
		if !isGap(results[i]) {
			continue
		}
		analysis.PotentialGaps = append(analysis.PotentialGaps, core.GapQuery{
			Query:       query,
			ResultCount: len(results[i]),
		})
	}
	analysis.GapCount = len(analysis.PotentialGaps)
	return analysis
}

func isGap(results []core.ScoredDocument) bool {
	if len(results) == 0 {
		return true
	}
	for _, res := range results {
		if res.Score != 0 {
			return false
		}
	}
	return true
}
