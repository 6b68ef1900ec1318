package search

import (
	"sort"
	"strings"

	"github.com/lodgekit/refbase/core"
)

// TitleBonus is the flat score added per query token that appears as a
// substring of a document title.
const TitleBonus = 2

// Rank scores the documents against the query and returns the topK
// most relevant as ScoredDocuments.
//
// An empty or whitespace-only query returns nil immediately, without
// fallback. Otherwise each surviving token contributes its substring
// occurrence count in the lowercased content, plus TitleBonus when it
// appears anywhere in the lowercased title. Documents scoring zero are
// excluded. Ties keep set order: equal-score documents are returned in
// the order they occupy in docs.
//
// When nothing scores above zero, the first topK documents are
// returned in set order with score 0.0 rather than an empty result.
// topK values below one mean no limit.
func Rank(docs []core.Document, query string, topK int, m Monitor) []core.ScoredDocument {
	if m == nil {
		m = NopMonitor()
	}
	m.Start(query)

	if strings.TrimSpace(query) == "" {
		m.Finish(nil)
		return nil
	}

	if topK < 1 {
		topK = len(docs)
	}

	tokens := Tokenize(query)
	m.AfterTokenize(tokens)

	scored := make([]core.ScoredDocument, 0, len(docs))
	for _, doc := range docs {
		if score := scoreDocument(doc, tokens); score > 0 {
			scored = append(scored, doc.Scored(score))
		}
	}
	m.AfterScoring(scored)

	if len(scored) == 0 {
		fallback := make([]core.ScoredDocument, 0, topK)
		for _, doc := range docs {
			if len(fallback) == topK {
				break
			}
			fallback = append(fallback, doc.Scored(0))
		}
		m.Fallback(fallback)
		m.Finish(fallback)
		return fallback
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}
	m.Finish(scored)
	return scored
}

// scoreDocument sums, over all tokens, the case-insensitive substring
// occurrences of the token in the content, plus TitleBonus per token
// present in the title. Substring counting is intentional: a token may
// match inside a larger word.
func scoreDocument(doc core.Document, tokens []string) float64 {
	content := strings.ToLower(doc.Content)
	title := strings.ToLower(doc.Title)

	score := 0
	for _, tok := range tokens {
		score += strings.Count(content, tok)
		if strings.Contains(title, tok) {
			score += TitleBonus
		}
	}
	return float64(score)
}
