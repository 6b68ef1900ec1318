package refbase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyGaps(t *testing.T) {
	r := newTestRetriever(t, sampleSource)
	ctx := context.Background()

	t.Run("flags unanswerable queries", func(t *testing.T) {
		analysis := r.IdentifyGaps(ctx, []string{"quantum laundry"})
		assert.Equal(t, 1, analysis.GapCount)
		assert.Equal(t, 1, analysis.TotalQueriesAnalyzed)
		require.Len(t, analysis.PotentialGaps, 1)
		assert.Equal(t, "quantum laundry", analysis.PotentialGaps[0].Query)
		// the fallback still produced results, and their count is reported
		assert.Equal(t, 3, analysis.PotentialGaps[0].ResultCount)
	})

	t.Run("answerable queries are not gaps", func(t *testing.T) {
		analysis := r.IdentifyGaps(ctx, []string{"checkin", "pool"})
		assert.Equal(t, 0, analysis.GapCount)
		assert.Empty(t, analysis.PotentialGaps)
		assert.Equal(t, 2, analysis.TotalQueriesAnalyzed)
	})

	t.Run("mixed batch keeps input order", func(t *testing.T) {
		queries := []string{"pool", "xyzzy", "checkin", "plugh"}
		analysis := r.IdentifyGaps(ctx, queries)
		assert.Equal(t, 2, analysis.GapCount)
		require.Len(t, analysis.PotentialGaps, 2)
		assert.Equal(t, "xyzzy", analysis.PotentialGaps[0].Query)
		assert.Equal(t, "plugh", analysis.PotentialGaps[1].Query)
	})

	t.Run("empty batch", func(t *testing.T) {
		analysis := r.IdentifyGaps(ctx, nil)
		assert.Equal(t, 0, analysis.GapCount)
		assert.Equal(t, 0, analysis.TotalQueriesAnalyzed)
		assert.Empty(t, analysis.PotentialGaps)
	})

	t.Run("large batch on a small pool", func(t *testing.T) {
		queries := make([]string, 50)
		for i := range queries {
			queries[i] = fmt.Sprintf("nonsense%02d", i)
		}
		analysis := r.IdentifyGaps(ctx, queries)
		assert.Equal(t, 50, analysis.GapCount)
		require.Len(t, analysis.PotentialGaps, 50)
		for i, gap := range analysis.PotentialGaps {
			assert.Equal(t, queries[i], gap.Query)
		}
	})
}

func TestIdentifyGaps_EmptySet(t *testing.T) {
	r := newTestRetriever(t, "")
	ctx := context.Background()

	// no documents at all: even the fallback is empty
	analysis := r.IdentifyGaps(ctx, []string{"anything"})
	assert.Equal(t, 1, analysis.GapCount)
	require.Len(t, analysis.PotentialGaps, 1)
	assert.Equal(t, 0, analysis.PotentialGaps[0].ResultCount)
}

func TestIdentifyGaps_AfterClose(t *testing.T) {
	r := newTestRetriever(t, sampleSource)
	require.NoError(t, r.Close())

	// the released pool falls back to inline execution
	analysis := r.IdentifyGaps(context.Background(), []string{"checkin"})
	assert.Equal(t, 0, analysis.GapCount)
	assert.Equal(t, 1, analysis.TotalQueriesAnalyzed)
}
