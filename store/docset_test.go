package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/lodgekit/refbase/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocs(n int) []core.Document {
	docs := make([]core.Document, n)
	for i := range docs {
		docs[i] = core.Document{
			Id:       core.SourceID(i),
			Title:    fmt.Sprintf("section %d", i),
			Content:  fmt.Sprintf("content %d", i),
			Metadata: map[string]string{core.MetaSource: "reference.yaml"},
		}
	}
	return docs
}

func TestDocumentSet_ReplaceAndSnapshot(t *testing.T) {
	set := NewDocumentSet()
	assert.Equal(t, 0, set.Len())

	docs := sampleDocs(3)
	set.Replace(docs)
	require.Equal(t, 3, set.Len())

	snap := set.Snapshot()
	assert.Equal(t, docs, snap)

	t.Run("snapshot is detached from the set", func(t *testing.T) {
		snap[0].Content = "mutated"
		assert.Equal(t, "content 0", set.Snapshot()[0].Content)
	})

	t.Run("replace input is copied", func(t *testing.T) {
		docs[1].Content = "mutated"
		assert.Equal(t, "content 1", set.Snapshot()[1].Content)
	})
}

func TestDocumentSet_ReplaceIsWholesale(t *testing.T) {
	set := NewDocumentSet()
	set.Replace(sampleDocs(5))
	set.Replace(sampleDocs(2))
	assert.Equal(t, 2, set.Len())
}

func TestDocumentSet_AddPreservesOrder(t *testing.T) {
	set := NewDocumentSet()
	set.Replace(sampleDocs(2))
	set.Add(core.Document{Id: core.CustomID(2), Content: "added"})

	snap := set.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "custom_2", snap[2].Id)
}

func TestDocumentSet_Clear(t *testing.T) {
	set := NewDocumentSet()
	set.Replace(sampleDocs(4))
	set.Clear()
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Snapshot())
}

func TestDocumentSet_ConcurrentReaders(t *testing.T) {
	set := NewDocumentSet()
	set.Replace(sampleDocs(10))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Len(t, set.Snapshot(), set.Len())
			}
		}()
	}
	wg.Wait()
}
