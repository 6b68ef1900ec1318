package store

import (
	"sync"

	"github.com/lodgekit/refbase/core"
)

// DocumentSet is the ordered, in-memory collection of documents owned
// by the retriever. Insertion order is preserved and serves as the
// fallback ordering when no query terms match.
//
// Readers may run concurrently; writers take an exclusive lock. The
// set is never partially updated: Replace swaps the whole generation
// and Clear empties it.
type DocumentSet struct {
	mu   sync.RWMutex
	docs []core.Document
}

// NewDocumentSet creates an empty document set.
func NewDocumentSet() *DocumentSet {
	return &DocumentSet{}
}

// Replace swaps in a new load generation wholesale. The input slice is
// copied so later caller mutations cannot reach the set.
func (s *DocumentSet) Replace(docs []core.Document) {
	copied := make([]core.Document, len(docs))
	copy(copied, docs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = copied
}

// Clear empties the set.
func (s *DocumentSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = nil
}

// Add appends a document, preserving insertion order.
func (s *DocumentSet) Add(doc core.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, doc)
}

// Len returns the current document count.
func (s *DocumentSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Snapshot returns a copy of the documents in set order. The copy is
// safe to score outside the lock while writers proceed.
func (s *DocumentSet) Snapshot() []core.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Document, len(s.docs))
	copy(out, s.docs)
	return out
}
