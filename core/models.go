package core

import "fmt"

// Metadata keys populated by the loader and honored by the retriever.
const (
	// MetaSource identifies the origin of a document, typically the
	// base name of the knowledge file it was flattened from.
	MetaSource = "source"

	// MetaPath duplicates the document title for caller convenience.
	MetaPath = "path"

	// MetaTitle, when present on manually added documents, becomes the
	// document title.
	MetaTitle = "title"
)

// SourceID returns the identifier for the i-th document flattened from
// the knowledge source. Source-derived ids and custom ids occupy
// disjoint namespaces so that repeated inserts and refreshes cannot
// produce colliding identifiers.
func SourceID(i int) string {
	return fmt.Sprintf("yaml_%d", i)
}

// CustomID returns the identifier for a manually added document, where
// n is the document count at insertion time.
func CustomID(n int) string {
	return fmt.Sprintf("custom_%d", n)
}

// Document is the unit of retrieval: a flattened section of the
// knowledge source, or a manually added entry.
type Document struct {
	// Id is unique within a load generation. Ids are recomputed from
	// scratch on refresh and are not stable across generations.
	Id string

	// Title is the " / "-joined path of ancestor keys describing where
	// in the source tree the content originated. May be empty.
	Title string

	// Content is the textual payload: a newline-joined rendering of a
	// sequence's elements, or the string form of a scalar.
	Content string

	// Metadata carries at least MetaSource and MetaPath for documents
	// produced by the loader. Manually added documents carry whatever
	// the caller supplied.
	Metadata map[string]string
}

// Scored pairs the document's payload with a relevance score for
// returning to callers.
func (d Document) Scored(score float64) ScoredDocument {
	return ScoredDocument{
		Content:  d.Content,
		Metadata: d.Metadata,
		Score:    score,
	}
}

// ScoredDocument is a retrieval result. Score is the raw token-overlap
// score cast to float; it has no normalized upper bound and is not a
// cosine value.
type ScoredDocument struct {
	Content  string
	Metadata map[string]string
	Score    float64
}

// DocumentStats summarizes the loaded document set.
type DocumentStats struct {
	TotalSections int
	Source        string
}

// GapQuery is a query flagged by gap analysis together with the number
// of results it produced.
type GapQuery struct {
	Query       string
	ResultCount int
}

// GapAnalysis reports queries the knowledge source could not answer.
type GapAnalysis struct {
	PotentialGaps        []GapQuery
	GapCount             int
	TotalQueriesAnalyzed int
}
