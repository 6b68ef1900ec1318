package search

import "github.com/lodgekit/refbase/core"

// Monitor provides hooks to observe the ranking process.
// Implement this interface to trace intermediate steps during
// retrieval, e.g. for diagnostics or verbose CLI output.
type Monitor interface {
	Start(query string)
	AfterTokenize(tokens []string)
	AfterScoring(scored []core.ScoredDocument)
	Fallback(results []core.ScoredDocument)
	Finish(results []core.ScoredDocument)
}

// NopMonitor returns a Monitor that ignores every callback.
func NopMonitor() Monitor {
	return nopMonitor{}
}

type nopMonitor struct{}

var _ Monitor = nopMonitor{}

func (nopMonitor) Start(_ string)                       {}
func (nopMonitor) AfterTokenize(_ []string)             {}
func (nopMonitor) AfterScoring(_ []core.ScoredDocument) {}
func (nopMonitor) Fallback(_ []core.ScoredDocument)     {}
func (nopMonitor) Finish(_ []core.ScoredDocument)       {}
