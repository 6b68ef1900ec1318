// Copyright 2026 Lodgekit Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package refbase

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"strings"

	"github.com/panjf2000/ants/v2"

	"github.com/lodgekit/refbase/core"
	"github.com/lodgekit/refbase/loader"
	"github.com/lodgekit/refbase/search"
	"github.com/lodgekit/refbase/store"
)

// Retriever answers free-text queries against the flattened knowledge
// source. It owns the in-memory document set and exposes the query,
// refresh, insertion, stats, and gap-analysis operations.
//
// Load failures never surface as errors: a Retriever whose source is
// missing or malformed starts with an empty set and logs the cause.
type Retriever struct {
	cfg     *Config
	set     *store.DocumentSet
	loader  *loader.Loader
	pool    *ants.Pool
	monitor search.Monitor
	logger  *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithMonitor sets a search.Monitor observing every Retrieve call.
// Default is the no-op monitor.
func WithMonitor(m search.Monitor) Option {
	return func(r *Retriever) error {
		if m == nil {
			m = search.NopMonitor()
		}
		r.monitor = m
		return nil
	}
}

// WithPoolSize sets the worker pool size used by IdentifyGaps.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Retriever) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// New creates a Retriever for the configured knowledge source and
// performs the initial load. cfg may be nil, in which case defaults
// apply. The only errors returned concern the configuration and the
// worker pool; source problems degrade to an empty document set.
func New(cfg *Config, opts ...Option) (*Retriever, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Retriever{
		cfg:     cfg,
		set:     store.NewDocumentSet(),
		pool:    pool,
		monitor: search.NopMonitor(),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			r.pool.Release()
			return nil, err
		}
	}

	r.loader = loader.New(cfg.resolveSourcePath(), loader.WithLogger(r.logger))

	// Initial load degrades silently: callers always receive a
	// (possibly empty) retriever.
	if err := r.reload(); err != nil {
		r.logger.Debug("starting with empty document set", "source", r.loader.Path())
	}

	return r, nil
}

// RetrieveOption adjusts a single Retrieve call.
type RetrieveOption func(*retrieveOptions)

type retrieveOptions struct {
	topK      int
	threshold float64
}

// WithResultCount overrides the configured default result count for
// one call.
func WithResultCount(topK int) RetrieveOption {
	return func(o *retrieveOptions) {
		if topK > 0 {
			o.topK = topK
		}
	}
}

// WithThreshold supplies a similarity threshold. The raw token-overlap
// score has no normalized upper bound, so the value is accepted for
// interface compatibility and recorded, but does not filter results.
func WithThreshold(threshold float64) RetrieveOption {
	return func(o *retrieveOptions) {
		o.threshold = threshold
	}
}

// Retrieve returns the documents most relevant to the query, ranked
// by token-overlap score. An empty or whitespace-only query returns
// nil. When no document matches, the head of the set is returned with
// zero scores instead of an empty result.
//
// Retrieval is synchronous and in-memory; ctx is accepted for API
// symmetry and is not consulted.
func (r *Retriever) Retrieve(ctx context.Context, query string, opts ...RetrieveOption) []core.ScoredDocument {
	_ = ctx

	options := retrieveOptions{topK: r.cfg.TopK}
	for _, opt := range opts {
		opt(&options)
	}
	if options.threshold != 0 {
		r.logger.Debug("similarity threshold accepted but not applied",
			"threshold", options.threshold)
	}

	return search.Rank(r.set.Snapshot(), query, options.topK, r.monitor)
}

// SearchByKeywords joins the keywords with spaces and delegates to
// Retrieve. An empty keyword list returns nil.
func (r *Retriever) SearchByKeywords(ctx context.Context, keywords []string, opts ...RetrieveOption) []core.ScoredDocument {
	if len(keywords) == 0 {
		return nil
	}
	return r.Retrieve(ctx, strings.Join(keywords, " "), opts...)
}

// AddDocument appends an in-memory document under the custom id
// namespace. The title comes from metadata["title"], falling back to
// the id. Nothing is written back to the knowledge source, and the
// document is lost on the next refresh.
//
// It reports false only on internal failure; no shape validation is
// performed on content or metadata.
func (r *Retriever) AddDocument(content string, metadata map[string]string) bool {
	if metadata == nil {
		r.logger.Error("failed to add document", "err", core.ErrNilMetadata)
		return false
	}

	id := core.CustomID(r.set.Len())
	title := metadata[core.MetaTitle]
	if title == "" {
		title = id
	}

	r.set.Add(core.Document{
		Id:       id,
		Title:    title,
		Content:  content,
		Metadata: metadata,
	})
	return true
}

// Refresh clears the document set and reloads it from the knowledge
// source. It reports false when the reload failed; the set is then
// empty, never a mix of old and new entries.
func (r *Retriever) Refresh() bool {
	r.set.Clear()
	return r.reload() == nil
}

// Stats reports the current document count and the source identifier.
func (r *Retriever) Stats() core.DocumentStats {
	return core.DocumentStats{
		TotalSections: r.set.Len(),
		Source:        r.loader.SourceName(),
	}
}

// Close releases the worker pool. The Retriever must not be used
// after Close.
func (r *Retriever) Close() error {
	r.pool.Release()
	return nil
}

// reload replaces the document set from the source, logging and
// emptying the set on failure. The returned error is internal; it
// never crosses the public boundary directly.
func (r *Retriever) reload() error {
	docs, err := r.loader.Load()
	if err != nil {
		r.set.Clear()
		if errors.Is(err, loader.ErrSourceNotFound) {
			r.logger.Warn("knowledge source missing", "err", err)
		} else {
			r.logger.Error("failed to load knowledge source", "err", err)
		}
		return err
	}
	r.set.Replace(docs)
	return nil
}
