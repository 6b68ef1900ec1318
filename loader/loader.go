package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lodgekit/refbase/core"
	"github.com/lodgekit/refbase/flatten"
)

// DefaultFilename is the knowledge file name looked up when no
// explicit source path is configured.
const DefaultFilename = "reference.yaml"

// Loader reads the YAML knowledge source and produces the flattened
// document set for one load generation.
type Loader struct {
	path   string
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// New creates a loader for the knowledge file at path.
func New(path string, opts ...Option) *Loader {
	l := &Loader{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve returns the source path for a base directory and filename.
// When baseDir is set and the file exists under it, that location
// wins; otherwise the bare filename is used, resolved against the
// working directory.
func Resolve(baseDir, filename string) string {
	if filename == "" {
		filename = DefaultFilename
	}
	if baseDir != "" {
		candidate := filepath.Join(baseDir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return filename
}

// Path returns the resolved source path.
func (l *Loader) Path() string {
	return l.path
}

// SourceName returns the origin identifier recorded in document
// metadata: the base name of the source path.
func (l *Loader) SourceName() string {
	return filepath.Base(l.path)
}

// Load reads and flattens the knowledge source into documents, with
// sequential ids assigned in traversal order and metadata identifying
// the source. It returns ErrSourceNotFound when the file is absent and
// ErrSourceMalformed when it cannot be parsed; callers decide whether
// those degrade silently.
func (l *Loader) Load() ([]core.Document, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, l.path)
		}
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceMalformed, l.path, err)
	}

	sections := flatten.Flatten(&root)
	source := l.SourceName()

	docs := make([]core.Document, len(sections))
	for i, sec := range sections {
		docs[i] = core.Document{
			Id:      core.SourceID(i),
			Title:   sec.Title,
			Content: sec.Content,
			Metadata: map[string]string{
				core.MetaSource: source,
				core.MetaPath:   sec.Title,
			},
		}
	}

	l.logger.Info("loaded knowledge sections", "count", len(docs), "source", l.path)
	return docs, nil
}
