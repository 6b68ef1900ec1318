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
	"errors"
	"os"
	"strconv"

	"github.com/lodgekit/refbase/loader"
)

// Environment variables honored by ConfigFromEnv.
const (
	// EnvTopK overrides the default result count.
	EnvTopK = "RAG_TOP_K"

	// EnvBaseDir overrides the base directory the knowledge file is
	// resolved against.
	EnvBaseDir = "REFBASE_BASE_DIR"
)

// DefaultTopK is the result count used when neither configuration nor
// a retrieve option supplies one.
const DefaultTopK = 5

// Config holds the tunable parameters of a Retriever.
type Config struct {
	// TopK is the default number of results returned by Retrieve when
	// the caller does not override it.
	TopK int

	// SourcePath, when set, is used verbatim as the knowledge file
	// location and disables filename resolution.
	SourcePath string

	// BaseDir is the directory the knowledge filename is resolved
	// against. Optional.
	BaseDir string

	// Filename is the knowledge file name.
	// Default: loader.DefaultFilename.
	Filename string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithTopK sets the default result count.
func WithTopK(topK int) ConfigOption {
	return func(c *Config) {
		c.TopK = topK
	}
}

// WithSourcePath sets an explicit knowledge file path.
func WithSourcePath(path string) ConfigOption {
	return func(c *Config) {
		c.SourcePath = path
	}
}

// WithBaseDir sets the directory the knowledge filename is resolved
// against.
func WithBaseDir(dir string) ConfigOption {
	return func(c *Config) {
		c.BaseDir = dir
	}
}

// WithFilename sets the knowledge file name.
func WithFilename(name string) ConfigOption {
	return func(c *Config) {
		c.Filename = name
	}
}

// DefaultConfig returns a Config with the stock defaults: five results
// and the default filename resolved against the working directory.
func DefaultConfig() *Config {
	return &Config{
		TopK:     DefaultTopK,
		Filename: loader.DefaultFilename,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// ConfigFromEnv creates a Config from the defaults, the environment,
// and then the provided options, in that order. Unparseable or
// non-positive RAG_TOP_K values are ignored.
func ConfigFromEnv(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	if v := os.Getenv(EnvTopK); v != "" {
		if topK, err := strconv.Atoi(v); err == nil && topK > 0 {
			cfg.TopK = topK
		}
	}
	if v := os.Getenv(EnvBaseDir); v != "" {
		cfg.BaseDir = v
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.TopK < 1 {
		return errors.New("config: TopK must be at least 1")
	}
	if c.SourcePath == "" && c.Filename == "" {
		return errors.New("config: Filename is required when SourcePath is unset")
	}
	return nil
}

// resolveSourcePath applies the resolution rule: an explicit path
// wins, otherwise the filename is resolved against the base directory.
func (c *Config) resolveSourcePath() string {
	if c.SourcePath != "" {
		return c.SourcePath
	}
	return loader.Resolve(c.BaseDir, c.Filename)
}
