package refbase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lodgekit/refbase/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultTopK, cfg.TopK)
	assert.Equal(t, loader.DefaultFilename, cfg.Filename)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithTopK(9),
		WithBaseDir("/srv/kb"),
		WithFilename("handbook.yaml"),
	)
	assert.Equal(t, 9, cfg.TopK)
	assert.Equal(t, "/srv/kb", cfg.BaseDir)
	assert.Equal(t, "handbook.yaml", cfg.Filename)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("top k must be positive", func(t *testing.T) {
		assert.Error(t, NewConfig(WithTopK(0)).Validate())
		assert.Error(t, NewConfig(WithTopK(-2)).Validate())
	})

	t.Run("filename required without source path", func(t *testing.T) {
		cfg := NewConfig(WithFilename(""))
		assert.Error(t, cfg.Validate())

		cfg = NewConfig(WithFilename(""), WithSourcePath("/tmp/kb.yaml"))
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("reads RAG_TOP_K", func(t *testing.T) {
		t.Setenv(EnvTopK, "7")
		assert.Equal(t, 7, ConfigFromEnv().TopK)
	})

	t.Run("ignores junk values", func(t *testing.T) {
		t.Setenv(EnvTopK, "lots")
		assert.Equal(t, DefaultTopK, ConfigFromEnv().TopK)

		t.Setenv(EnvTopK, "-3")
		assert.Equal(t, DefaultTopK, ConfigFromEnv().TopK)
	})

	t.Run("reads base dir", func(t *testing.T) {
		t.Setenv(EnvBaseDir, "/srv/kb")
		assert.Equal(t, "/srv/kb", ConfigFromEnv().BaseDir)
	})

	t.Run("options apply after the environment", func(t *testing.T) {
		t.Setenv(EnvTopK, "7")
		assert.Equal(t, 2, ConfigFromEnv(WithTopK(2)).TopK)
	})
}

func TestConfig_ResolveSourcePath(t *testing.T) {
	dir := t.TempDir()
	inBase := filepath.Join(dir, loader.DefaultFilename)
	require.NoError(t, os.WriteFile(inBase, []byte("a: b\n"), 0o644))

	t.Run("explicit path wins", func(t *testing.T) {
		cfg := NewConfig(WithSourcePath("/explicit.yaml"), WithBaseDir(dir))
		assert.Equal(t, "/explicit.yaml", cfg.resolveSourcePath())
	})

	t.Run("base dir resolution", func(t *testing.T) {
		cfg := NewConfig(WithBaseDir(dir))
		assert.Equal(t, inBase, cfg.resolveSourcePath())
	})

	t.Run("bare filename when base dir lacks the file", func(t *testing.T) {
		cfg := NewConfig(WithBaseDir(t.TempDir()))
		assert.Equal(t, loader.DefaultFilename, cfg.resolveSourcePath())
	})
}
