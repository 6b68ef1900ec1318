package refbase

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_RefreshesOnSourceChange(t *testing.T) {
	path := writeSource(t, "a: old content\n")
	r, err := New(NewConfig(WithSourcePath(path)))
	require.NoError(t, err)
	defer r.Close()
	require.Equal(t, 1, r.Stats().TotalSections)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, r.Watch(ctx))

	require.NoError(t, os.WriteFile(path, []byte("a: new\nb: more\nc: sections\n"), 0o644))

	assert.Eventually(t, func() bool {
		return r.Stats().TotalSections == 3
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatch_StopsWithContext(t *testing.T) {
	path := writeSource(t, "a: content\n")
	r, err := New(NewConfig(WithSourcePath(path)))
	require.NoError(t, err)
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, r.Watch(ctx))
	cancel()

	// give the watcher goroutine a moment to wind down, then change
	// the source; the set must stay on the old generation
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("a: x\nb: y\n"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 1, r.Stats().TotalSections)
}

func TestWatch_MissingDirectory(t *testing.T) {
	cfg := NewConfig(WithSourcePath("/nonexistent-dir-for-watch/reference.yaml"))
	r, err := New(cfg)
	require.NoError(t, err)
	defer r.Close()

	assert.Error(t, r.Watch(context.Background()))
}
