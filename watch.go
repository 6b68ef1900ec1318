package refbase

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch refreshes the retriever whenever the knowledge source changes
// on disk. It watches the source's directory (so editors that replace
// the file atomically are still seen) and triggers Refresh on write or
// create events for the source path, until ctx is done.
//
// Watch returns immediately; the watcher runs in a goroutine and shuts
// down with ctx. Refresh failures after a change are logged, leaving
// the set empty until the next successful reload.
func (r *Retriever) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	source := filepath.Clean(r.loader.Path())
	if err := watcher.Add(filepath.Dir(source)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != source {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if r.Refresh() {
					r.logger.Info("knowledge source refreshed", "source", source)
				} else {
					r.logger.Warn("refresh after source change failed", "source", source)
				}

			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.logger.Error("source watcher error", "err", watchErr)
			}
		}
	}()

	return nil
}
