package batch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"outliner/internal/extractor"
)

// Watch runs an initial batch pass, then keeps watching InputDir and
// processes supported files as they appear. Blocks until the context is
// canceled.
func Watch(ctx context.Context, opts Options) error {
	if err := Run(ctx, opts); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(opts.InputDir); err != nil {
		return fmt.Errorf("watch %s: %w", opts.InputDir, err)
	}
	opts.Log.Info("watching for new files", "dir", opts.InputDir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Renames cover editors and download managers that write to a
			// temp name first.
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !extractor.IsSupportedExtension(event.Name) {
				continue
			}
			opts.Log.Info("new file detected", "file", filepath.Base(event.Name))
			processFile(ctx, event.Name, opts)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.Log.Warn("watcher error", "error", err)
		}
	}
}
