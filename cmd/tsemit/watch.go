package main

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/webcarrot/tsemit/internal/errors"
	"github.com/webcarrot/tsemit/internal/fs"
	"github.com/webcarrot/tsemit/internal/logger"
)

// Editors often write a file in several steps
const watchDebounce = 100 * time.Millisecond

// watchDocuments calls "rebuild" after any of "paths" changes, until the
// context is done. Directories are watched instead of the files themselves
// so that editors which replace a file by renaming over it keep working.
func watchDocuments(ctx context.Context, files fs.FS, paths []string, rebuild func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating file watcher")
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, ok := files.Abs(path)
		if !ok {
			return errors.Newf("cannot resolve %q", path)
		}
		watched[abs] = true
		dir := files.Dir(abs)
		if !dirs[dir] {
			dirs[dir] = true
			if err := watcher.Add(dir); err != nil {
				return errors.Wrapf(err, "watching %q", dir)
			}
		}
	}
	logger.Logger.Infow("Watching for changes", "documents", len(watched), "directories", len(dirs))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Logger.Infow("Stopped watching")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if abs, ok := files.Abs(event.Name); !ok || !watched[abs] {
				continue
			}
			logger.Logger.Debugw("Document changed", "path", event.Name, "op", event.Op.String())
			pending = time.After(watchDebounce)

		case <-pending:
			pending = nil
			rebuild()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Logger.Warnw("File watcher error", "error", err)
		}
	}
}
