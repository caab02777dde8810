package cssmix

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces bursts of editor writes into one run
const watchDebounce = 100 * time.Millisecond

// Watch runs Expand once, then again every time a file under
// config.SourceDir changes, until ctx is cancelled. onResult receives the
// outcome of every run. Directories created after startup are watched too.
func Watch(ctx context.Context, config Config, onResult func(*ExpandResult, error)) error {
	logger := loggerOrDiscard(config.Logger)

	if config.OutputDir == "" {
		return ErrNoOutputDir
	}
	if rel, err := filepath.Rel(config.SourceDir, config.OutputDir); err == nil && !escapesDir(rel) {
		return fmt.Errorf("output directory %s must not be inside source directory %s", config.OutputDir, config.SourceDir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, config.SourceDir); err != nil {
		return err
	}

	onResult(Expand(ctx, config))

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				watchNewDir(watcher, event.Name, logger)
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onResult(Expand(ctx, config))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}

// watchNewDir adds watches for a path that appeared after startup. Paths that
// vanished before they could be walked, such as editor swap files, are ignored.
func watchNewDir(watcher *fsnotify.Watcher, path string, logger *log.Logger) {
	if err := addWatchDirs(watcher, path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("watch new directory", "path", path, "err", err)
	}
}

// addWatchDirs adds root and every directory below it to the watcher.
// Non-directories are ignored.
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
