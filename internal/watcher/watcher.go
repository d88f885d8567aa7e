package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"ausum/internal/logger"
)

type implWatcher struct {
	inputDir string
	handler  Handler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// New creates a Watcher that invokes handler for every media file
// created under inputDir.
func New(inputDir string, handler Handler, log logger.Logger) (Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsWatcher.Add(inputDir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  fsWatcher,
	}, nil
}

// Start begins monitoring the input directory. Files are handled
// strictly one at a time; a new arrival waits for the current run.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching for new media files in: %s", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isMediaFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-media file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New media file detected: %s", event.Name)

			// Small delay so the file is fully written before processing.
			time.Sleep(500 * time.Millisecond)

			if err := w.handler(ctx, event.Name); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				w.logger.Error(ctx, "Failed to process %s: %v", event.Name, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isMediaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	supported := []string{
		".mp4", ".mov", ".avi", ".mkv", ".webm", ".m4v", ".flv",
		".mp3", ".m4a", ".wav", ".opus", ".flac", ".ogg",
	}

	for _, s := range supported {
		if ext == s {
			return true
		}
	}

	return false
}
