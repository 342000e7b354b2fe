// Package watch re-reads a file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// File calls fn with the trimmed content of path once at start and again
// each time the content changes. It watches the parent directory so that
// editors which save by rename are followed. File returns nil when ctx is
// done, or the error from the initial read or watcher setup.
//
// A read that fails after start is logged and skipped; fn is not called.
// An empty file after start is also skipped.
func File(ctx context.Context, path string, fn func(content string)) error {
	path = filepath.Clean(path)
	content, err := read(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	slog.Info("watch: watching for changes", "path", path)
	fn(content)
	last := content

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			content, err := read(path)
			if err != nil {
				slog.Error("watch: reload failed", "path", path, "err", err)
				continue
			}
			// Editors often emit several writes per save, and a truncate
			// before the write reads as empty.
			if content == last || content == "" {
				continue
			}
			last = content
			slog.Debug("watch: changed", "path", path)
			fn(content)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch: watcher error", "err", err)
		}
	}
}

func read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
