package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/semstore/extract"
)

// Watcher reloads the extraction configuration when the config file changes,
// so keyword dictionaries can be tuned without a restart.
type Watcher struct {
	fsw    *fsnotify.Watcher
	logger *slog.Logger
	path   string
	done   chan struct{}
}

// WatchExtraction watches the given config file and invokes onChange with the
// reloaded extraction section after every valid change. Invalid or unparsable
// edits are logged and skipped; the previous configuration stays in effect.
func WatchExtraction(path string, logger *slog.Logger, onChange func(extract.Config)) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: editors often replace the file, which drops a
	// watch on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		fsw:    fsw,
		logger: logger,
		path:   filepath.Clean(path),
		done:   make(chan struct{}),
	}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func(extract.Config)) {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadFromFile(w.path)
			if err != nil {
				w.logger.Warn("config reload failed", slog.String("path", w.path), slog.String("error", err.Error()))
				continue
			}
			if err := cfg.Extraction.Validate(); err != nil {
				w.logger.Warn("rejected extraction config update", slog.String("error", err.Error()))
				continue
			}
			w.logger.Info("extraction config reloaded", slog.String("path", w.path))
			onChange(cfg.Extraction)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", slog.String("error", err.Error()))
		}
	}
}

// Close stops watching and waits for the reload loop to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
