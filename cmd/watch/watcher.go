package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/durak-nlp/durak/stopwords"
)

const debounceInterval = 300 * time.Millisecond

func watchAndValidate(ctx context.Context, metadataPath string, caseSensitive bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	baseDir := filepath.Dir(metadataPath)
	if err := addWatchDirs(watcher, baseDir); err != nil {
		return fmt.Errorf("failed to watch directories: %w", err)
	}

	validateBundle(metadataPath, caseSensitive)

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevantChange(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, func() {
				validateBundle(metadataPath, caseSensitive)
			})

			if event.Has(fsnotify.Create) {
				addIfDirectory(watcher, event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", "err", err)
		}
	}
}

// validateBundle reparses the document and resolves every declared resource
// with a fresh resolver, so edits are always picked up. The shared per-path
// resolver cache is deliberately bypassed: its entries are never
// invalidated.
func validateBundle(metadataPath string, caseSensitive bool) {
	resolver, err := stopwords.NewResolverFromPath(metadataPath)
	if err != nil {
		log.Error("metadata path invalid", "path", metadataPath, "err", err)
		return
	}
	names, err := resolver.Names()
	if err != nil {
		log.Error("metadata invalid", "path", metadataPath, "err", err)
		return
	}

	failures := 0
	for _, name := range names {
		set, err := resolver.Resolve(name, caseSensitive)
		if err != nil {
			failures++
			log.Error("resource failed to resolve", "resource", name, "err", err)
			continue
		}
		log.Debug("resource resolved", "resource", name, "words", set.Len())
	}
	if failures == 0 {
		log.Info("bundle valid", "path", metadataPath, "resources", len(names))
	} else {
		log.Warn("bundle has failing resources", "path", metadataPath, "failures", failures, "resources", len(names))
	}
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func addIfDirectory(watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if err := watcher.Add(path); err != nil {
		log.Error("failed to watch new directory", "path", path, "err", err)
	}
}

func isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	ext := filepath.Ext(event.Name)
	return ext == ".json" || ext == ".txt" || ext == ""
}
