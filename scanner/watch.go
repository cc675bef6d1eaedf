// scanner/watch.go
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for more events before checking.
const DefaultDebounce = 300 * time.Millisecond

// Watch re-checks supported files under root whenever they are written or created.
// Events arriving within debounce of each other are checked as one batch and each
// batch result is passed to onResult. Watch blocks until ctx is done.
func (s *Session) Watch(ctx context.Context, root string, debounce time.Duration, onResult func(*CheckResult, error)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrPathNotFound
		}
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	singleFile := !info.IsDir()
	if singleFile {
		err = watcher.Add(filepath.Dir(absRoot))
	} else {
		err = s.addRecursive(watcher, absRoot, absRoot)
	}
	if err != nil {
		return fmt.Errorf("watching %s: %w", root, err)
	}
	s.logger.Info("watching for changes", "path", absRoot)

	pending := make(map[string]struct{})
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !singleFile && event.Has(fsnotify.Create) {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := s.addRecursive(watcher, event.Name, absRoot); err != nil {
						s.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
					continue
				}
			}
			if !s.watches(event.Name, absRoot, singleFile) {
				continue
			}
			s.logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
			pending[event.Name] = struct{}{}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", "error", err)

		case <-timer.C:
			files := make([]string, 0, len(pending))
			for path := range pending {
				files = append(files, path)
			}
			clear(pending)
			slices.Sort(files)
			result, err := s.CheckFiles(ctx, files)
			onResult(result, err)
		}
	}
}

func (s *Session) skipsDir(path, absRoot string) bool {
	if path == absRoot {
		return false
	}
	name := filepath.Base(path)
	if skippedDirNames[name] || (strings.HasPrefix(name, ".") && len(name) > 1) {
		return true
	}
	return s.isExcluded(path, true) || s.isIgnored(path, true, absRoot)
}

func (s *Session) addRecursive(watcher *fsnotify.Watcher, dir, absRoot string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if s.skipsDir(path, absRoot) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// watches reports whether a changed path is one Discover would have returned.
func (s *Session) watches(path, absRoot string, singleFile bool) bool {
	if singleFile {
		return path == absRoot
	}
	if fi, err := os.Stat(path); err != nil || fi.IsDir() {
		return false
	}
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") && !(s.opts.ScanConfigs && strings.HasPrefix(name, ".env")) {
		return false
	}
	if !s.isSupported(path) || s.isExcluded(path, false) {
		return false
	}
	for dir := filepath.Dir(path); dir != absRoot && strings.HasPrefix(dir, absRoot); dir = filepath.Dir(dir) {
		if s.skipsDir(dir, absRoot) {
			return false
		}
	}
	return !s.isIgnored(path, false, absRoot)
}
