package vault

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces bursts of filesystem events (editors often
// write a file several times in quick succession).
const debounceWindow = 50 * time.Millisecond

// Event signals that the note collection changed on disk. Consumers
// typically respond by taking a fresh snapshot via Notes.
type Event struct {
	Path string
	Time time.Time
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("vault change: %s", e.Path)
}

// Watch emits a debounced Event whenever a matching note file changes.
// The channel closes when ctx is done. Watcher errors are logged, not
// fatal.
func (v *Vault) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := v.addRecursive(watcher); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	events := make(chan Event)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()

		timer := time.NewTimer(debounceWindow)
		if !timer.Stop() {
			<-timer.C
		}
		var lastPath string

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				// New directories must be picked up for recursive coverage.
				if ev.Op.Has(fsnotify.Create) {
					if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
						_ = watcher.Add(ev.Name)
						continue
					}
				}
				if !v.matches(ev.Name) {
					continue
				}
				lastPath = ev.Name
				timer.Reset(debounceWindow)

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				v.Logger.Warn("watch error", "error", err)

			case <-timer.C:
				select {
				case events <- Event{Path: lastPath, Time: time.Now()}:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})

	return events, nil
}

func (v *Vault) addRecursive(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(v.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != v.Path {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (v *Vault) matches(path string) bool {
	relPath, err := filepath.Rel(v.Path, path)
	if err != nil {
		return false
	}
	ok, _ := doublestar.Match(v.Pattern, filepath.ToSlash(relPath))
	return ok
}
