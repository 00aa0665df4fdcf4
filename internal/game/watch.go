package game

import (
	"context"
	"log"
	"os"
	"time"
)

// FileWatcher polls file modification times and triggers a callback on change.
type FileWatcher struct {
	Paths     []string
	Interval  time.Duration
	onChange  func(string) // called with path that changed
	lastMTime map[string]time.Time
}

// NewFileWatcher creates a watcher for given paths and interval.
func NewFileWatcher(paths []string, interval time.Duration, onChange func(string)) *FileWatcher {
	return &FileWatcher{
		Paths:     paths,
		Interval:  interval,
		onChange:  onChange,
		lastMTime: make(map[string]time.Time),
	}
}

// Run polls until ctx is done. The first scan only records mtimes.
func (w *FileWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	w.scanAll(true)
	for {
		select {
		case <-ticker.C:
			w.scanAll(false)
		case <-ctx.Done():
			return
		}
	}
}

// scanAll checks mtimes and invokes onChange for files that changed since last scan.
// A file that appears after the first scan counts as a change.
func (w *FileWatcher) scanAll(prime bool) {
	for _, p := range w.Paths {
		fi, err := os.Stat(p)
		if err != nil {
			// missing files are optional overrides
			continue
		}
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		w.lastMTime[p] = mt
		if prime || (ok && !mt.After(last)) {
			continue
		}
		if w.onChange != nil {
			w.onChange(p)
		}
	}
}

// SetPaths replaces the watched paths. Files new to the watcher are primed
// with their current mtime, so only later edits count as changes.
func (w *FileWatcher) SetPaths(paths []string) {
	known := make(map[string]bool, len(w.Paths))
	for _, p := range w.Paths {
		known[p] = true
	}
	for _, p := range paths {
		if known[p] {
			continue
		}
		if fi, err := os.Stat(p); err == nil {
			w.lastMTime[p] = fi.ModTime()
		}
	}
	w.Paths = paths
}

// WatchCatalog reloads c whenever one of its files changes, until ctx is done.
// onReload, if set, sees the outcome of every reload attempt.
func WatchCatalog(ctx context.Context, c *Catalog, interval time.Duration, onReload func(error)) {
	if interval <= 0 {
		return
	}
	w := newCatalogWatcher(c, interval, onReload)
	if len(w.Paths) == 0 {
		return
	}
	w.Run(ctx)
}

// newCatalogWatcher polls the catalog's files. After each successful reload
// the path list is rebuilt so profiles added by the reload get their own
// game file watched too.
func newCatalogWatcher(c *Catalog, interval time.Duration, onReload func(error)) *FileWatcher {
	var w *FileWatcher
	w = NewFileWatcher(c.Paths(), interval, func(path string) {
		err := c.Reload()
		if onReload != nil {
			onReload(err)
		}
		if err != nil {
			log.Printf("config %s changed but reload failed, keeping version %s: %v", path, c.Version(), err)
			return
		}
		w.SetPaths(c.Paths())
		log.Printf("config %s changed, reloaded profiles (version %s)", path, c.Version())
	})
	return w
}
