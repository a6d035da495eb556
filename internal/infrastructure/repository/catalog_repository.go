// Package repository serves gallery snapshots loaded from the catalog file and
// hot-reloads them when the file changes.
package repository

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/wiamsart/gallery/internal/config"
	"github.com/wiamsart/gallery/internal/domain"
	"github.com/wiamsart/gallery/internal/utils"
)

const debounceDelay = 350 * time.Millisecond

// CatalogRepository holds the current gallery snapshot
type CatalogRepository struct {
	mu      sync.RWMutex
	current domain.Gallery
	path    string
	watcher *fsnotify.Watcher
	// onReload, when set, is called after every successful reload.
	onReload func(domain.Gallery)
}

// NewCatalogRepository creates a repository for the catalog file at path.
// An empty path serves the built-in catalog.
func NewCatalogRepository(path string) *CatalogRepository {
	r := &CatalogRepository{path: path}
	g, err := config.DefaultFileConfig().ToGallery()
	if err != nil {
		panic(errors.Wrap(err, "built-in catalog"))
	}
	r.current = g
	return r
}

// Path returns the catalog file path, or "" for the built-in catalog.
func (r *CatalogRepository) Path() string {
	return r.path
}

// OnReload registers fn to be called after each successful hot reload.
func (r *CatalogRepository) OnReload(fn func(domain.Gallery)) {
	r.mu.Lock()
	r.onReload = fn
	r.mu.Unlock()
}

// LoadFromFile loads and validates the catalog file, replacing the snapshot on success.
// The previous snapshot stays in place when the file is missing or invalid.
func (r *CatalogRepository) LoadFromFile() error {
	if r.path == "" {
		return nil
	}
	g, err := config.LoadGallery(r.path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.current = g
	r.mu.Unlock()
	return nil
}

// Current returns the gallery snapshot.
func (r *CatalogRepository) Current() domain.Gallery {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Watch sets a fsnotify watcher on the catalog file for hot reload
func (r *CatalogRepository) Watch() error {
	if r.path == "" {
		return nil
	}
	abs, err := filepath.Abs(r.path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(abs)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return err
	}

	r.mu.Lock()
	r.watcher = w
	r.mu.Unlock()

	go r.watchLoop(w, abs)
	return nil
}

func (r *CatalogRepository) watchLoop(w *fsnotify.Watcher, abs string) {
	reload := func() {
		for i := 0; i < 10; i++ {
			if _, err := os.Stat(abs); err == nil {
				break
			}
			time.Sleep(100 * time.Millisecond)
		}

		utils.Logger.Info("catalog file changed", "path", abs)
		if err := r.LoadFromFile(); err != nil {
			utils.Logger.Warn("catalog reload rejected, keeping previous catalog", "path", abs, "err", err)
			return
		}
		g := r.Current()
		utils.Logger.Info("catalog reloaded", "path", abs, "artworks", g.Catalog.Len())

		r.mu.RLock()
		fn := r.onReload
		r.mu.RUnlock()
		if fn != nil {
			fn(g)
		}
	}

	var timer *time.Timer
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Name != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove|fsnotify.Chmod) != 0 {
				if timer == nil {
					timer = time.AfterFunc(debounceDelay, reload)
				} else {
					timer.Reset(debounceDelay)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			utils.Logger.Error("fsnotify error", "err", err)
		}
	}
}

// Close stops the watcher, if any.
func (r *CatalogRepository) Close() error {
	r.mu.Lock()
	w := r.watcher
	r.watcher = nil
	r.mu.Unlock()
	if w == nil {
		return nil
	}
	return w.Close()
}
