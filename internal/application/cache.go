package application

import (
	"sync"

	"pinacoteca/internal/domain"
	"pinacoteca/internal/ports"
)

// Preference keys for the configured pictures root. Older releases wrote
// picturesFolder; readers try both, first non-empty wins.
const (
	PrefPicturesRoot = "pictures.root"
	PrefLegacyPicKey = "picturesFolder"
)

// BuildFunc builds a disk index for an absolute root path.
type BuildFunc func(absRoot string) *domain.Index

// DiskCache memoizes the most recent disk index, keyed by the configured
// root path. The disk tree is only re-walked when the root changes, trading
// bounded staleness for amortized cost. The read-compare-rebuild-store
// sequence runs under a mutex so a reader never observes a half-built tree
// and two callers never rebuild concurrently.
type DiskCache struct {
	mu    sync.Mutex
	prefs ports.Preferences
	build BuildFunc
	root  string
	index *domain.Index
}

// NewDiskCache creates a cache reading the configured root from prefs and
// building indexes with build.
func NewDiskCache(prefs ports.Preferences, build BuildFunc) *DiskCache {
	return &DiskCache{prefs: prefs, build: build}
}

// ConfiguredRoot resolves the pictures root from the preference store,
// trying the current key then the legacy key. "" means no root is set.
func (c *DiskCache) ConfiguredRoot() string {
	if c == nil || c.prefs == nil {
		return ""
	}
	for _, key := range []string{PrefPicturesRoot, PrefLegacyPicKey} {
		if value, err := c.prefs.Get(key); err == nil && value != "" {
			return value
		}
	}
	return ""
}

// Get returns the disk index for the configured root. The first call, and
// any call after the configured root changed, rebuilds the index and
// replaces the cached value; otherwise the cached index is returned
// unchanged. Get returns nil when the cache is nil, no builder was
// supplied, or no root is configured; no default root is invented.
func (c *DiskCache) Get() *domain.Index {
	if c == nil || c.build == nil {
		return nil
	}
	root := c.ConfiguredRoot()
	if root == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index == nil || c.root != root {
		c.index = c.build(root)
		c.root = root
	}
	return c.index
}

// Invalidate drops the cached index so the next Get rebuilds it, even if
// the configured root is unchanged. Used after preference writes and by
// the filesystem watcher.
func (c *DiskCache) Invalidate() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.index = nil
	c.root = ""
	c.mu.Unlock()
}
