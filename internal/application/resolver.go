package application

import (
	"os"
	"path/filepath"
	"strings"

	"pinacoteca/internal/domain"
)

// mediaDir is the directory @media/ references resolve into, relative to
// the process working directory.
const mediaDir = "data/media"

// resolvedPrefixes mark references that are already loadable URLs and pass
// through the resolver unchanged.
var resolvedPrefixes = []string{"data:", "blob:", "http://", "https://", "file://"}

// Resolve maps a stored picture reference to a loadable URL. It is total:
// every input string produces exactly one output and no input panics.
// Rules, first match wins:
//
//  1. "" resolves to "".
//  2. An already-resolved URL passes through unchanged.
//  3. "@pp/" references look up the disk index first, then the bundled
//     index, so a user-configured local folder overrides bundled defaults.
//     Missing in both resolves to "".
//  4. "@media/" references resolve into data/media under the working
//     directory as a file:// URL.
//  5. Anything else is assumed directly usable and returned unchanged.
//
// Either index may be nil; a nil index never matches.
func Resolve(ref string, bundledIdx, diskIdx *domain.Index) string {
	if ref == "" {
		return ""
	}
	for _, prefix := range resolvedPrefixes {
		if strings.HasPrefix(ref, prefix) {
			return ref
		}
	}
	if strings.HasPrefix(ref, domain.ReferencePrefix) {
		if diskIdx != nil {
			if rec, ok := diskIdx.ByReference[ref]; ok {
				return rec.URL
			}
		}
		if bundledIdx != nil {
			if rec, ok := bundledIdx.ByReference[ref]; ok {
				return rec.URL
			}
		}
		return ""
	}
	if rest, ok := strings.CutPrefix(ref, domain.MediaPrefix); ok {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		return domain.FileURL(filepath.Join(wd, mediaDir, rest))
	}
	return ref
}

// Resolver bundles the immutable bundled index with the disk cache so
// callers resolve references through one value.
type Resolver struct {
	bundled *domain.Index
	cache   *DiskCache
}

// NewResolver creates a resolver over a bundled index and a disk cache.
// cache may be nil for hosts without disk access.
func NewResolver(bundledIdx *domain.Index, cache *DiskCache) *Resolver {
	return &Resolver{bundled: bundledIdx, cache: cache}
}

// Resolve maps ref to a URL using the current disk index, rebuilding it
// through the cache only when the configured root changed.
func (r *Resolver) Resolve(ref string) string {
	return Resolve(ref, r.bundled, r.cache.Get())
}

// Bundled returns the bundled index.
func (r *Resolver) Bundled() *domain.Index {
	return r.bundled
}

// Disk returns the current disk index, or nil when no root is configured
// or disk access is disabled.
func (r *Resolver) Disk() *domain.Index {
	return r.cache.Get()
}

// Cache returns the disk cache, or nil when disk access is disabled.
func (r *Resolver) Cache() *DiskCache {
	return r.cache
}
