// Package bundled builds the picture index for assets embedded in the
// build output, enumerated through a static manifest or an embedded
// filesystem walk.
package bundled

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"pinacoteca/internal/domain"
	"pinacoteca/internal/ports"
)

// assetRootSegment is the structural directory the build tooling roots
// bundled picture paths under. It is stripped from enumeration keys so
// references stay stable across bundler layouts.
const assetRootSegment = "pictures/"

// Build constructs the bundled picture index from the first available
// provider. It never fails: with no available provider it returns an empty
// index whose Err distinguishes "no pictures" from a broken enumeration.
func Build(providers ...ports.Enumerator) *domain.Index {
	for _, p := range providers {
		if p == nil || !p.Available() {
			continue
		}
		entries, err := p.Enumerate()
		if err != nil {
			idx := domain.NewIndex(domain.OriginBundled, p.Method())
			idx.Err = fmt.Sprintf("picture enumeration failed: %v", err)
			return idx
		}
		return buildFrom(p.Method(), entries)
	}
	idx := domain.NewIndex(domain.OriginBundled, "none")
	idx.Err = "no bundled pictures"
	return idx
}

func buildFrom(method string, entries []ports.ManifestEntry) *domain.Index {
	// Ascending key order keeps repeated builds tree-equivalent and makes
	// first-wins duplicate handling deterministic.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	idx := domain.NewIndex(domain.OriginBundled, method)
	for _, e := range entries {
		rel := stripRoot(domain.NormalizePath(e.Path))
		if rel == "" {
			continue
		}
		idx.Add(domain.FileRecord{
			Name:         path.Base(rel),
			RelativePath: rel,
			Reference:    domain.ReferencePrefix + rel,
			URL:          e.Value.URL(),
		})
	}
	return idx
}

// stripRoot removes the structural prefix up to and including the asset
// root segment, plus any leading "./" or "/" left by the bundler.
func stripRoot(p string) string {
	if i := strings.Index(p, assetRootSegment); i >= 0 {
		p = p[i+len(assetRootSegment):]
	}
	p = strings.TrimPrefix(p, "./")
	return strings.TrimPrefix(p, "/")
}
