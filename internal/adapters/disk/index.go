// Package disk builds the picture index for a user-configured local
// directory scanned at runtime.
package disk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pinacoteca/internal/domain"
)

// BuildIndex recursively scans absRoot for picture files and returns a new
// index of file:// URLs. It never returns an error: a subtree that cannot
// be listed is skipped and recorded in Skipped so siblings still index, and
// an unreadable root yields an empty index with a diagnostic Err.
func BuildIndex(absRoot string) *domain.Index {
	idx := domain.NewIndex(domain.OriginDisk, "disk:"+domain.NormalizePath(absRoot))
	if _, err := os.Stat(absRoot); err != nil {
		idx.Err = fmt.Sprintf("pictures root unreadable: %v", err)
		return idx
	}
	urlRoot := strings.TrimSuffix(domain.NormalizePath(absRoot), "/")
	scanDir(idx, absRoot, urlRoot, "")
	return idx
}

// scanDir lists one directory and recurses into subdirectories. os.ReadDir
// returns entries sorted by name, which keeps rebuilds tree-equivalent.
func scanDir(idx *domain.Index, absDir, urlRoot, rel string) {
	entries, err := os.ReadDir(absDir)
	if err != nil {
		// One inaccessible subtree never aborts its siblings.
		idx.Skipped = append(idx.Skipped, domain.NormalizePath(absDir))
		return
	}
	for _, e := range entries {
		childRel := e.Name()
		if rel != "" {
			childRel = rel + "/" + e.Name()
		}
		if e.IsDir() {
			scanDir(idx, filepath.Join(absDir, e.Name()), urlRoot, childRel)
			continue
		}
		if !domain.IsPictureFile(e.Name()) {
			continue
		}
		idx.Add(domain.FileRecord{
			Name:         e.Name(),
			RelativePath: childRel,
			Reference:    domain.ReferencePrefix + childRel,
			URL:          domain.FileURL(urlRoot + "/" + childRel),
		})
	}
}
