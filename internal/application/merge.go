package application

import (
	"sort"

	"pinacoteca/internal/domain"
)

// MergedRecords combines both indexes into one record list, sorted by
// relative path. Where the same reference exists in both, the disk record
// shadows the bundled one, matching resolver precedence. Either index may
// be nil.
func MergedRecords(bundledIdx, diskIdx *domain.Index) []domain.FileRecord {
	seen := make(map[string]bool)
	var records []domain.FileRecord
	for _, idx := range []*domain.Index{diskIdx, bundledIdx} {
		if idx == nil {
			continue
		}
		for ref, rec := range idx.ByReference {
			if seen[ref] {
				continue
			}
			seen[ref] = true
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].RelativePath < records[j].RelativePath
	})
	return records
}

// MergedTree builds a single directory tree over both indexes with the
// same shadowing rule as MergedRecords.
func MergedTree(bundledIdx, diskIdx *domain.Index) *domain.DirectoryNode {
	root := domain.NewDirectoryNode("")
	for _, rec := range MergedRecords(bundledIdx, diskIdx) {
		root.Insert(rec.RelativePath, rec)
	}
	return root
}
