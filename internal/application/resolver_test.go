package application

import (
	"os"
	"testing"

	"pinacoteca/internal/domain"
)

func indexWith(origin domain.Origin, recs ...domain.FileRecord) *domain.Index {
	idx := domain.NewIndex(origin, "test")
	for _, rec := range recs {
		idx.Add(rec)
	}
	return idx
}

func TestResolve(t *testing.T) {
	bundledIdx := indexWith(domain.OriginBundled, domain.FileRecord{
		Name:         "b.jpg",
		RelativePath: "a/b.jpg",
		Reference:    "@pp/a/b.jpg",
		URL:          "https://cdn/a/b.jpg",
	})
	diskIdx := indexWith(domain.OriginDisk, domain.FileRecord{
		Name:         "b.jpg",
		RelativePath: "a/b.jpg",
		Reference:    "@pp/a/b.jpg",
		URL:          "file:///C:/root/a/b.jpg",
	})

	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{"empty ref", "", ""},
		{"https passthrough", "https://x/y.png", "https://x/y.png"},
		{"http passthrough", "http://x/y.png", "http://x/y.png"},
		{"data passthrough", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"blob passthrough", "blob:abc-123", "blob:abc-123"},
		{"file passthrough", "file:///tmp/x.png", "file:///tmp/x.png"},
		{"disk wins over bundled", "@pp/a/b.jpg", "file:///C:/root/a/b.jpg"},
		{"missing in both", "@pp/missing.jpg", ""},
		{"unknown shape passthrough", "relative/thing.png", "relative/thing.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.ref, bundledIdx, diskIdx); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, expected %q", tt.ref, got, tt.expected)
			}
		})
	}
}

func TestResolve_BundledFallback(t *testing.T) {
	bundledIdx := indexWith(domain.OriginBundled, domain.FileRecord{
		Name:         "lamp.png",
		RelativePath: "lamp.png",
		Reference:    "@pp/lamp.png",
		URL:          "/assets/lamp.png",
	})

	if got := Resolve("@pp/lamp.png", bundledIdx, nil); got != "/assets/lamp.png" {
		t.Errorf("Resolve = %q, expected bundled URL with nil disk index", got)
	}

	emptyDisk := domain.NewIndex(domain.OriginDisk, "test")
	if got := Resolve("@pp/lamp.png", bundledIdx, emptyDisk); got != "/assets/lamp.png" {
		t.Errorf("Resolve = %q, expected bundled fallback past empty disk index", got)
	}
}

func TestResolve_Media(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}

	got := Resolve("@media/manual.jpg", nil, nil)
	expected := domain.FileURL(domain.NormalizePath(wd) + "/data/media/manual.jpg")
	if got != expected {
		t.Errorf("Resolve(@media/...) = %q, expected %q", got, expected)
	}
}

func TestResolve_NilIndexes(t *testing.T) {
	if got := Resolve("@pp/a.png", nil, nil); got != "" {
		t.Errorf("Resolve with nil indexes = %q, expected empty", got)
	}
	if got := Resolve("", nil, nil); got != "" {
		t.Errorf("Resolve(\"\") = %q, expected empty", got)
	}
}

func TestMergedRecords_DiskShadowsBundled(t *testing.T) {
	bundledIdx := indexWith(domain.OriginBundled,
		domain.FileRecord{Name: "a.png", RelativePath: "a.png", Reference: "@pp/a.png", URL: "bundled-a"},
		domain.FileRecord{Name: "b.png", RelativePath: "b.png", Reference: "@pp/b.png", URL: "bundled-b"},
	)
	diskIdx := indexWith(domain.OriginDisk,
		domain.FileRecord{Name: "a.png", RelativePath: "a.png", Reference: "@pp/a.png", URL: "disk-a"},
	)

	records := MergedRecords(bundledIdx, diskIdx)

	if len(records) != 2 {
		t.Fatalf("len = %d, expected 2", len(records))
	}
	// Sorted by relative path: a.png, b.png
	if records[0].URL != "disk-a" {
		t.Errorf("records[0].URL = %q, disk record must shadow the bundled one", records[0].URL)
	}
	if records[1].URL != "bundled-b" {
		t.Errorf("records[1].URL = %q", records[1].URL)
	}
}

func TestMergedTree(t *testing.T) {
	bundledIdx := indexWith(domain.OriginBundled,
		domain.FileRecord{Name: "lamp.png", RelativePath: "room/lamp.png", Reference: "@pp/room/lamp.png", URL: "u"},
	)

	root := MergedTree(bundledIdx, nil)

	if _, ok := root.Find("room/lamp.png"); !ok {
		t.Error("merged tree missing room/lamp.png")
	}
}
