package disk

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pinacoteca/internal/domain"
)

func setupPicturesRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	files := []string{
		"top.jpg",
		"room/rug.jpeg",
		"sub/deep/photo.PNG",
		"room/notes.txt",
	}
	for _, f := range files {
		abs := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", f, err)
		}
		if err := os.WriteFile(abs, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", f, err)
		}
	}
	return root
}

func TestBuildIndex(t *testing.T) {
	root := setupPicturesRoot(t)

	idx := BuildIndex(root)

	if idx.Err != "" {
		t.Fatalf("unexpected error: %s", idx.Err)
	}
	if idx.Origin != domain.OriginDisk {
		t.Errorf("origin = %v, expected disk", idx.Origin)
	}
	if idx.Count != 3 {
		t.Fatalf("Count = %d, expected 3 (non-pictures filtered)", idx.Count)
	}

	// Uppercase extension indexed, case preserved in reference and path.
	photo, ok := idx.ByReference["@pp/sub/deep/photo.PNG"]
	if !ok {
		t.Fatal("missing @pp/sub/deep/photo.PNG")
	}
	if photo.RelativePath != "sub/deep/photo.PNG" {
		t.Errorf("RelativePath = %q", photo.RelativePath)
	}

	wantURL := domain.FileURL(domain.NormalizePath(root) + "/sub/deep/photo.PNG")
	if photo.URL != wantURL {
		t.Errorf("URL = %q, expected %q", photo.URL, wantURL)
	}
	if !strings.HasPrefix(photo.URL, "file://") {
		t.Errorf("URL %q is not a file URL", photo.URL)
	}

	// Bijection: every flat entry reachable from the tree.
	for ref, rec := range idx.ByReference {
		if _, ok := idx.Root.Find(rec.RelativePath); !ok {
			t.Errorf("record %s not reachable via %s", ref, rec.RelativePath)
		}
	}
}

func TestBuildIndex_EmptyRoot(t *testing.T) {
	idx := BuildIndex(t.TempDir())

	if idx.Count != 0 {
		t.Errorf("Count = %d, expected 0", idx.Count)
	}
	if idx.Err != "" {
		t.Errorf("an existing empty root is not an error, got %q", idx.Err)
	}
}

func TestBuildIndex_MissingRoot(t *testing.T) {
	idx := BuildIndex(filepath.Join(t.TempDir(), "does-not-exist"))

	if idx.Count != 0 {
		t.Errorf("Count = %d, expected 0", idx.Count)
	}
	if idx.Err == "" {
		t.Error("expected a diagnostic for a missing root")
	}
}

func TestBuildIndex_UnreadableSubtreeSkipsSiblings(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are ignored when running as root")
	}
	root := setupPicturesRoot(t)

	locked := filepath.Join(root, "locked")
	if err := os.MkdirAll(locked, 0755); err != nil {
		t.Fatalf("failed to create locked dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(locked, "hidden.png"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write hidden.png: %v", err)
	}
	if err := os.Chmod(locked, 0000); err != nil {
		t.Fatalf("failed to chmod: %v", err)
	}
	defer os.Chmod(locked, 0755)

	idx := BuildIndex(root)

	if idx.Count != 3 {
		t.Errorf("Count = %d, expected siblings of the locked subtree to still index", idx.Count)
	}
	if len(idx.Skipped) != 1 {
		t.Errorf("Skipped = %v, expected exactly the locked directory", idx.Skipped)
	}
	if idx.Err != "" {
		t.Errorf("partial failure must not fail the build, got %q", idx.Err)
	}
}

func TestBuildIndex_Deterministic(t *testing.T) {
	root := setupPicturesRoot(t)

	first := BuildIndex(root)
	second := BuildIndex(root)

	if first.Count != second.Count {
		t.Fatalf("counts differ: %d vs %d", first.Count, second.Count)
	}
	for ref, rec := range first.ByReference {
		if other := second.ByReference[ref]; other != rec {
			t.Errorf("rebuild differs for %s", ref)
		}
	}
}
