package bundled

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"pinacoteca/internal/domain"
	"pinacoteca/internal/ports"
)

func TestBuild_FromManifest(t *testing.T) {
	manifest := []byte(`{
		"../assets/pictures/room/lamp.png": "https://cdn/room/lamp.png",
		"../assets/pictures/rug.jpg": {"default": "/assets/rug.jpg"},
		"../assets/pictures/broken.gif": {"src": "nope"}
	}`)

	idx := Build(NewManifestProvider("test.json", manifest))

	if idx.Err != "" {
		t.Fatalf("unexpected error: %s", idx.Err)
	}
	if idx.Origin != domain.OriginBundled {
		t.Errorf("origin = %v, expected bundled", idx.Origin)
	}
	if idx.Count != 3 {
		t.Fatalf("Count = %d, expected 3", idx.Count)
	}

	lamp, ok := idx.ByReference["@pp/room/lamp.png"]
	if !ok {
		t.Fatal("missing @pp/room/lamp.png")
	}
	if lamp.URL != "https://cdn/room/lamp.png" {
		t.Errorf("lamp URL = %q", lamp.URL)
	}
	if lamp.RelativePath != "room/lamp.png" {
		t.Errorf("lamp RelativePath = %q, structural prefix not stripped", lamp.RelativePath)
	}

	rug := idx.ByReference["@pp/rug.jpg"]
	if rug.URL != "/assets/rug.jpg" {
		t.Errorf("wrapped value not unwrapped: %q", rug.URL)
	}

	// Malformed value: record still indexed, URL empty.
	broken, ok := idx.ByReference["@pp/broken.gif"]
	if !ok {
		t.Fatal("malformed value dropped the record entirely")
	}
	if broken.URL != "" {
		t.Errorf("malformed value URL = %q, expected empty", broken.URL)
	}
}

func TestBuild_WindowsManifestKeys(t *testing.T) {
	manifest := []byte(`{"..\\assets\\pictures\\room\\lamp.png": "u"}`)

	idx := Build(NewManifestProvider("win.json", manifest))

	if _, ok := idx.ByReference["@pp/room/lamp.png"]; !ok {
		t.Errorf("backslash manifest key not normalized, got %v", refs(idx))
	}
}

func TestBuild_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"room/lamp.png":      &fstest.MapFile{Data: []byte("x")},
		"room/deep/big.WEBP": &fstest.MapFile{Data: []byte("x")},
		"notes.txt":          &fstest.MapFile{Data: []byte("x")},
	}

	idx := Build(NewDirProvider(fsys, "/assets"))

	if idx.Count != 2 {
		t.Fatalf("Count = %d, expected 2 (non-pictures filtered), refs: %v", idx.Count, refs(idx))
	}
	lamp := idx.ByReference["@pp/room/lamp.png"]
	if lamp.URL != "/assets/room/lamp.png" {
		t.Errorf("lamp URL = %q", lamp.URL)
	}
	// Uppercase extension matches, case preserved.
	if _, ok := idx.ByReference["@pp/room/deep/big.WEBP"]; !ok {
		t.Errorf("uppercase extension dropped, refs: %v", refs(idx))
	}
}

func TestBuild_NoProviders(t *testing.T) {
	idx := Build()

	if idx.Count != 0 {
		t.Errorf("Count = %d, expected 0", idx.Count)
	}
	if idx.Err != "no bundled pictures" {
		t.Errorf("Err = %q", idx.Err)
	}
	if len(idx.ByReference) != 0 || len(idx.Root.Subdirs) != 0 {
		t.Error("expected empty tree and map")
	}
}

func TestBuild_BrokenEnumeration(t *testing.T) {
	idx := Build(brokenProvider{})

	if idx.Count != 0 {
		t.Errorf("Count = %d, expected 0", idx.Count)
	}
	if !strings.HasPrefix(idx.Err, "picture enumeration failed") {
		t.Errorf("Err = %q, expected enumeration failure diagnostic", idx.Err)
	}
}

func TestBuild_FirstAvailableProviderWins(t *testing.T) {
	unavailable := NewManifestProvider("unset", nil)
	manifest := NewManifestProvider("good.json", []byte(`{"pictures/a.png": "u"}`))

	idx := Build(unavailable, manifest)

	if idx.Count != 1 {
		t.Fatalf("Count = %d, expected 1", idx.Count)
	}
	if idx.Method != "manifest:good.json" {
		t.Errorf("Method = %q", idx.Method)
	}
}

func TestBuild_DeterministicAcrossRuns(t *testing.T) {
	manifest := []byte(`{
		"pictures/b.png": "u1",
		"pictures/a.png": "u2",
		"pictures/room/c.png": "u3"
	}`)

	first := Build(NewManifestProvider("m", manifest))
	second := Build(NewManifestProvider("m", manifest))

	if first.Count != second.Count {
		t.Fatalf("counts differ: %d vs %d", first.Count, second.Count)
	}
	for ref, rec := range first.ByReference {
		other, ok := second.ByReference[ref]
		if !ok || other != rec {
			t.Errorf("rebuild differs for %s: %+v vs %+v", ref, rec, other)
		}
	}
}

func TestStripRoot(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"../assets/pictures/room/lamp.png", "room/lamp.png"},
		{"/src/assets/pictures/a.png", "a.png"},
		{"pictures/a.png", "a.png"},
		{"./a.png", "a.png"},
		{"/a.png", "a.png"},
		{"a.png", "a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := stripRoot(tt.input); got != tt.expected {
				t.Errorf("stripRoot(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func refs(idx *domain.Index) []string {
	var out []string
	for ref := range idx.ByReference {
		out = append(out, ref)
	}
	return out
}

type brokenProvider struct{}

func (brokenProvider) Method() string  { return "broken" }
func (brokenProvider) Available() bool { return true }
func (brokenProvider) Enumerate() ([]ports.ManifestEntry, error) {
	return nil, errors.New("boom")
}
