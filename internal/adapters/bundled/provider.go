package bundled

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"pinacoteca/internal/domain"
	"pinacoteca/internal/ports"
)

// ManifestProvider enumerates bundled pictures from a static JSON manifest
// produced by build tooling: an object mapping relative paths to either a
// URL string or a wrapper object with a "default" field.
type ManifestProvider struct {
	name string
	data []byte
}

var _ ports.Enumerator = (*ManifestProvider)(nil)

// NewManifestProvider creates a provider over raw manifest bytes. name
// identifies the manifest source in diagnostics (a file path, "embedded").
func NewManifestProvider(name string, data []byte) *ManifestProvider {
	return &ManifestProvider{name: name, data: data}
}

// Method identifies this strategy for index diagnostics.
func (p *ManifestProvider) Method() string {
	return "manifest:" + p.name
}

// Available reports whether manifest bytes were supplied.
func (p *ManifestProvider) Available() bool {
	return p != nil && len(p.data) > 0
}

// Enumerate parses the manifest into entries. A malformed value decodes to
// an empty URL (the record is still enumerated); a malformed manifest as a
// whole is an enumeration failure.
func (p *ManifestProvider) Enumerate() ([]ports.ManifestEntry, error) {
	var manifest map[string]domain.AssetValue
	if err := json.Unmarshal(p.data, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", p.name, err)
	}
	entries := make([]ports.ManifestEntry, 0, len(manifest))
	for path, value := range manifest {
		entries = append(entries, ports.ManifestEntry{Path: path, Value: value})
	}
	return entries, nil
}

// DirProvider enumerates bundled pictures by walking a filesystem, usually
// an embed.FS compiled into the host application. Each picture file maps to
// a URL under baseURL, mirroring how embedded assets are served.
type DirProvider struct {
	fsys    fs.FS
	baseURL string
}

var _ ports.Enumerator = (*DirProvider)(nil)

// NewDirProvider creates a provider walking fsys. baseURL is the URL prefix
// the host serves the filesystem under (e.g. "/assets/").
func NewDirProvider(fsys fs.FS, baseURL string) *DirProvider {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &DirProvider{fsys: fsys, baseURL: baseURL}
}

// Method identifies this strategy for index diagnostics.
func (p *DirProvider) Method() string {
	return "fswalk:" + p.baseURL
}

// Available reports whether a filesystem was supplied.
func (p *DirProvider) Available() bool {
	return p != nil && p.fsys != nil
}

// Enumerate walks the filesystem and returns one entry per picture file.
// fs.WalkDir visits entries in lexical order, so enumeration is
// deterministic across runs.
func (p *DirProvider) Enumerate() ([]ports.ManifestEntry, error) {
	var entries []ports.ManifestEntry
	err := fs.WalkDir(p.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !domain.IsPictureFile(d.Name()) {
			return nil
		}
		entries = append(entries, ports.ManifestEntry{
			Path:  path,
			Value: domain.StringValue(p.baseURL + path),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk bundled filesystem: %w", err)
	}
	return entries, nil
}
