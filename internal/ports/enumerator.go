package ports

import "pinacoteca/internal/domain"

// ManifestEntry is one bundled enumeration pair: a relative path and the
// opaque value the build tooling produced for it.
type ManifestEntry struct {
	Path  string
	Value domain.AssetValue
}

// Enumerator lists the pictures embedded in the build output. Strategies
// differ per host (static manifest, embedded filesystem walk); the bundled
// index builder tries them in a fixed priority order and the first
// available one wins.
type Enumerator interface {
	// Method identifies the strategy for index diagnostics.
	Method() string

	// Available reports whether this enumeration mechanism exists in the
	// current host.
	Available() bool

	// Enumerate returns the bundled pairs. An error means the mechanism
	// exists but is broken, which is distinct from not being available.
	Enumerate() ([]ManifestEntry, error)
}
