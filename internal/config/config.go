package config

import "os"

// DatabasePath returns the preference database path from PINACOTECA_DB,
// or "" to let the caller fall back to the default location.
func DatabasePath() string {
	return os.Getenv("PINACOTECA_DB")
}

// ManifestPath returns the bundled picture manifest path from
// PINACOTECA_MANIFEST, or "" when no manifest is configured.
func ManifestPath() string {
	return os.Getenv("PINACOTECA_MANIFEST")
}

// BundledDir returns the directory to enumerate bundled pictures from when
// no manifest is available, from PINACOTECA_BUNDLED_DIR.
func BundledDir() string {
	return os.Getenv("PINACOTECA_BUNDLED_DIR")
}
