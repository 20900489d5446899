package ports

// Preferences is a persisted key-value store for user settings, such as the
// configured pictures root.
type Preferences interface {
	// Get returns the stored value for key, or "" when the key is unset.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	Close() error
}
