package commands

import (
	"context"
	"fmt"

	"pinacoteca/internal/application"
	"pinacoteca/internal/ports"
)

// SetRootResult contains the result of changing the pictures root
type SetRootResult struct {
	Root    string
	Message string
}

// SetRootCommand persists a new pictures root and invalidates the cache
type SetRootCommand struct {
	prefs ports.Preferences
	cache *application.DiskCache
	Path  string
}

// NewSetRootCommand creates a new SetRootCommand
func NewSetRootCommand(prefs ports.Preferences, cache *application.DiskCache, path string) *SetRootCommand {
	return &SetRootCommand{prefs: prefs, cache: cache, Path: path}
}

// Validate checks if the root change is valid
func (c *SetRootCommand) Validate() error {
	if err := application.ValidateRequired("rootPath", c.Path); err != nil {
		return err
	}
	if err := application.ValidateAbsolutePath("rootPath", c.Path); err != nil {
		return &application.RootError{Path: c.Path, Reason: "not an absolute path"}
	}
	return nil
}

// Execute persists the new root under the current key, clears the legacy
// key so stale values cannot shadow it, and invalidates the disk cache.
func (c *SetRootCommand) Execute(ctx context.Context) (*SetRootResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.prefs == nil {
		return nil, application.ErrNoPrefs
	}

	if err := c.prefs.Set(application.PrefPicturesRoot, c.Path); err != nil {
		return nil, fmt.Errorf("failed to store pictures root: %w", err)
	}
	if err := c.prefs.Delete(application.PrefLegacyPicKey); err != nil {
		return nil, fmt.Errorf("failed to clear legacy key: %w", err)
	}
	c.cache.Invalidate()

	return &SetRootResult{
		Root:    c.Path,
		Message: fmt.Sprintf("Pictures root set to %s", c.Path),
	}, nil
}
