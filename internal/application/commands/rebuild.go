package commands

import (
	"context"

	"pinacoteca/internal/application"
	"pinacoteca/internal/domain"
)

// RebuildCommand forces a fresh disk index build
type RebuildCommand struct {
	cache *application.DiskCache
}

// NewRebuildCommand creates a new RebuildCommand
func NewRebuildCommand(cache *application.DiskCache) *RebuildCommand {
	return &RebuildCommand{cache: cache}
}

// Execute drops the cached disk index and rebuilds it from the configured
// root. Returns ErrNoRoot when no root is configured.
func (c *RebuildCommand) Execute(ctx context.Context) (*domain.Index, error) {
	c.cache.Invalidate()
	idx := c.cache.Get()
	if idx == nil {
		return nil, application.ErrNoRoot
	}
	return idx, nil
}
