package commands

import (
	"context"

	"pinacoteca/internal/application"
	"pinacoteca/internal/domain"
)

// BuildTreeCommand builds the merged directory tree over both indexes
type BuildTreeCommand struct {
	resolver *application.Resolver
}

// NewBuildTreeCommand creates a new BuildTreeCommand
func NewBuildTreeCommand(resolver *application.Resolver) *BuildTreeCommand {
	return &BuildTreeCommand{resolver: resolver}
}

// Execute returns the merged tree root. Disk records shadow bundled ones
// with the same reference, mirroring resolver precedence.
func (c *BuildTreeCommand) Execute(ctx context.Context) (*domain.DirectoryNode, error) {
	return application.MergedTree(c.resolver.Bundled(), c.resolver.Disk()), nil
}
