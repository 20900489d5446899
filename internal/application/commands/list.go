package commands

import (
	"context"

	"pinacoteca/internal/application"
	"pinacoteca/internal/domain"
)

// ListResult contains the direct contents of one directory in the merged tree
type ListResult struct {
	Dir     string
	Subdirs []string
	Files   []domain.FileRecord
}

// ListCommand lists the direct children of a directory in the merged tree
type ListCommand struct {
	resolver *application.Resolver
	Dir      string // forward-slash relative path; "" for the root
}

// NewListCommand creates a new ListCommand
func NewListCommand(resolver *application.Resolver, dir string) *ListCommand {
	return &ListCommand{resolver: resolver, Dir: dir}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) (*ListResult, error) {
	node := application.MergedTree(c.resolver.Bundled(), c.resolver.Disk())
	for _, seg := range domain.SplitPath(c.Dir) {
		child, ok := node.Subdirs[seg]
		if !ok {
			return nil, application.ErrNotFound
		}
		node = child
	}

	result := &ListResult{Dir: c.Dir, Files: node.Files}
	for _, sub := range node.SortedSubdirs() {
		result.Subdirs = append(result.Subdirs, sub.Name)
	}
	return result, nil
}
