package commands

import (
	"context"

	"pinacoteca/internal/application"
)

// ResolveResult contains the result of resolving one reference
type ResolveResult struct {
	Ref string
	URL string
}

// ResolveCommand resolves stored picture references to loadable URLs
type ResolveCommand struct {
	resolver *application.Resolver
	Refs     []string
}

// NewResolveCommand creates a new ResolveCommand
func NewResolveCommand(resolver *application.Resolver, refs ...string) *ResolveCommand {
	return &ResolveCommand{resolver: resolver, Refs: refs}
}

// Execute resolves every reference. Resolution is total: an unknown
// reference yields an empty URL rather than an error, and the caller
// treats an empty result as "asset missing".
func (c *ResolveCommand) Execute(ctx context.Context) ([]ResolveResult, error) {
	results := make([]ResolveResult, 0, len(c.Refs))
	for _, ref := range c.Refs {
		results = append(results, ResolveResult{
			Ref: ref,
			URL: c.resolver.Resolve(ref),
		})
	}
	return results, nil
}
