package commands

import (
	"context"

	"pinacoteca/internal/application"
	"pinacoteca/internal/domain"
)

// IndexStats summarizes one index for diagnostics
type IndexStats struct {
	Origin  domain.Origin
	Method  string
	Count   int
	Err     string
	Skipped []string
}

// StatsResult contains statistics for both asset sources
type StatsResult struct {
	Root    string // configured pictures root, "" when unset
	Bundled *IndexStats
	Disk    *IndexStats // nil when no disk index is available
}

// StatsCommand reports index statistics
type StatsCommand struct {
	resolver *application.Resolver
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(resolver *application.Resolver) *StatsCommand {
	return &StatsCommand{resolver: resolver}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context) (*StatsResult, error) {
	result := &StatsResult{
		Root:    c.resolver.Cache().ConfiguredRoot(),
		Bundled: summarize(c.resolver.Bundled()),
	}
	if diskIdx := c.resolver.Disk(); diskIdx != nil {
		result.Disk = summarize(diskIdx)
	}
	return result, nil
}

func summarize(idx *domain.Index) *IndexStats {
	if idx == nil {
		return nil
	}
	return &IndexStats{
		Origin:  idx.Origin,
		Method:  idx.Method,
		Count:   idx.Count,
		Err:     idx.Err,
		Skipped: idx.Skipped,
	}
}
