package commands

import (
	"context"
	"sort"
	"strings"

	"pinacoteca/internal/application"
	"pinacoteca/internal/domain"
)

// SearchResult wraps a file record with a relevance score
type SearchResult struct {
	domain.FileRecord
	Score int
}

// SearchCommand searches the merged indexes with fuzzy matching
type SearchCommand struct {
	resolver *application.Resolver
	Query    string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(resolver *application.Resolver, query string) *SearchCommand {
	return &SearchCommand{resolver: resolver, Query: query}
}

// Execute runs the search and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}
	records := application.MergedRecords(c.resolver.Bundled(), c.resolver.Disk())
	return FuzzySort(records, c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: chars must appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == '/' || target[i-1] == '.' || target[i-1] == '-' || target[i-1] == '_') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores records against the query and sorts them by relevance
func FuzzySort(records []domain.FileRecord, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(records))

	for _, r := range records {
		s1 := FuzzyScore(r.Reference, query)
		s2 := FuzzyScore(r.Name, query)
		s3 := FuzzyScore(r.RelativePath, query)

		best := max(s1, s2, s3)

		if best > 0 {
			scored = append(scored, SearchResult{
				FileRecord: r,
				Score:      best,
			})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].RelativePath < scored[j].RelativePath
	})

	return scored
}
