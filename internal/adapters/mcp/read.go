package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pinacoteca/internal/application"
	"pinacoteca/internal/application/commands"
	"pinacoteca/internal/domain"
)

// RegisterReadTools adds all read-only picture index tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, resolver *application.Resolver) {
	s.AddTool(resolveTool(), resolveHandler(resolver))
	s.AddTool(listTool(), listHandler(resolver))
	s.AddTool(treeTool(), treeHandler(resolver))
	s.AddTool(searchTool(), searchHandler(resolver))
	s.AddTool(statsTool(), statsHandler(resolver))
}

// --- resolve ---

func resolveTool() mcp.Tool {
	return mcp.NewTool("resolve",
		mcp.WithDescription("Resolve a stored picture reference (e.g. @pp/room/lamp.png) to a loadable URL. An empty result means the asset is missing."),
		mcp.WithString("ref",
			mcp.Description("Reference string to resolve"),
			mcp.Required(),
		),
	)
}

func resolveHandler(resolver *application.Resolver) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref := req.GetString("ref", "")
		results, err := commands.NewResolveCommand(resolver, ref).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		url := results[0].URL
		if url == "" {
			return mcp.NewToolResultText("(asset missing)"), nil
		}
		return mcp.NewToolResultText(url), nil
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List the direct contents of a directory in the merged picture tree. Without arguments lists the root."),
		mcp.WithString("dir",
			mcp.Description("Directory path relative to the index root (e.g. room/lamps). Omit for the root."),
		),
	)
}

func listHandler(resolver *application.Resolver) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := req.GetString("dir", "")
		result, err := commands.NewListCommand(resolver, dir).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, sub := range result.Subdirs {
			fmt.Fprintf(&sb, "%s/\n", sub)
		}
		for _, f := range result.Files {
			fmt.Fprintf(&sb, "%s  [%s]  %s\n", f.Reference, f.Origin, f.URL)
		}
		if sb.Len() == 0 {
			return mcp.NewToolResultText("No results."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the merged picture index as a tree. Disk entries shadow bundled ones with the same reference."),
	)
}

func treeHandler(resolver *application.Resolver) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, err := commands.NewBuildTreeCommand(resolver).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		renderTree(&sb, root, "")
		if sb.Len() == 0 {
			return mcp.NewToolResultText("No pictures indexed."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.DirectoryNode, prefix string) {
	if node.Name != "" {
		fmt.Fprintf(sb, "%s%s/\n", prefix, node.Name)
		prefix += "  "
	}
	for _, child := range node.SortedSubdirs() {
		renderTree(sb, child, prefix)
	}
	for _, f := range node.Files {
		fmt.Fprintf(sb, "%s%s [%s]\n", prefix, f.Name, f.Origin)
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search indexed pictures by reference, name or path. Returns matches with their resolved URLs."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(resolver *application.Resolver) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(resolver, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(results, formatSearchResult)
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Report index statistics for both asset sources: origin, enumeration method, record count, diagnostics."),
	)
}

func statsHandler(resolver *application.Resolver) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewStatsCommand(resolver).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if result.Root == "" {
			sb.WriteString("pictures root: (not configured)\n")
		} else {
			fmt.Fprintf(&sb, "pictures root: %s\n", result.Root)
		}
		writeStats(&sb, result.Bundled)
		writeStats(&sb, result.Disk)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func writeStats(sb *strings.Builder, stats *commands.IndexStats) {
	if stats == nil {
		return
	}
	fmt.Fprintf(sb, "%s: %d picture(s) via %s", stats.Origin, stats.Count, stats.Method)
	if stats.Err != "" {
		fmt.Fprintf(sb, " (error: %s)", stats.Err)
	}
	sb.WriteByte('\n')
	for _, skipped := range stats.Skipped {
		fmt.Fprintf(sb, "  skipped: %s\n", skipped)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatSearchResult(r commands.SearchResult) string {
	return fmt.Sprintf("%s  [%s]  %s", r.Reference, r.Origin, r.URL)
}
