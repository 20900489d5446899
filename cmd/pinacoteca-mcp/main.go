package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pinacoteca/internal/adapters/bundled"
	"pinacoteca/internal/adapters/disk"
	mcpadapter "pinacoteca/internal/adapters/mcp"
	"pinacoteca/internal/adapters/sqlite"
	"pinacoteca/internal/application"
	"pinacoteca/internal/config"
	"pinacoteca/internal/ports"
)

func main() {
	dbFlag := flag.String("db", config.DatabasePath(), "path to the preference database")
	manifestFlag := flag.String("manifest", config.ManifestPath(), "path to a bundled picture manifest (JSON)")
	bundledDirFlag := flag.String("bundled-dir", config.BundledDir(), "directory to enumerate bundled pictures from")
	flag.Parse()

	dbPath := *dbFlag
	if dbPath == "" {
		dbPath = sqlite.DefaultPath()
	}
	prefs, err := sqlite.Open(dbPath)
	if err != nil {
		log.Fatalf("pinacoteca-mcp: %v", err)
	}
	defer prefs.Close()

	var providers []ports.Enumerator
	if *manifestFlag != "" {
		data, err := os.ReadFile(*manifestFlag)
		if err != nil {
			log.Printf("pinacoteca-mcp: cannot read manifest %s: %v", *manifestFlag, err)
		}
		providers = append(providers, bundled.NewManifestProvider(*manifestFlag, data))
	}
	if *bundledDirFlag != "" {
		providers = append(providers, bundled.NewDirProvider(os.DirFS(*bundledDirFlag), "/assets/"))
	}

	cache := application.NewDiskCache(prefs, disk.BuildIndex)
	resolver := application.NewResolver(bundled.Build(providers...), cache)

	mcpServer := server.NewMCPServer(
		"pinacoteca-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, resolver)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("pinacoteca-mcp: %v", err)
	}
}
