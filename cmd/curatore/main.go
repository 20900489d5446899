package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pinacoteca/internal/adapters/bundled"
	"pinacoteca/internal/adapters/disk"
	"pinacoteca/internal/adapters/sqlite"
	"pinacoteca/internal/adapters/tui"
	"pinacoteca/internal/adapters/tui/views"
	"pinacoteca/internal/adapters/watch"
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
		log.Fatalf("curatore: %v", err)
	}
	defer prefs.Close()

	var providers []ports.Enumerator
	if *manifestFlag != "" {
		data, err := os.ReadFile(*manifestFlag)
		if err != nil {
			log.Printf("curatore: cannot read manifest %s: %v", *manifestFlag, err)
		}
		providers = append(providers, bundled.NewManifestProvider(*manifestFlag, data))
	}
	if *bundledDirFlag != "" {
		providers = append(providers, bundled.NewDirProvider(os.DirFS(*bundledDirFlag), "/assets/"))
	}

	cache := application.NewDiskCache(prefs, disk.BuildIndex)
	resolver := application.NewResolver(bundled.Build(providers...), cache)

	app := tui.NewApp(resolver)
	p := tea.NewProgram(app, tea.WithAltScreen())

	// Refresh the browser when the pictures root changes on disk.
	if root := cache.ConfiguredRoot(); root != "" {
		w, err := watch.New(root, cache, func() {
			p.Send(views.ExternalChangeMsg{})
		})
		if err == nil {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
