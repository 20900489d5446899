package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pinacoteca/internal/adapters/bundled"
	"pinacoteca/internal/adapters/disk"
	"pinacoteca/internal/adapters/sqlite"
	"pinacoteca/internal/application"
	"pinacoteca/internal/config"
	"pinacoteca/internal/ports"
)

var (
	dbPath       string
	manifestPath string
	bundledDir   string
	rootOverride string

	prefs    ports.Preferences
	cache    *application.DiskCache
	resolver *application.Resolver
)

var rootCmd = &cobra.Command{
	Use:   "pinacoteca-cli",
	Short: "CLI for resolving and inspecting picture references",
	Long: `pinacoteca-cli resolves stored picture references (e.g. @pp/room/lamp.png)
to loadable URLs, drawing on two asset sources: pictures bundled into the
application build and pictures scanned from a user-configured local folder.

It provides commands to resolve references and to inspect, search, and
rebuild the underlying indexes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		if rootOverride != "" {
			// Ad-hoc inspection of a folder without touching the
			// persisted preference.
			prefs = memPrefs{application.PrefPicturesRoot: rootOverride}
		} else {
			store, err := sqlite.Open(databasePath())
			if err != nil {
				return err
			}
			prefs = store
		}

		cache = application.NewDiskCache(prefs, disk.BuildIndex)
		resolver = application.NewResolver(bundled.Build(bundledProviders()...), cache)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if prefs != nil {
			return prefs.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DatabasePath(), "path to the preference database")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", config.ManifestPath(), "path to a bundled picture manifest (JSON)")
	rootCmd.PersistentFlags().StringVar(&bundledDir, "bundled-dir", config.BundledDir(), "directory to enumerate bundled pictures from when no manifest is set")
	rootCmd.PersistentFlags().StringVarP(&rootOverride, "root", "r", "", "pictures root for this invocation (overrides the stored preference)")
}

func databasePath() string {
	if dbPath != "" {
		return dbPath
	}
	return sqlite.DefaultPath()
}

// bundledProviders assembles the enumeration strategies in priority order:
// an explicit manifest wins over a bundled directory walk.
func bundledProviders() []ports.Enumerator {
	var providers []ports.Enumerator
	if manifestPath != "" {
		data, err := os.ReadFile(manifestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cannot read manifest %s: %v\n", manifestPath, err)
		}
		providers = append(providers, bundled.NewManifestProvider(manifestPath, data))
	}
	if bundledDir != "" {
		providers = append(providers, bundled.NewDirProvider(os.DirFS(bundledDir), "/assets/"))
	}
	return providers
}

// memPrefs is a read-only in-memory preference store backing --root.
type memPrefs map[string]string

func (m memPrefs) Get(key string) (string, error) { return m[key], nil }
func (m memPrefs) Set(key, value string) error    { m[key] = value; return nil }
func (m memPrefs) Delete(key string) error        { delete(m, key); return nil }
func (m memPrefs) Close() error                   { return nil }

// GetResolver returns the initialized resolver
func GetResolver() *application.Resolver {
	return resolver
}

// GetPrefs returns the initialized preference store
func GetPrefs() ports.Preferences {
	return prefs
}

// GetCache returns the initialized disk index cache
func GetCache() *application.DiskCache {
	return cache
}
