package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pinacoteca/internal/application/commands"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	Long: `Show statistics for both asset sources: enumeration method, record
count, and any diagnostics (broken enumeration, skipped subtrees).

Example:
  pinacoteca-cli stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		result, err := commands.NewStatsCommand(GetResolver()).Execute(ctx)
		if err != nil {
			return err
		}

		if result.Root == "" {
			fmt.Println("pictures root: (not configured)")
		} else {
			fmt.Printf("pictures root: %s\n", result.Root)
		}
		printStats(result.Bundled)
		printStats(result.Disk)
		return nil
	},
}

func printStats(stats *commands.IndexStats) {
	if stats == nil {
		return
	}
	fmt.Printf("%s: %d picture(s) via %s\n", stats.Origin, stats.Count, stats.Method)
	if stats.Err != "" {
		fmt.Printf("  error: %s\n", stats.Err)
	}
	for _, skipped := range stats.Skipped {
		fmt.Printf("  skipped: %s\n", skipped)
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
