package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pinacoteca/internal/application/commands"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the disk index",
	Long: `Drop the cached disk index and re-scan the configured pictures root.

Example:
  pinacoteca-cli rebuild`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		idx, err := commands.NewRebuildCommand(GetCache()).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Indexed %d picture(s) via %s\n", idx.Count, idx.Method)
		if idx.Err != "" {
			fmt.Printf("error: %s\n", idx.Err)
		}
		for _, skipped := range idx.Skipped {
			fmt.Printf("skipped: %s\n", skipped)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}
