package cmd

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"pinacoteca/internal/application/commands"
)

var copyToClipboard bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <ref>...",
	Short: "Resolve picture references to URLs",
	Long: `Resolve one or more stored references to loadable URLs.

An empty line means the asset is missing from both indexes. The disk index
takes priority over the bundled one, so a configured local folder overrides
bundled defaults.

Examples:
  pinacoteca-cli resolve @pp/room/lamp.png
  pinacoteca-cli resolve --copy @pp/room/lamp.png
  pinacoteca-cli resolve @media/manual.jpg https://cdn/x.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		results, err := commands.NewResolveCommand(GetResolver(), args...).Execute(ctx)
		if err != nil {
			return err
		}

		for _, r := range results {
			fmt.Println(r.URL)
		}

		if copyToClipboard {
			if err := clipboard.WriteAll(results[0].URL); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "copy the first resolved URL to the clipboard")
	rootCmd.AddCommand(resolveCmd)
}
