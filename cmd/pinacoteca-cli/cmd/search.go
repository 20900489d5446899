package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pinacoteca/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search indexed pictures",
	Long: `Search pictures by reference, file name, or path.

Results are ranked by relevance using fuzzy matching.

Examples:
  pinacoteca-cli search lamp
  pinacoteca-cli search room/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		ctx := context.Background()

		results, err := commands.NewSearchCommand(GetResolver(), query).Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, r := range results {
			fmt.Printf("[%s] %s  %s\n", r.Origin, r.Reference, r.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
