package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pinacoteca/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List a directory of the merged picture index",
	Long: `List the direct subdirectories and pictures of one directory in the
merged index. Without an argument lists the index root.

Examples:
  pinacoteca-cli list
  pinacoteca-cli list room/lamps`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}
		ctx := context.Background()

		result, err := commands.NewListCommand(GetResolver(), dir).Execute(ctx)
		if err != nil {
			return err
		}

		for _, sub := range result.Subdirs {
			fmt.Printf("%s/\n", sub)
		}
		for _, f := range result.Files {
			fmt.Printf("%s  [%s]  %s\n", f.Reference, f.Origin, f.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
