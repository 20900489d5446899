package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pinacoteca/internal/application/commands"
)

var setRootCmd = &cobra.Command{
	Use:   "set-root <absolute-path>",
	Short: "Set the pictures root folder",
	Long: `Persist the local folder to scan for pictures. The path must be
absolute. The disk index is rebuilt from the new root on the next use.

Example:
  pinacoteca-cli set-root /home/me/Pictures/catalog`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		setCmd := commands.NewSetRootCommand(GetPrefs(), GetCache(), args[0])
		result, err := setCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var getRootCmd = &cobra.Command{
	Use:   "get-root",
	Short: "Print the configured pictures root",
	RunE: func(cmd *cobra.Command, args []string) error {
		root := GetCache().ConfiguredRoot()
		if root == "" {
			fmt.Println("(not configured)")
			return nil
		}
		fmt.Println(root)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setRootCmd)
	rootCmd.AddCommand(getRootCmd)
}
