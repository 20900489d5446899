package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pinacoteca/internal/application/commands"
	"pinacoteca/internal/domain"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the merged picture index as a tree",
	Long: `Display the directory tree over both asset sources. Disk entries
shadow bundled entries with the same reference.

Example:
  pinacoteca-cli tree`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		root, err := commands.NewBuildTreeCommand(GetResolver()).Execute(ctx)
		if err != nil {
			return err
		}

		printTree(root, 0)
		return nil
	},
}

func printTree(node *domain.DirectoryNode, depth int) {
	indent := strings.Repeat("  ", depth)
	if node.Name != "" {
		fmt.Printf("%s%s/\n", indent, node.Name)
		depth++
		indent += "  "
	}
	for _, child := range node.SortedSubdirs() {
		printTree(child, depth)
	}
	for _, f := range node.Files {
		fmt.Printf("%s%s [%s]\n", indent, f.Name, f.Origin)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
