package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered properties",
		Long:  `List shows every registered property with its description.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyUIFlags(cmd)

			return suiteRunner.List()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
