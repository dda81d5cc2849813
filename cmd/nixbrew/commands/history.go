package commands

import "github.com/spf13/cobra"

func (c *CLI) newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <package>",
		Short: "Show package history and available versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.History(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions <package>",
		Short: "List available versions of a package across channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Versions(cmd.Context(), args[0])
		},
	}
}
