package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nixbrew/internal/app"
)

func (c *CLI) newRollbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollback <package> <version>",
		Short: "Rollback to a previous version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh, _ := cmd.Flags().GetBool("refresh")
			return c.app.Rollback(cmd.Context(), args[0], args[1], app.Options{Refresh: refresh})
		},
	}
	cmd.Flags().Bool("refresh", false, "Re-probe channels instead of using the resolved-version cache")
	return cmd
}
