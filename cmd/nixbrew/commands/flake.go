package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nixbrew/internal/app"
)

func (c *CLI) newCreateFlakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-flake <package> [version]",
		Short: "Create a flake.nix for a package",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := ""
			if len(args) > 1 {
				version = args[1]
			}
			refresh, _ := cmd.Flags().GetBool("refresh")
			return c.app.CreateFlake(cmd.Context(), args[0], version, app.Options{Refresh: refresh})
		},
	}
	cmd.Flags().Bool("refresh", false, "Re-probe channels instead of using the resolved-version cache")
	return cmd
}
