package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nixbrew/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <package> [version]",
		Short: "Install a package from nixpkgs",
		Long: `Install a package from nixpkgs, optionally pinned to a version.

The version may be a release line ("23.11"), a nixpkgs commit hash, or a
semantic version ("14.1.0") which is resolved by probing the configured
channels.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := ""
			if len(args) > 1 {
				version = args[1]
			}
			refresh, _ := cmd.Flags().GetBool("refresh")
			return c.app.Install(cmd.Context(), args[0], version, app.Options{Refresh: refresh})
		},
	}
	cmd.Flags().Bool("refresh", false, "Re-probe channels instead of using the resolved-version cache")
	return cmd
}
