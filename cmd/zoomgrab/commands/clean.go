package commands

import (
	"github.com/spf13/cobra"
	"github.com/zoomgrab/zoomgrab/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove leftover partial download files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			ledger, _ := cmd.Flags().GetBool("ledger")

			return c.app.Clean(app.CleanOptions{
				ConfigPath: configPath,
				Ledger:     ledger,
			})
		},
	}
	cmd.Flags().BoolP("ledger", "l", false, "Also remove the download history")
	return cmd
}
