package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Pick a list file and download kind interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Menu(cmd.Context(), baseOptions(cmd))
		},
	}
}
