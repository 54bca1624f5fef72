package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [video|audio|transcript|all]",
		Short: "Watch the input directory and download new lists automatically",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args, 0)
			if err != nil {
				return err
			}

			outputMode, _ := cmd.Flags().GetString("output-mode")
			dir, _ := cmd.Flags().GetString("dir")
			opts := baseOptions(cmd)
			opts.OutputMode = outputMode
			opts.WatchDir = dir

			return c.app.Watch(cmd.Context(), kind, opts)
		},
	}
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, bar, or plain")
	cmd.Flags().StringP("dir", "d", "", "Directory to watch (defaults to input/)")
	return cmd
}
