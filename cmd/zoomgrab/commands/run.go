package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <input-file> [video|audio|transcript|all]",
		Short: "Download every recording listed in the input file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args, 1)
			if err != nil {
				return err
			}

			noConfirm, _ := cmd.Flags().GetBool("no-confirm")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "plain"
			if ci {
				outputMode = "plain"
			}

			opts := baseOptions(cmd)
			opts.NoConfirm = noConfirm
			opts.OutputMode = outputMode

			// Only an explicit flag overrides the configured sweep setting.
			if cmd.Flags().Changed("retry-failed") {
				retryFailed, _ := cmd.Flags().GetBool("retry-failed")
				opts.RetryFailed = &retryFailed
			}

			return c.app.Run(cmd.Context(), args[0], kind, opts)
		},
	}
	cmd.Flags().BoolP("no-confirm", "y", false, "Skip the confirmation prompt")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, bar, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")
	cmd.Flags().Bool("retry-failed", true, "Retry failed downloads once after the first pass")
	return cmd
}
