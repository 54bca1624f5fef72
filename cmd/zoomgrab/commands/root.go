// Package commands implements the CLI commands for zoomgrab.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zoomgrab/zoomgrab/internal/app"
	"github.com/zoomgrab/zoomgrab/internal/build"
	"github.com/zoomgrab/zoomgrab/internal/core/domain"
)

// CLI represents the command line interface for zoomgrab.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, inputPath string, kind domain.DownloadKind, opts app.RunOptions) error
	Watch(ctx context.Context, kind domain.DownloadKind, opts app.RunOptions) error
	Menu(ctx context.Context, opts app.RunOptions) error
	Status(opts app.RunOptions) error
	Clean(opts app.CleanOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "zoomgrab",
		Short:         "Batch downloader for Zoom cloud recordings",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newMenuCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// baseOptions reads the flags every command shares.
func baseOptions(cmd *cobra.Command) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return app.RunOptions{
		ConfigPath: configPath,
		Verbose:    verbose,
	}
}

// parseKind validates the optional kind argument, defaulting to video.
func parseKind(args []string, pos int) (domain.DownloadKind, error) {
	if len(args) <= pos {
		return domain.KindVideo, nil
	}
	if !domain.ValidKind(args[pos]) {
		return "", domain.ErrInvalidKind
	}
	return domain.DownloadKind(args[pos]), nil
}
