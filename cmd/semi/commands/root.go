// Package commands implements the CLI commands for semi.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/semi/internal/app"
	"go.trai.ch/semi/internal/build"
)

// CLI represents the command line interface for semi.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "semi",
		Short:         "Motion control and task scheduling for a differential-drive vehicle",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newDriveCmd())
	rootCmd.AddCommand(c.newRotateCmd())
	rootCmd.AddCommand(c.newAutoCmd())
	rootCmd.AddCommand(c.newAuxCmd())
	rootCmd.AddCommand(c.newCalibrateCmd())
	rootCmd.AddCommand(c.newRecordCmd())
	rootCmd.AddCommand(c.newPlaybackCmd())
	rootCmd.AddCommand(c.newCoastCmd())
	rootCmd.AddCommand(c.newConfigCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(out)
}
