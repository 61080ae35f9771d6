// Package commands implements the CLI commands for packship.
package commands

import (
	"context"

	"github.com/packship/packship/internal/adapters/config"
	"github.com/packship/packship/internal/app"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for packship.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "packship",
		Short:         "Publish content packages when their content changes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPublishCmd())
	rootCmd.AddCommand(c.newStatusCmd())
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

func (c *CLI) runOptions(cmd *cobra.Command, args []string) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	return app.RunOptions{
		ConfigPath: configPath,
		Packages:   args,
	}
}
