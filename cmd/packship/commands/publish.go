package commands

import "github.com/spf13/cobra"

func (c *CLI) newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish [packages...]",
		Short: "Publish packages whose content changed since the last publish",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.runOptions(cmd, args)
			opts.Force, _ = cmd.Flags().GetBool("force")
			opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
			return c.app.Run(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Republish even if the content is unchanged")
	cmd.Flags().Bool("dry-run", false, "Report what would be published without publishing or writing state")
	return cmd
}
