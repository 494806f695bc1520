package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch",
		Short: "Install dependencies and start the dashboard",
		Long: `Checks that the Python runtime and package manager are available,
installs the dashboard's dependencies from its manifest and starts the
dashboard on localhost. The command blocks until the dashboard exits and
adopts its exit status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Launch(cmd.Context())
		},
	}
}
