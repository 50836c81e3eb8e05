package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/semi/internal/adapters/config" //nolint:depguard // Rendering the effective config
)

func (c *CLI) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := config.Render(c.app.Config())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
