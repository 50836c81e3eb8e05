package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/semi/internal/adapters/script" //nolint:depguard // Scripted operator for the CLI
)

func (c *CLI) newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Drive from an operator script and store the recording for playback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("script")
			squared, _ := cmd.Flags().GetBool("squared")

			op, err := script.Load(path)
			if err != nil {
				return err
			}

			rec, err := c.app.Record(cmd.Context(), op, squared)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %d actions (%s)\n", rec.Len(), rec.Duration())
			return nil
		},
	}
	cmd.Flags().StringP("script", "s", "", "Operator script (YAML)")
	cmd.Flags().Bool("squared", false, "Shape forward and turn with a signed square")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

func (c *CLI) newPlaybackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "playback",
		Short: "Replay the stored recording",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Playback(cmd.Context())
		},
	}
}
