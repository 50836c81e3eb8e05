package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/engine/calibration"
)

func (c *CLI) newCalibrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "calibrate drive|rotate",
		Short:     "Measure coast distances and install the resulting model",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"drive", "rotate"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := calibration.KindDrive
			if args[0] == "rotate" {
				kind = calibration.KindRotate
			}

			noPersist, _ := cmd.Flags().GetBool("no-persist")
			persist := c.app.Config().Calibration.Persist && !noPersist

			model, err := c.app.Calibrate(cmd.Context(), kind, persist)
			if err != nil {
				return err
			}
			printModel(cmd.OutOrStdout(), kind.String(), model)
			return nil
		},
	}
	cmd.Flags().Bool("no-persist", false, "Install the model without writing it to the preference store")
	return cmd
}

func (c *CLI) newCoastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coast",
		Short: "Show the installed coast models",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			models := c.app.Models()
			printModel(cmd.OutOrStdout(), calibration.KindDrive.String(), models.Drive())
			printModel(cmd.OutOrStdout(), calibration.KindRotate.String(), models.Rotate())
		},
	}
}

func printModel(w io.Writer, name string, model *domain.CoastDistance) {
	if model == nil || model.Len() == 0 {
		_, _ = fmt.Fprintf(w, "%s: not calibrated\n", name)
		return
	}
	_, _ = fmt.Fprintf(w, "%s:\n", name)
	for _, s := range model.Samples() {
		_, _ = fmt.Fprintf(w, "  %8.3f -> %8.3f\n", s.Speed, s.Distance)
	}
}
