package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/engine/motion"
)

func (c *CLI) newDriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drive",
		Short: "Drive straight for a distance in metres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			distance, _ := cmd.Flags().GetFloat64("distance")

			var gradient *domain.ValueGradient
			if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") ||
				cmd.Flags().Changed("range") || cmd.Flags().Changed("start") {
				g, err := throttleFlags(cmd, c.app.Config().Drive.Throttle)
				if err != nil {
					return err
				}
				gradient = &g
			}
			return c.app.Drive(cmd.Context(), distance, gradient)
		},
	}
	cmd.Flags().Float64P("distance", "d", 0, "Signed distance to travel in metres")
	cmd.Flags().Float64("min", 0, "Minimum throttle near the target")
	cmd.Flags().Float64("max", 0, "Maximum throttle far from the target")
	cmd.Flags().Float64("range", 0, "Distance over which throttle ramps from min to max")
	cmd.Flags().Float64("start", 0, "Distance from the target where the ramp begins")
	_ = cmd.MarkFlagRequired("distance")
	return cmd
}

// throttleFlags overrides the fields of def that were set on the command line.
func throttleFlags(cmd *cobra.Command, def domain.ValueGradient) (domain.ValueGradient, error) {
	flags := cmd.Flags()
	minimum, maximum, rng, start := def.Minimum, def.Maximum, def.Range, def.RangeStart
	if flags.Changed("min") {
		minimum, _ = flags.GetFloat64("min")
	}
	if flags.Changed("max") {
		maximum, _ = flags.GetFloat64("max")
	}
	if flags.Changed("range") {
		rng, _ = flags.GetFloat64("range")
	}
	if flags.Changed("start") {
		start, _ = flags.GetFloat64("start")
	}
	return domain.NewValueGradient(minimum, maximum, rng, start)
}

func (c *CLI) newRotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Rotate in place by a number of degrees (positive is clockwise)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			degrees, _ := cmd.Flags().GetFloat64("degrees")
			return c.app.Rotate(cmd.Context(), degrees)
		},
	}
	cmd.Flags().Float64("degrees", 0, "Signed rotation in degrees")
	_ = cmd.MarkFlagRequired("degrees")
	return cmd
}

func (c *CLI) newAutoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Run an autonomous routine",
		Long: `Run the completion routine, or with --alliance and --plate the delivery
routine from a driver station to the assigned switch plate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if !flags.Changed("alliance") && !flags.Changed("plate") && !flags.Changed("deliver") {
				side := motion.SideLeft
				if right, _ := flags.GetBool("right"); right {
					side = motion.SideRight
				}
				return c.app.Auto(cmd.Context(), side)
			}

			station, _ := flags.GetString("alliance")
			alliance, err := motion.ParseAlliance(station)
			if err != nil {
				return err
			}
			side, _ := flags.GetString("plate")
			plate, err := motion.ParseSide(side)
			if err != nil {
				return err
			}
			deliver, _ := flags.GetBool("deliver")
			return c.app.Deliver(cmd.Context(), alliance, plate, deliver)
		},
	}
	cmd.Flags().Bool("right", false, "Start the completion routine from the right side")
	cmd.Flags().String("alliance", "centre", "Driver station to start from (left, centre, right)")
	cmd.Flags().String("plate", "left", "Side of the assigned switch plate (left, right)")
	cmd.Flags().Bool("deliver", false, "Release the cube at the plate")
	cmd.MarkFlagsMutuallyExclusive("right", "alliance")
	cmd.MarkFlagsMutuallyExclusive("right", "plate")
	cmd.MarkFlagsMutuallyExclusive("right", "deliver")
	return cmd
}

func (c *CLI) newAuxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aux",
		Short: "Run the auxiliary motors at a fixed speed for a duration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			speed, _ := cmd.Flags().GetFloat64("speed")
			duration, _ := cmd.Flags().GetDuration("duration")
			return c.app.Aux(cmd.Context(), speed, duration)
		},
	}
	cmd.Flags().Float64("speed", 1, "Motor speed in [-1, 1]")
	cmd.Flags().Duration("duration", motion.DeliverTime, "How long to run the motors")
	return cmd
}
