package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// Config holds the tunables of the motion engine.
type Config struct {
	// Period is the fixed scheduler tick period.
	Period time.Duration

	Drive       DriveConfig
	Rotate      RotateConfig
	Calibration CalibrationConfig
	Preferences PreferenceConfig
	Keys        PreferenceKeys
	Telemetry   bool
}

// DriveConfig tunes drive-straight maneuvers.
type DriveConfig struct {
	// GyroCorrection is the proportional gain applied to heading drift.
	GyroCorrection float64
	Timeout        time.Duration
	Throttle       ValueGradient
}

// RotateConfig tunes in-place rotations.
type RotateConfig struct {
	// Tolerance is the angular window, in degrees, that counts as on target.
	Tolerance float64
	Timeout   time.Duration
	Speed     ValueGradient
}

// CalibrationConfig tunes the coast calibration sequences.
type CalibrationConfig struct {
	Settle              time.Duration
	DriveRateTolerance  float64
	RotateRateTolerance float64
	DriveDistance       float64
	RotateTime          time.Duration
	Throttles           []float64
	Timeout             time.Duration
	Persist             bool
}

// PreferenceConfig selects the preference store backend.
type PreferenceConfig struct {
	Driver string
	Path   string
}

// PreferenceKeys names the entries written to the preference store.
type PreferenceKeys struct {
	DriveCoast  string
	RotateCoast string
	Playback    string
}

// Validate checks the invariants the engine relies on.
func (c Config) Validate() error {
	switch {
	case c.Period <= 0:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "validate"), "period", c.Period.String())
	case c.Drive.GyroCorrection < 0:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "validate"), "drive.gyro_correction", c.Drive.GyroCorrection)
	case c.Rotate.Tolerance <= 0:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "validate"), "rotate.tolerance", c.Rotate.Tolerance)
	case c.Calibration.Settle <= 0:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "validate"), "calibration.settle", c.Calibration.Settle.String())
	case c.Calibration.DriveRateTolerance <= 0:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "validate"), "calibration.drive_rate_tolerance", c.Calibration.DriveRateTolerance)
	case c.Calibration.RotateRateTolerance <= 0:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "validate"), "calibration.rotate_rate_tolerance", c.Calibration.RotateRateTolerance)
	case len(c.Calibration.Throttles) < 2:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "validate"), "calibration.throttles", len(c.Calibration.Throttles))
	}
	for _, th := range c.Calibration.Throttles {
		if th <= 0 || th > 1 {
			return zerr.With(zerr.Wrap(ErrInvalidConfig, "validate"), "calibration.throttle", th)
		}
	}
	return nil
}
