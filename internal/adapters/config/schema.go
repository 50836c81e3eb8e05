package config

import (
	"time"

	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/zerr"
)

// File represents the structure of the semi.yaml configuration file.
type File struct {
	Period      time.Duration  `mapstructure:"period" yaml:"period"`
	Telemetry   bool           `mapstructure:"telemetry" yaml:"telemetry"`
	Drive       DriveDTO       `mapstructure:"drive" yaml:"drive"`
	Rotate      RotateDTO      `mapstructure:"rotate" yaml:"rotate"`
	Calibration CalibrationDTO `mapstructure:"calibration" yaml:"calibration"`
	Preferences PreferencesDTO `mapstructure:"preferences" yaml:"preferences"`
	Keys        KeysDTO        `mapstructure:"keys" yaml:"keys"`
}

// GradientDTO represents a value gradient in the configuration.
type GradientDTO struct {
	Min   float64 `mapstructure:"min" yaml:"min"`
	Max   float64 `mapstructure:"max" yaml:"max"`
	Range float64 `mapstructure:"range" yaml:"range"`
	Start float64 `mapstructure:"start" yaml:"start"`
}

// DriveDTO represents the drive-straight section.
type DriveDTO struct {
	GyroCorrection float64       `mapstructure:"gyro_correction" yaml:"gyro_correction"`
	Timeout        time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Throttle       GradientDTO   `mapstructure:"throttle" yaml:"throttle"`
}

// RotateDTO represents the rotate section.
type RotateDTO struct {
	Tolerance float64       `mapstructure:"tolerance" yaml:"tolerance"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Speed     GradientDTO   `mapstructure:"speed" yaml:"speed"`
}

// CalibrationDTO represents the coast calibration section.
type CalibrationDTO struct {
	Settle              time.Duration `mapstructure:"settle" yaml:"settle"`
	DriveRateTolerance  float64       `mapstructure:"drive_rate_tolerance" yaml:"drive_rate_tolerance"`
	RotateRateTolerance float64       `mapstructure:"rotate_rate_tolerance" yaml:"rotate_rate_tolerance"`
	DriveDistance       float64       `mapstructure:"drive_distance" yaml:"drive_distance"`
	RotateTime          time.Duration `mapstructure:"rotate_time" yaml:"rotate_time"`
	Throttles           []float64     `mapstructure:"throttles" yaml:"throttles,flow"`
	Timeout             time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Persist             bool          `mapstructure:"persist" yaml:"persist"`
}

// PreferencesDTO represents the preference store section.
type PreferencesDTO struct {
	Driver string `mapstructure:"driver" yaml:"driver"`
	Path   string `mapstructure:"path" yaml:"path"`
}

// KeysDTO represents the preference key names.
type KeysDTO struct {
	DriveCoast  string `mapstructure:"drive_coast" yaml:"drive_coast"`
	RotateCoast string `mapstructure:"rotate_coast" yaml:"rotate_coast"`
	Playback    string `mapstructure:"playback" yaml:"playback"`
}

func (g GradientDTO) toDomain(name string) (domain.ValueGradient, error) {
	vg, err := domain.NewValueGradient(g.Min, g.Max, g.Range, g.Start)
	if err != nil {
		return domain.ValueGradient{}, zerr.With(err, "gradient", name)
	}
	return vg, nil
}

func gradientDTO(g domain.ValueGradient) GradientDTO {
	return GradientDTO{Min: g.Minimum, Max: g.Maximum, Range: g.Range, Start: g.RangeStart}
}

// toDomain converts the file representation into a validated domain.Config.
func (f File) toDomain() (domain.Config, error) {
	throttle, err := f.Drive.Throttle.toDomain("drive.throttle")
	if err != nil {
		return domain.Config{}, err
	}
	speed, err := f.Rotate.Speed.toDomain("rotate.speed")
	if err != nil {
		return domain.Config{}, err
	}

	cfg := domain.Config{
		Period:    f.Period,
		Telemetry: f.Telemetry,
		Drive: domain.DriveConfig{
			GyroCorrection: f.Drive.GyroCorrection,
			Timeout:        f.Drive.Timeout,
			Throttle:       throttle,
		},
		Rotate: domain.RotateConfig{
			Tolerance: f.Rotate.Tolerance,
			Timeout:   f.Rotate.Timeout,
			Speed:     speed,
		},
		Calibration: domain.CalibrationConfig{
			Settle:              f.Calibration.Settle,
			DriveRateTolerance:  f.Calibration.DriveRateTolerance,
			RotateRateTolerance: f.Calibration.RotateRateTolerance,
			DriveDistance:       f.Calibration.DriveDistance,
			RotateTime:          f.Calibration.RotateTime,
			Throttles:           append([]float64(nil), f.Calibration.Throttles...),
			Timeout:             f.Calibration.Timeout,
			Persist:             f.Calibration.Persist,
		},
		Preferences: domain.PreferenceConfig{
			Driver: f.Preferences.Driver,
			Path:   f.Preferences.Path,
		},
		Keys: domain.PreferenceKeys{
			DriveCoast:  f.Keys.DriveCoast,
			RotateCoast: f.Keys.RotateCoast,
			Playback:    f.Keys.Playback,
		},
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// FromDomain converts a domain.Config back to its file representation.
func FromDomain(cfg domain.Config) File {
	return File{
		Period:    cfg.Period,
		Telemetry: cfg.Telemetry,
		Drive: DriveDTO{
			GyroCorrection: cfg.Drive.GyroCorrection,
			Timeout:        cfg.Drive.Timeout,
			Throttle:       gradientDTO(cfg.Drive.Throttle),
		},
		Rotate: RotateDTO{
			Tolerance: cfg.Rotate.Tolerance,
			Timeout:   cfg.Rotate.Timeout,
			Speed:     gradientDTO(cfg.Rotate.Speed),
		},
		Calibration: CalibrationDTO{
			Settle:              cfg.Calibration.Settle,
			DriveRateTolerance:  cfg.Calibration.DriveRateTolerance,
			RotateRateTolerance: cfg.Calibration.RotateRateTolerance,
			DriveDistance:       cfg.Calibration.DriveDistance,
			RotateTime:          cfg.Calibration.RotateTime,
			Throttles:           cfg.Calibration.Throttles,
			Timeout:             cfg.Calibration.Timeout,
			Persist:             cfg.Calibration.Persist,
		},
		Preferences: PreferencesDTO{Driver: cfg.Preferences.Driver, Path: cfg.Preferences.Path},
		Keys: KeysDTO{
			DriveCoast:  cfg.Keys.DriveCoast,
			RotateCoast: cfg.Keys.RotateCoast,
			Playback:    cfg.Keys.Playback,
		},
	}
}
