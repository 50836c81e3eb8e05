package config

import "github.com/spf13/viper"

func setDefaults(v *viper.Viper) {
	v.SetDefault("period", "20ms")
	v.SetDefault("telemetry", false)

	v.SetDefault("drive.gyro_correction", 0.0275)
	v.SetDefault("drive.timeout", "0s")
	v.SetDefault("drive.throttle.min", 0.3)
	v.SetDefault("drive.throttle.max", 0.75)
	v.SetDefault("drive.throttle.range", 1.0)
	v.SetDefault("drive.throttle.start", 0.0)

	v.SetDefault("rotate.tolerance", 4.0)
	v.SetDefault("rotate.timeout", "2.5s")
	v.SetDefault("rotate.speed.min", 0.25)
	v.SetDefault("rotate.speed.max", 0.5)
	v.SetDefault("rotate.speed.range", 45.0)
	v.SetDefault("rotate.speed.start", 0.0)

	v.SetDefault("calibration.settle", "1.5s")
	v.SetDefault("calibration.drive_rate_tolerance", 0.001)
	v.SetDefault("calibration.rotate_rate_tolerance", 1.0)
	v.SetDefault("calibration.drive_distance", 1.5)
	v.SetDefault("calibration.rotate_time", "1s")
	v.SetDefault("calibration.throttles", []float64{0.25, 0.5, 0.75, 1.0})
	v.SetDefault("calibration.timeout", "10s")
	v.SetDefault("calibration.persist", true)

	v.SetDefault("preferences.driver", "file")
	v.SetDefault("preferences.path", "semi_prefs.json")

	v.SetDefault("keys.drive_coast", "DriveStraightCalibration")
	v.SetDefault("keys.rotate_coast", "RotateCalibration")
	v.SetDefault("keys.playback", "Playback")
}
