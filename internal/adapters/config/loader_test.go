package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/semi/internal/adapters/config"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "semi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Times(1)

	path := filepath.Join(t.TempDir(), "missing.yaml")
	cfg, err := config.NewLoader(path, log).Load()
	require.NoError(t, err)

	assert.Equal(t, 20*time.Millisecond, cfg.Period)
	assert.InDelta(t, 0.0275, cfg.Drive.GyroCorrection, 1e-12)
	assert.InDelta(t, 4.0, cfg.Rotate.Tolerance, 1e-12)
	assert.Equal(t, 2500*time.Millisecond, cfg.Rotate.Timeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Calibration.Settle)
	assert.InDelta(t, 0.001, cfg.Calibration.DriveRateTolerance, 1e-12)
	assert.InDelta(t, 1.0, cfg.Calibration.RotateRateTolerance, 1e-12)
	assert.Equal(t, []float64{0.25, 0.5, 0.75, 1.0}, cfg.Calibration.Throttles)
	assert.True(t, cfg.Calibration.Persist)
	assert.Equal(t, "file", cfg.Preferences.Driver)
	assert.Equal(t, "DriveStraightCalibration", cfg.Keys.DriveCoast)
	assert.Equal(t, "RotateCalibration", cfg.Keys.RotateCoast)
	assert.Equal(t, "Playback", cfg.Keys.Playback)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
period: 10ms
rotate:
  tolerance: 2
  speed:
    min: 0.2
    max: 0.6
    range: 90
calibration:
  throttles: [0.5, 1.0]
  persist: false
preferences:
  driver: sqlite
  path: prefs.db
`)

	cfg, err := config.NewLoader(path, nil).Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, cfg.Period)
	assert.InDelta(t, 2.0, cfg.Rotate.Tolerance, 1e-12)
	assert.InDelta(t, 0.6, cfg.Rotate.Speed.Maximum, 1e-12)
	assert.InDelta(t, 90.0, cfg.Rotate.Speed.Range, 1e-12)
	assert.Equal(t, []float64{0.5, 1.0}, cfg.Calibration.Throttles)
	assert.False(t, cfg.Calibration.Persist)
	assert.Equal(t, "sqlite", cfg.Preferences.Driver)
	assert.Equal(t, "prefs.db", cfg.Preferences.Path)
	// Untouched keys keep their defaults.
	assert.InDelta(t, 0.0275, cfg.Drive.GyroCorrection, 1e-12)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SEMI_DRIVE_GYRO_CORRECTION", "0.05")
	t.Setenv("SEMI_PERIOD", "5ms")

	path := writeConfig(t, "period: 10ms\n")
	cfg, err := config.NewLoader(path, nil).Load()
	require.NoError(t, err)

	assert.InDelta(t, 0.05, cfg.Drive.GyroCorrection, 1e-12)
	assert.Equal(t, 5*time.Millisecond, cfg.Period)
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := writeConfig(t, "telemetry: true\n")
	t.Setenv(config.PathEnv, path)

	loader := config.NewLoader("", nil)
	assert.Equal(t, path, loader.Path)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Telemetry)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "non-positive period", content: "period: 0s\n"},
		{name: "zero tolerance", content: "rotate:\n  tolerance: 0\n"},
		{name: "single throttle", content: "calibration:\n  throttles: [0.5]\n"},
		{name: "inverted gradient", content: "drive:\n  throttle:\n    min: 0.9\n    max: 0.1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.NewLoader(writeConfig(t, tt.content), nil).Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_InvalidPeriodIsConfigError(t *testing.T) {
	_, err := config.NewLoader(writeConfig(t, "period: -1s\n"), nil).Load()
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := config.NewLoader(writeConfig(t, "period: [\n"), nil).Load()
	require.Error(t, err)
}

func TestRender_RoundTrip(t *testing.T) {
	cfg, err := config.NewLoader(filepath.Join(t.TempDir(), "none.yaml"), nil).Load()
	require.NoError(t, err)

	out, err := config.Render(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "gyro_correction: 0.0275")
	assert.Contains(t, string(out), "period: 20ms")

	path := writeConfig(t, string(out))
	again, err := config.NewLoader(path, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
