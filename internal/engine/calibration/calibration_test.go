package calibration_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports/mocks"
	"go.trai.ch/semi/internal/engine/calibration"
	"go.uber.org/mock/gomock"
)

// runDriveLeg drives one leg from run-up to settled. The leg's distance
// accumulator has just been reset.
func runDriveLeg(c *calibration.Calibration, v *vehicle, clock clockwork.FakeClock, sign, speed, coast float64) {
	c.Execute() // run-up
	v.distance, v.speed = sign*1.0, sign*speed
	c.Execute() // cut-off resets odometry
	v.distance, v.speed = sign*coast, 0
	c.Execute() // still: settle timer starts
	clock.Advance(1500 * time.Millisecond)
	c.Execute() // settled, leg ends
}

func TestDriveCalibration_CompletesAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := quietLogger(ctrl)
	store := mocks.NewMockPreferenceStore(ctrl)
	clock := clockwork.NewFakeClock()
	v := &vehicle{}
	models := calibration.NewModels()

	var saved string
	store.EXPECT().Put("DriveStraightCalibration", gomock.Any()).DoAndReturn(func(_, value string) error {
		saved = value
		return nil
	})

	c := calibration.NewDriveCalibration(v.hardware(), testConfig(), models, store, log, calibration.WithClock(clock))
	assert.Equal(t, "drive-coast-calibration", c.Name())
	assert.Equal(t, []domain.Resource{domain.ResourceDrivetrain}, c.Requirements())

	c.Initialize()
	runDriveLeg(c, v, clock, 1, 2.0, 0.4)
	assert.False(t, c.IsFinished())
	assert.InDelta(t, 0, v.distance, 1e-12, "second leg resets odometry")

	c.Execute()
	assert.InDelta(t, -1.0, v.forward, 1e-12, "second leg runs in reverse")
	runDriveLeg(c, v, clock, -1, 3.0, 0.9)
	require.True(t, c.IsFinished())

	c.End()
	assert.True(t, c.Installed())
	assert.Same(t, c.Result(), models.Drive())
	assert.JSONEq(t, `{"mapping":[{"speed":2,"distance":0.4},{"speed":3,"distance":0.9}]}`, saved)
	assert.InDelta(t, 0.65, models.Drive().Distance(2.5, 0), 1e-9)
}

func TestDriveCalibration_SettleTimerResets(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := quietLogger(ctrl)
	clock := clockwork.NewFakeClock()
	v := &vehicle{}

	cfg := testConfig()
	cfg.Calibration.Persist = false
	c := calibration.NewDriveCalibration(v.hardware(), cfg, calibration.NewModels(), nil, log, calibration.WithClock(clock))

	c.Initialize()
	c.Execute()
	v.distance, v.speed = 1.0, 2.0
	c.Execute() // cut-off

	v.speed = 0
	c.Execute() // still
	clock.Advance(time.Second)
	v.speed = 0.01
	c.Execute() // moving again: timer cleared
	v.speed = 0
	c.Execute() // still again
	clock.Advance(time.Second)
	c.Execute()
	assert.False(t, c.IsFinished())
	assert.Nil(t, c.Result())
}

func TestDriveCalibration_InterruptedDiscards(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := quietLogger(ctrl)
	// No Put expectation: any write fails the test.
	store := mocks.NewMockPreferenceStore(ctrl)
	clock := clockwork.NewFakeClock()
	v := &vehicle{}

	models := calibration.NewModels()
	previous := domain.NewCoastDistance()
	require.NoError(t, previous.Populate(1, 0.2))
	models.Install(calibration.KindDrive, previous)

	log.EXPECT().Error(gomock.Cond(func(err error) bool {
		return errors.Is(err, domain.ErrCalibrationIncomplete)
	}))

	c := calibration.NewDriveCalibration(v.hardware(), testConfig(), models, store, log, calibration.WithClock(clock))
	c.Initialize()
	runDriveLeg(c, v, clock, 1, 2.0, 0.4)
	c.Execute()

	stops := v.stops
	c.Interrupted()

	assert.Greater(t, v.stops, stops)
	assert.False(t, c.Installed())
	assert.Nil(t, c.Result())
	assert.Same(t, previous, models.Drive())
}

func TestDriveCalibration_NoSamplesKeepsModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := quietLogger(ctrl)
	store := mocks.NewMockPreferenceStore(ctrl)
	clock := clockwork.NewFakeClock()
	v := &vehicle{}

	cfg := testConfig()
	cfg.Calibration.Timeout = 5 * time.Second
	models := calibration.NewModels()
	previous := models.Drive()

	c := calibration.NewDriveCalibration(v.hardware(), cfg, models, store, log, calibration.WithClock(clock))
	c.Initialize()
	for range 2 {
		c.Execute()
		clock.Advance(5 * time.Second)
		c.Execute()
	}
	require.True(t, c.IsFinished())

	c.End()
	assert.False(t, c.Installed())
	assert.Same(t, previous, models.Drive())
	assert.Equal(t, 0, c.Result().Len())
}

func TestRotateCalibration_Completes(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := quietLogger(ctrl)
	store := mocks.NewMockPreferenceStore(ctrl)
	clock := clockwork.NewFakeClock()
	v := &vehicle{}
	models := calibration.NewModels()

	store.EXPECT().Put("RotateCalibration", gomock.Any()).Return(nil)

	c := calibration.NewRotateCalibration(v.hardware(), testConfig(), models, store, log, calibration.WithClock(clock))
	assert.Equal(t, "rotate-coast-calibration", c.Name())

	c.Initialize()
	for i, leg := range []struct{ sign, rate, coast float64 }{
		{sign: 1, rate: 120, coast: 15},
		{sign: -1, rate: 200, coast: 30},
	} {
		c.Execute()
		assert.InDelta(t, leg.sign*[]float64{0.5, 1.0}[i], v.turn, 1e-12)
		assert.InDelta(t, 0, v.forward, 1e-12)

		clock.Advance(time.Second)
		v.gyroRate = leg.sign * leg.rate
		c.Execute() // cut-off after the run-up time
		v.heading += leg.sign * leg.coast
		v.gyroRate = 0.5 // inside the 1 deg/s tolerance
		c.Execute()
		clock.Advance(1500 * time.Millisecond)
		c.Execute()
	}
	require.True(t, c.IsFinished())
	c.End()

	model := models.Rotate()
	require.Equal(t, 2, model.Len())
	assert.InDelta(t, 15, model.Distance(120, 0), 1e-9)
	assert.InDelta(t, 30, model.Distance(200, 0), 1e-9)
}

func TestCalibration_PersistDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := quietLogger(ctrl)
	store := mocks.NewMockPreferenceStore(ctrl)
	clock := clockwork.NewFakeClock()
	v := &vehicle{}
	models := calibration.NewModels()

	c := calibration.NewDriveCalibration(v.hardware(), testConfig(), models, store, log,
		calibration.WithClock(clock), calibration.WithPersist(false))
	c.Initialize()
	runDriveLeg(c, v, clock, 1, 2.0, 0.4)
	c.Execute()
	runDriveLeg(c, v, clock, -1, 3.0, 0.9)
	c.End()

	assert.True(t, c.Installed())
	assert.Equal(t, 2, models.Drive().Len())
}
