package calibration_test

import (
	"testing"
	"time"

	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/semi/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type vehicle struct {
	heading   float64
	gyroRate  float64
	distance  float64
	speed     float64
	forward   float64
	turn      float64
	stops     int
	resets    int
	driveCall int
}

func (v *vehicle) Heading() float64  { return v.heading }
func (v *vehicle) Rate() float64     { return v.speed }
func (v *vehicle) Distance() float64 { return v.distance }
func (v *vehicle) ResetDistance() {
	v.resets++
	v.distance = 0
}
func (v *vehicle) Drive(forward, turn float64) {
	v.driveCall++
	v.forward, v.turn = forward, turn
}
func (v *vehicle) Stop() {
	v.stops++
	v.forward, v.turn = 0, 0
}

// gyro exposes the heading rate separately from the wheel speed.
type gyro struct{ v *vehicle }

func (g gyro) Heading() float64 { return g.v.heading }
func (g gyro) Rate() float64    { return g.v.gyroRate }

func (v *vehicle) hardware() ports.Hardware {
	return ports.Hardware{Gyro: gyro{v}, Drivetrain: v}
}

func testConfig() domain.Config {
	return domain.Config{
		Period: 20 * time.Millisecond,
		Drive:  domain.DriveConfig{GyroCorrection: 0.0275},
		Calibration: domain.CalibrationConfig{
			Settle:              1500 * time.Millisecond,
			DriveRateTolerance:  0.001,
			RotateRateTolerance: 1.0,
			DriveDistance:       1.0,
			RotateTime:          time.Second,
			Throttles:           []float64{0.5, 1.0},
			Persist:             true,
		},
		Keys: domain.PreferenceKeys{
			DriveCoast:  "DriveStraightCalibration",
			RotateCoast: "RotateCalibration",
			Playback:    "Playback",
		},
	}
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func requireNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
