// Package ports defines the core interfaces for the application.
package ports

import (
	"time"

	"go.trai.ch/semi/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=hardware.go -destination=mocks/mock_hardware.go -package=mocks

// Gyro reads the vehicle heading.
type Gyro interface {
	// Heading returns the accumulated heading in degrees, increasing clockwise.
	Heading() float64
	// Rate returns the heading rate in degrees per second.
	Rate() float64
}

// Drivetrain is the differential drive: wheel odometry plus the drive command.
type Drivetrain interface {
	// Distance returns the average wheel distance in metres since the last reset.
	Distance() float64
	// Rate returns the average wheel speed in metres per second.
	Rate() float64
	// ResetDistance zeroes the distance accumulator.
	ResetDistance()
	// Drive issues a curvature command: forward and turn are independent terms in [-1, 1].
	Drive(forward, turn float64)
	// Stop cuts power to the drive motors.
	Stop()
}

// Auxiliary is the intake/ramp motor group.
type Auxiliary interface {
	SetSpeed(speed float64)
	Stop()
}

// OperatorInput samples the operator's controls.
type OperatorInput interface {
	Sample() domain.OperatorSample
}

// Poller is implemented by hardware that refreshes its readings once per tick.
type Poller interface {
	Poll(dt time.Duration)
}

// Hardware is the resource table built once at startup and handed to every task.
type Hardware struct {
	Gyro       Gyro
	Drivetrain Drivetrain
	Auxiliary  Auxiliary
	Input      OperatorInput
	// Pollers are advanced in order after the scheduler has run each tick.
	Pollers []Poller
}
