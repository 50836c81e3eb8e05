package motion_test

import (
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
)

type command struct{ forward, turn float64 }

// vehicle is a scripted gyro and drivetrain.
type vehicle struct {
	heading  float64
	rate     float64
	distance float64
	speed    float64
	commands []command
	stops    int
	resets   int
}

func (v *vehicle) Heading() float64 { return v.heading }
func (v *vehicle) Rate() float64 {
	if v.rate != 0 {
		return v.rate
	}
	return v.speed
}
func (v *vehicle) Distance() float64 { return v.distance }
func (v *vehicle) ResetDistance() {
	v.resets++
	v.distance = 0
}
func (v *vehicle) Drive(forward, turn float64) { v.commands = append(v.commands, command{forward, turn}) }
func (v *vehicle) Stop()                       { v.stops++ }

func (v *vehicle) last() command { return v.commands[len(v.commands)-1] }

func (v *vehicle) hardware() ports.Hardware {
	return ports.Hardware{Gyro: v, Drivetrain: v}
}

func mustGradient(minimum, maximum, rng, start float64) domain.ValueGradient {
	g, err := domain.NewValueGradient(minimum, maximum, rng, start)
	if err != nil {
		panic(err)
	}
	return g
}

func driveConfig() domain.DriveConfig {
	return domain.DriveConfig{
		GyroCorrection: 0.0275,
		Throttle:       mustGradient(0.2, 0.8, 1.0, 0),
	}
}

func rotateConfig() domain.RotateConfig {
	return domain.RotateConfig{
		Tolerance: 4,
		Speed:     mustGradient(0.3, 0.6, 45, 0),
	}
}

// auxMotors records the last auxiliary speed.
type auxMotors struct {
	speed float64
	stops int
}

func (a *auxMotors) SetSpeed(speed float64) { a.speed = speed }
func (a *auxMotors) Stop() {
	a.stops++
	a.speed = 0
}
