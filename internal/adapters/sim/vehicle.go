// Package sim provides a simulated differential-drive vehicle so the engine
// can run without hardware.
package sim

import (
	"math"
	"sync"
	"time"
)

// Params describes the simulated vehicle.
type Params struct {
	// MaxSpeed is the top wheel speed in m/s at full forward command.
	MaxSpeed float64
	// MaxTurnRate is the top yaw rate in deg/s at full turn command.
	MaxTurnRate float64
	// TimeConstant is the first-order motor response time.
	TimeConstant time.Duration
	// Friction is the linear deceleration in m/s² once power is cut.
	Friction float64
	// TurnFriction is the yaw deceleration in deg/s² once power is cut.
	TurnFriction float64
}

// DefaultParams returns a plausible small robot.
func DefaultParams() Params {
	return Params{
		MaxSpeed:     3.0,
		MaxTurnRate:  360,
		TimeConstant: 150 * time.Millisecond,
		Friction:     4.0,
		TurnFriction: 720,
	}
}

// Vehicle integrates drive commands into odometry and heading. It implements
// the gyro, drivetrain, auxiliary and poller ports.
type Vehicle struct {
	params Params

	mu       sync.Mutex
	forward  float64
	turn     float64
	powered  bool
	speed    float64
	yawRate  float64
	distance float64
	heading  float64
	aux      float64
}

// NewVehicle creates a vehicle at rest.
func NewVehicle(p Params) *Vehicle {
	return &Vehicle{params: p}
}

// Heading implements ports.Gyro.
func (v *Vehicle) Heading() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.heading
}

// Rate returns the wheel speed. It satisfies ports.Drivetrain.
func (v *Vehicle) Rate() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.speed
}

// Gyro returns the heading sensor view of the vehicle.
func (v *Vehicle) Gyro() *Gyro {
	return &Gyro{v: v}
}

// Distance implements ports.Drivetrain.
func (v *Vehicle) Distance() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.distance
}

// ResetDistance implements ports.Drivetrain.
func (v *Vehicle) ResetDistance() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.distance = 0
}

// Drive implements ports.Drivetrain. A zero command cuts power.
func (v *Vehicle) Drive(forward, turn float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.forward = clamp(forward)
	v.turn = clamp(turn)
	v.powered = v.forward != 0 || v.turn != 0
}

// Stop implements ports.Drivetrain.
func (v *Vehicle) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.forward, v.turn = 0, 0
	v.powered = false
}

// AuxSpeed returns the last auxiliary command.
func (v *Vehicle) AuxSpeed() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.aux
}

// Auxiliary returns the auxiliary motor view of the vehicle.
func (v *Vehicle) Auxiliary() *Auxiliary {
	return &Auxiliary{v: v}
}

// Poll advances the simulation by dt.
func (v *Vehicle) Poll(dt time.Duration) {
	if dt <= 0 {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	secs := dt.Seconds()
	if v.powered {
		alpha := 1.0
		if tau := v.params.TimeConstant.Seconds(); tau > 0 {
			alpha = 1 - math.Exp(-secs/tau)
		}
		v.speed += (v.forward*v.params.MaxSpeed - v.speed) * alpha
		v.yawRate += (v.turn*v.params.MaxTurnRate - v.yawRate) * alpha
	} else {
		v.speed = decay(v.speed, v.params.Friction*secs)
		v.yawRate = decay(v.yawRate, v.params.TurnFriction*secs)
	}

	v.distance += v.speed * secs
	v.heading += v.yawRate * secs
}

// decay moves x toward zero by step without crossing it.
func decay(x, step float64) float64 {
	if math.Abs(x) <= step {
		return 0
	}
	return x - math.Copysign(step, x)
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// Gyro is the ports.Gyro view of a Vehicle; its Rate is the yaw rate.
type Gyro struct{ v *Vehicle }

// Heading implements ports.Gyro.
func (g *Gyro) Heading() float64 { return g.v.Heading() }

// Rate implements ports.Gyro.
func (g *Gyro) Rate() float64 {
	g.v.mu.Lock()
	defer g.v.mu.Unlock()
	return g.v.yawRate
}

// Auxiliary is the ports.Auxiliary view of a Vehicle.
type Auxiliary struct{ v *Vehicle }

// SetSpeed implements ports.Auxiliary.
func (a *Auxiliary) SetSpeed(speed float64) {
	a.v.mu.Lock()
	defer a.v.mu.Unlock()
	a.v.aux = clamp(speed)
}

// Stop implements ports.Auxiliary.
func (a *Auxiliary) Stop() { a.SetSpeed(0) }
