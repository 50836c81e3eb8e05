package motion

import (
	"fmt"
	"time"

	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/semi/internal/engine/task"
)

// AuxMotor runs the auxiliary motors at a fixed speed until its duration
// elapses, then stops them.
type AuxMotor struct {
	name     string
	aux      ports.Auxiliary
	speed    float64
	duration time.Duration
	timeout  task.Timeout
}

// NewAuxMotor creates a timed auxiliary run. Speed is clamped to [-1, 1] and a
// non-positive duration finishes on the first tick.
func NewAuxMotor(hw ports.Hardware, speed float64, duration time.Duration, opts ...Option) *AuxMotor {
	o := buildOptions(opts)
	name := o.name
	if name == "" {
		name = fmt.Sprintf("aux(%.2f,%s)", speed, duration)
	}
	return &AuxMotor{
		name:     name,
		aux:      hw.Auxiliary,
		speed:    clampUnit(speed),
		duration: duration,
		timeout:  task.NewTimeout(o.clock, duration),
	}
}

// Name implements task.Task.
func (a *AuxMotor) Name() string { return a.name }

// Requirements implements task.Task.
func (a *AuxMotor) Requirements() []domain.Resource {
	return []domain.Resource{domain.ResourceAuxiliary}
}

// Initialize starts the timer.
func (a *AuxMotor) Initialize() { a.timeout.Start() }

// Execute holds the motors at the configured speed.
func (a *AuxMotor) Execute() { a.aux.SetSpeed(a.speed) }

// IsFinished implements task.Task.
func (a *AuxMotor) IsFinished() bool {
	return a.duration <= 0 || a.timeout.Expired()
}

// End stops the motors.
func (a *AuxMotor) End() { a.aux.Stop() }

// Interrupted stops the motors.
func (a *AuxMotor) Interrupted() { a.aux.Stop() }
