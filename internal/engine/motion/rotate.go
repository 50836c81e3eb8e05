package motion

import (
	"fmt"

	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/semi/internal/engine/task"
)

// Rotate turns in place by a heading delta in degrees, clockwise positive.
type Rotate struct {
	name       string
	gyro       ports.Gyro
	drivetrain ports.Drivetrain
	delta      float64
	tolerance  float64
	gradient   domain.ValueGradient
	coast      *domain.CoastDistance
	timeout    task.Timeout

	target   float64
	coasting bool
}

// NewRotate creates a rotation of delta degrees.
func NewRotate(hw ports.Hardware, cfg domain.RotateConfig, delta float64, opts ...Option) *Rotate {
	o := buildOptions(opts)
	name := o.name
	if name == "" {
		name = fmt.Sprintf("rotate(%.1fdeg)", delta)
	}
	return &Rotate{
		name:       name,
		gyro:       hw.Gyro,
		drivetrain: hw.Drivetrain,
		delta:      delta,
		tolerance:  cfg.Tolerance,
		gradient:   o.gradientOr(cfg.Speed),
		coast:      o.coast,
		timeout:    task.NewTimeout(o.clock, o.timeoutOr(cfg.Timeout)),
	}
}

// Name implements task.Task.
func (r *Rotate) Name() string { return r.name }

// Requirements implements task.Task.
func (r *Rotate) Requirements() []domain.Resource {
	return []domain.Resource{domain.ResourceDrivetrain}
}

// Initialize fixes the target heading relative to the current one.
func (r *Rotate) Initialize() {
	r.target = r.gyro.Heading() + r.delta
	r.coasting = false
	r.timeout.Start()
}

// Target returns the absolute target heading.
func (r *Rotate) Target() float64 { return r.target }

// Remaining returns the absolute angle left to the target.
func (r *Rotate) Remaining() float64 {
	return abs(r.gyro.Heading() - r.target)
}

// HasOvershot reports whether the heading passed the target by more than the
// tolerance in the direction of travel.
func (r *Rotate) HasOvershot() bool {
	heading := r.gyro.Heading()
	if r.delta >= 0 {
		return heading > r.target+r.tolerance
	}
	return heading < r.target-r.tolerance
}

// Execute issues one rotation-only command.
func (r *Rotate) Execute() {
	if r.HasOvershot() {
		r.drivetrain.Drive(0, 0)
		return
	}
	remaining := r.Remaining()
	if coastCovers(r.coast, r.gyro.Rate, remaining) {
		r.coasting = true
		r.drivetrain.Drive(0, 0)
		return
	}
	r.drivetrain.Drive(0, clampUnit(domain.Sign(r.delta)*r.gradient.Interpolate(remaining)))
}

// IsFinished reports being on target, an overshoot, a coast cut-off or a timeout.
func (r *Rotate) IsFinished() bool {
	return domain.WithinTolerance(r.gyro.Heading(), r.target, r.tolerance) ||
		r.HasOvershot() || r.coasting || r.timeout.Expired()
}

// End stops the drivetrain.
func (r *Rotate) End() { r.drivetrain.Stop() }

// Interrupted stops the drivetrain.
func (r *Rotate) Interrupted() { r.drivetrain.Stop() }
