package motion

import (
	"fmt"

	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/semi/internal/engine/task"
)

// DriveStraight drives a signed distance in metres, holding the heading it
// started with through proportional gyro correction.
type DriveStraight struct {
	name       string
	gyro       ports.Gyro
	drivetrain ports.Drivetrain
	target     float64
	gradient   domain.ValueGradient
	correction float64
	coast      *domain.CoastDistance
	timeout    task.Timeout

	baseline float64
	coasting bool
}

// NewDriveStraight creates a drive of target metres; negative targets reverse.
func NewDriveStraight(hw ports.Hardware, cfg domain.DriveConfig, target float64, opts ...Option) *DriveStraight {
	o := buildOptions(opts)
	name := o.name
	if name == "" {
		name = fmt.Sprintf("drive-straight(%.2fm)", target)
	}
	return &DriveStraight{
		name:       name,
		gyro:       hw.Gyro,
		drivetrain: hw.Drivetrain,
		target:     target,
		gradient:   o.gradientOr(cfg.Throttle),
		correction: cfg.GyroCorrection,
		coast:      o.coast,
		timeout:    task.NewTimeout(o.clock, o.timeoutOr(cfg.Timeout)),
	}
}

// Name implements task.Task.
func (d *DriveStraight) Name() string { return d.name }

// Requirements implements task.Task.
func (d *DriveStraight) Requirements() []domain.Resource {
	return []domain.Resource{domain.ResourceDrivetrain}
}

// Initialize records the baseline heading and zeroes odometry.
func (d *DriveStraight) Initialize() {
	d.baseline = d.gyro.Heading()
	d.coasting = false
	d.drivetrain.ResetDistance()
	d.timeout.Start()
}

// Remaining returns the signed distance still to go in the direction of travel.
func (d *DriveStraight) Remaining() float64 {
	return abs(d.target) - domain.Sign(d.target)*d.drivetrain.Distance()
}

// Execute issues one drive command.
func (d *DriveStraight) Execute() {
	remaining := d.Remaining()
	if remaining <= 0 {
		d.drivetrain.Drive(0, 0)
		return
	}
	if coastCovers(d.coast, d.drivetrain.Rate, remaining) {
		d.coasting = true
		d.drivetrain.Drive(0, 0)
		return
	}

	forward := domain.Sign(d.target) * d.gradient.Interpolate(remaining)
	turn := -d.correction * (d.gyro.Heading() - d.baseline)
	d.drivetrain.Drive(clampUnit(forward), clampUnit(turn))
}

// IsFinished reports arrival, an early coast cut-off or a timeout.
func (d *DriveStraight) IsFinished() bool {
	return d.Remaining() <= 0 || d.coasting || d.timeout.Expired()
}

// End stops the drivetrain.
func (d *DriveStraight) End() { d.drivetrain.Stop() }

// Interrupted stops the drivetrain.
func (d *DriveStraight) Interrupted() { d.drivetrain.Stop() }
