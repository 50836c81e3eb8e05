package calibration

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/semi/internal/engine/task"
)

type phase int

const (
	phaseRunUp phase = iota
	phaseCoasting
	phaseSettled
)

// populate runs up at a fixed throttle, cuts power and measures the coast
// until the vehicle has been still for the settle duration.
type populate struct {
	kind       Kind
	gyro       ports.Gyro
	drivetrain ports.Drivetrain
	log        ports.Logger
	clock      clockwork.Clock
	sink       func(speed, distance float64)

	// direction is +1 or -1; throttle is its magnitude.
	direction  float64
	throttle   float64
	setpoint   float64
	runUp      time.Duration
	correction float64
	tolerance  float64
	settle     time.Duration
	timeout    task.Timeout

	phase         phase
	baseline      float64
	started       time.Time
	stillSince    time.Time
	cutoffSpeed   float64
	cutoffHeading float64
	coasted       float64
}

func (p *populate) Name() string {
	return fmt.Sprintf("%s-coast-populate(%+.2f)", p.kind, p.direction*p.throttle)
}

func (p *populate) Requirements() []domain.Resource {
	return []domain.Resource{domain.ResourceDrivetrain}
}

func (p *populate) Initialize() {
	p.phase = phaseRunUp
	p.baseline = p.gyro.Heading()
	p.started = p.clock.Now()
	p.stillSince = time.Time{}
	p.cutoffSpeed, p.coasted = 0, 0
	p.drivetrain.ResetDistance()
	p.timeout.Start()
}

func (p *populate) Execute() {
	switch p.phase {
	case phaseRunUp:
		p.runUpStep()
	case phaseCoasting:
		p.coastStep()
	case phaseSettled:
	}
}

func (p *populate) runUpStep() {
	if p.kind == KindRotate {
		p.drivetrain.Drive(0, p.direction*p.throttle)
		if p.clock.Since(p.started) >= p.runUp {
			p.cut(abs(p.gyro.Rate()))
		}
		return
	}

	turn := -p.correction * (p.gyro.Heading() - p.baseline)
	p.drivetrain.Drive(p.direction*p.throttle, domain.Clamp(turn, -1, 1))
	if p.direction*p.drivetrain.Distance() >= p.setpoint {
		p.cut(abs(p.drivetrain.Rate()))
	}
}

func (p *populate) cut(speed float64) {
	p.cutoffSpeed = speed
	p.cutoffHeading = p.gyro.Heading()
	p.drivetrain.Stop()
	p.drivetrain.ResetDistance()
	p.phase = phaseCoasting
	p.log.Info(fmt.Sprintf("%s coast: cut power at throttle %.2f, speed %.3f", p.kind, p.throttle, speed))
}

func (p *populate) coastStep() {
	p.drivetrain.Stop()

	rate := p.drivetrain.Rate()
	if p.kind == KindRotate {
		rate = p.gyro.Rate()
	}
	if abs(rate) > p.tolerance {
		p.stillSince = time.Time{}
		return
	}
	if p.stillSince.IsZero() {
		p.stillSince = p.clock.Now()
		return
	}
	if p.clock.Since(p.stillSince) < p.settle {
		return
	}

	if p.kind == KindRotate {
		p.coasted = abs(p.gyro.Heading() - p.cutoffHeading)
	} else {
		p.coasted = abs(p.drivetrain.Distance())
	}
	p.phase = phaseSettled
}

func (p *populate) IsFinished() bool {
	return p.phase == phaseSettled || p.timeout.Expired()
}

func (p *populate) End() {
	p.drivetrain.Stop()
	if p.phase != phaseSettled {
		p.log.Warn(fmt.Sprintf("%s coast: timed out before settling at throttle %.2f", p.kind, p.throttle))
		return
	}
	p.sink(p.cutoffSpeed, p.coasted)
}

func (p *populate) Interrupted() {
	p.drivetrain.Stop()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
