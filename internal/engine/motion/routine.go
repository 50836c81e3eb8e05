package motion

import (
	"strings"
	"time"

	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/semi/internal/engine/task"
	"go.trai.ch/zerr"
)

// Side selects the mirror image of the autonomous routine. It also names the
// side of the switch plate assigned to the alliance.
type Side int

// Sides of the field the routine starts from.
const (
	SideLeft Side = iota
	SideRight
)

func (s Side) sign() float64 {
	if s == SideRight {
		return 1
	}
	return -1
}

// String returns "left" or "right".
func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// ParseSide parses "left" or "right".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	}
	return SideLeft, zerr.With(zerr.Wrap(domain.ErrInvalidPosition, "side"), "value", s)
}

// Alliance is the driver station the vehicle starts in front of.
type Alliance int

// Driver stations.
const (
	AllianceLeft Alliance = iota
	AllianceCentre
	AllianceRight
)

// String returns "left", "centre" or "right".
func (a Alliance) String() string {
	switch a {
	case AllianceCentre:
		return "centre"
	case AllianceRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlliance parses "left", "centre" (or "center") or "right".
func ParseAlliance(s string) (Alliance, error) {
	switch strings.ToLower(s) {
	case "left":
		return AllianceLeft, nil
	case "centre", "center":
		return AllianceCentre, nil
	case "right":
		return AllianceRight, nil
	}
	return AllianceLeft, zerr.With(zerr.Wrap(domain.ErrInvalidPosition, "alliance"), "value", s)
}

// Step is one leg of a routine: an auxiliary run when Duration is positive,
// a drive when Distance is non-zero, otherwise a rotation.
type Step struct {
	Distance float64
	Degrees  float64
	// Scale multiplies the drive throttle gradient. Zero means 1.
	Scale float64
	// Aux is the auxiliary speed held for Duration.
	Aux      float64
	Duration time.Duration
}

// Cube release at the end of a delivery.
const (
	DeliverSpeed = -1.0
	DeliverTime  = time.Second
)

// CompletionSteps returns the legs of the autonomous completion routine.
func CompletionSteps(side Side) []Step {
	s := side.sign()
	return []Step{
		{Distance: 0.75},
		{Degrees: 45 * s},
		{Distance: -1.1},
		{Degrees: -45 * s},
		{Distance: -1.75, Scale: 0.75},
		{Degrees: 180 * s},
	}
}

// CanDeliver reports whether the plate can be reached from the alliance's
// station. The outer stations cannot cross to the far plate.
func CanDeliver(alliance Alliance, plate Side) bool {
	return !(alliance == AllianceLeft && plate == SideRight ||
		alliance == AllianceRight && plate == SideLeft)
}

// DeliverSteps returns the legs that carry the vehicle from the alliance's
// station to the plate. When deliver is set and the plate is reachable, the
// routine ends by releasing the cube.
func DeliverSteps(alliance Alliance, plate Side, deliver bool) []Step {
	var steps []Step
	switch {
	case alliance == AllianceCentre && plate == SideLeft:
		steps = []Step{
			{Distance: 0.6},
			{Degrees: -45},
			{Distance: 2.8},
			{Degrees: 45},
			{Distance: 0.6},
		}
	case alliance == AllianceCentre:
		steps = []Step{
			{Distance: 1.3},
			{Degrees: 45},
			{Distance: 0.8},
			{Degrees: -45},
			{Distance: 1.3},
		}
	default:
		s := plate.sign()
		steps = []Step{
			{Distance: 1.1},
			{Degrees: -45 * s},
			{Distance: 1.6},
			{Degrees: 45 * s},
			{Distance: 1.1},
		}
	}
	if deliver && CanDeliver(alliance, plate) {
		steps = append(steps, Step{Aux: DeliverSpeed, Duration: DeliverTime})
	}
	return steps
}

// NewRoutine chains steps into a single sequential task. The coast models,
// when non-nil, are attached to the matching legs.
func NewRoutine(
	name string,
	hw ports.Hardware,
	cfg domain.Config,
	steps []Step,
	driveCoast, rotateCoast *domain.CoastDistance,
	opts ...Option,
) *task.Sequence {
	children := make([]task.Task, 0, len(steps))
	for _, st := range steps {
		if st.Duration > 0 {
			children = append(children, NewAuxMotor(hw, st.Aux, st.Duration, opts...))
			continue
		}
		if st.Distance != 0 {
			legOpts := append([]Option{WithCoast(driveCoast)}, opts...)
			if st.Scale != 0 && st.Scale != 1 {
				legOpts = append(legOpts, WithGradient(scaleGradient(cfg.Drive.Throttle, st.Scale)))
			}
			children = append(children, NewDriveStraight(hw, cfg.Drive, st.Distance, legOpts...))
			continue
		}
		legOpts := append([]Option{WithCoast(rotateCoast)}, opts...)
		children = append(children, NewRotate(hw, cfg.Rotate, st.Degrees, legOpts...))
	}
	return task.NewSequence(name, children...)
}

func scaleGradient(g domain.ValueGradient, f float64) domain.ValueGradient {
	g.Minimum = domain.Clamp(g.Minimum*f, 0, 1)
	g.Maximum = domain.Clamp(g.Maximum*f, g.Minimum, 1)
	return g
}
