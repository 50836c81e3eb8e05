package recorder

import (
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
)

// Teleop drives the vehicle straight from operator input.
type Teleop struct {
	input      ports.OperatorInput
	drivetrain ports.Drivetrain
	aux        ports.Auxiliary
	squared    bool
	done       func() bool
}

// NewTeleop creates an operator drive task that runs until done reports true.
// A nil done never finishes.
func NewTeleop(hw ports.Hardware, squared bool, done func() bool) *Teleop {
	return &Teleop{
		input:      hw.Input,
		drivetrain: hw.Drivetrain,
		aux:        hw.Auxiliary,
		squared:    squared,
		done:       done,
	}
}

// Name implements task.Task.
func (t *Teleop) Name() string { return "teleop" }

// Requirements implements task.Task.
func (t *Teleop) Requirements() []domain.Resource {
	return []domain.Resource{domain.ResourceDrivetrain, domain.ResourceAuxiliary}
}

// Initialize implements task.Task.
func (t *Teleop) Initialize() {}

// Execute forwards one operator sample to the actuators.
func (t *Teleop) Execute() {
	s := t.input.Sample()
	a := domain.NewRecordedAction(s.Forward, s.Turn, s.Aux, t.squared)
	t.drivetrain.Drive(domain.Clamp(a.Forward, -1, 1), domain.Clamp(a.Turn, -1, 1))
	t.aux.SetSpeed(domain.Clamp(a.Aux, -1, 1))
}

// IsFinished implements task.Task.
func (t *Teleop) IsFinished() bool { return t.done != nil && t.done() }

// End stops the actuators.
func (t *Teleop) End() { t.stop() }

// Interrupted stops the actuators.
func (t *Teleop) Interrupted() { t.stop() }

func (t *Teleop) stop() {
	t.drivetrain.Stop()
	t.aux.Stop()
}
