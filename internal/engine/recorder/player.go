package recorder

import (
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
)

// Player replays a recording on the drivetrain and auxiliary motors, one
// action per tick.
type Player struct {
	recording  *domain.Recording
	drivetrain ports.Drivetrain
	aux        ports.Auxiliary
	playback   *domain.Playback
}

// NewPlayer creates a playback task for rec.
func NewPlayer(hw ports.Hardware, rec *domain.Recording) *Player {
	return &Player{recording: rec, drivetrain: hw.Drivetrain, aux: hw.Auxiliary}
}

// Name implements task.Task.
func (p *Player) Name() string { return "playback" }

// Requirements implements task.Task.
func (p *Player) Requirements() []domain.Resource {
	return []domain.Resource{domain.ResourceDrivetrain, domain.ResourceAuxiliary}
}

// Initialize snapshots the recording so later edits do not affect the replay.
func (p *Player) Initialize() {
	p.playback = domain.NewPlayback(p.recording)
}

// Execute applies the next action.
func (p *Player) Execute() {
	a, ok := p.playback.Step()
	if !ok {
		return
	}
	p.drivetrain.Drive(domain.Clamp(a.Forward, -1, 1), domain.Clamp(a.Turn, -1, 1))
	p.aux.SetSpeed(domain.Clamp(a.Aux, -1, 1))
}

// IsFinished reports whether every action was applied.
func (p *Player) IsFinished() bool {
	return p.playback == nil || p.playback.Done()
}

// Remaining returns the number of actions left.
func (p *Player) Remaining() int {
	if p.playback == nil {
		return p.recording.Len()
	}
	return p.playback.Remaining()
}

// End stops the actuators.
func (p *Player) End() { p.stop() }

// Interrupted stops the actuators.
func (p *Player) Interrupted() { p.stop() }

func (p *Player) stop() {
	p.drivetrain.Stop()
	p.aux.Stop()
}
