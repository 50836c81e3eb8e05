// Package task defines the uniform task interface driven by the scheduler, plus
// the building blocks shared by task implementations.
package task

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/semi/internal/core/domain"
)

// Task is a cooperative unit of work. The scheduler calls Initialize once, then
// Execute and IsFinished once per tick until IsFinished reports true, and finally
// End. If the task is displaced or cancelled, Interrupted is called instead of End.
// No method may block.
type Task interface {
	// Name identifies the task in logs and telemetry.
	Name() string
	// Requirements lists the resources the task needs exclusively.
	Requirements() []domain.Resource
	Initialize()
	Execute()
	IsFinished() bool
	End()
	Interrupted()
}

// Timeout is a wall-clock deadline checked cooperatively.
// A zero duration never expires.
type Timeout struct {
	clock    clockwork.Clock
	duration time.Duration
	started  time.Time
}

// NewTimeout creates a timeout measured on clock.
func NewTimeout(clock clockwork.Clock, d time.Duration) Timeout {
	return Timeout{clock: clock, duration: d}
}

// Start (re)arms the timeout from now.
func (t *Timeout) Start() {
	t.started = t.clock.Now()
}

// Elapsed returns the time since Start.
func (t *Timeout) Elapsed() time.Duration {
	if t.started.IsZero() {
		return 0
	}
	return t.clock.Since(t.started)
}

// Expired reports whether the deadline has passed.
func (t *Timeout) Expired() bool {
	if t.duration <= 0 || t.started.IsZero() {
		return false
	}
	return t.Elapsed() >= t.duration
}

// Instant is a task that runs a function once and finishes on the same tick.
type Instant struct {
	name     string
	requires []domain.Resource
	fn       func()
}

// NewInstant wraps fn as a task.
func NewInstant(name string, fn func(), requires ...domain.Resource) *Instant {
	return &Instant{name: name, requires: requires, fn: fn}
}

// Name implements Task.
func (i *Instant) Name() string { return i.name }

// Requirements implements Task.
func (i *Instant) Requirements() []domain.Resource { return i.requires }

// Initialize implements Task.
func (i *Instant) Initialize() {}

// Execute runs the wrapped function.
func (i *Instant) Execute() { i.fn() }

// IsFinished implements Task.
func (i *Instant) IsFinished() bool { return true }

// End implements Task.
func (i *Instant) End() {}

// Interrupted implements Task.
func (i *Instant) Interrupted() {}
