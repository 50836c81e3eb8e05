// Package recorder captures operator input into recordings and replays them.
package recorder

import (
	"fmt"
	"sync"
	"time"

	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
)

// Recorder samples operator input into a Recording once per tick while active.
type Recorder struct {
	input   ports.OperatorInput
	period  time.Duration
	squared bool
	log     ports.Logger

	mu     sync.Mutex
	active *domain.Recording
	last   *domain.Recording
}

// NewRecorder creates a recorder sampling input at the given tick period.
// When squared is set, forward and turn are shaped with a signed square.
func NewRecorder(input ports.OperatorInput, period time.Duration, squared bool, log ports.Logger) *Recorder {
	return &Recorder{input: input, period: period, squared: squared, log: log}
}

// Start begins a new recording, dropping any in progress.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = domain.NewRecording(r.period)
}

// Active reports whether a recording is in progress.
func (r *Recorder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active != nil
}

// Sample appends the current operator input. It does nothing when inactive.
func (r *Recorder) Sample() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return
	}
	s := r.input.Sample()
	r.active.Add(domain.NewRecordedAction(s.Forward, s.Turn, s.Aux, r.squared))
}

// Stop ends the recording in progress and keeps it as the last recording.
// It returns nil when nothing was being recorded.
func (r *Recorder) Stop() *domain.Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return nil
	}
	rec := r.active
	r.active = nil
	r.last = rec
	r.log.Info(fmt.Sprintf("recorded %d actions (%s)", rec.Len(), rec.Duration()))
	return rec
}

// Last returns the most recent finished or loaded recording, or nil.
func (r *Recorder) Last() *domain.Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

// Task returns a task that records from Initialize until done reports true.
// It needs no resources, so it runs alongside whatever drives the vehicle.
func (r *Recorder) Task(done func() bool) *RecordTask {
	return &RecordTask{recorder: r, done: done}
}

// RecordTask drives a Recorder from the scheduler.
type RecordTask struct {
	recorder *Recorder
	done     func() bool
}

// Name implements task.Task.
func (t *RecordTask) Name() string { return "record" }

// Requirements implements task.Task.
func (t *RecordTask) Requirements() []domain.Resource { return nil }

// Initialize starts a new recording.
func (t *RecordTask) Initialize() { t.recorder.Start() }

// Execute samples one action unless the input has already run out, so the
// recording ends with the last scripted tick rather than a neutral one.
func (t *RecordTask) Execute() {
	if t.IsFinished() {
		return
	}
	t.recorder.Sample()
}

// IsFinished implements task.Task.
func (t *RecordTask) IsFinished() bool { return t.done != nil && t.done() }

// End keeps the recording.
func (t *RecordTask) End() { t.recorder.Stop() }

// Interrupted keeps what was recorded so far.
func (t *RecordTask) Interrupted() { t.recorder.Stop() }
