// Package scheduler implements the cooperative task scheduler.
package scheduler

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/semi/internal/engine/task"
	"go.trai.ch/zerr"
)

// Scheduler owns the active task set and advances every active task once per Tick.
// Tasks that require an overlapping resource displace each other: the newly
// scheduled task wins and the previous holder is interrupted immediately.
type Scheduler struct {
	logger    ports.Logger
	telemetry ports.Telemetry

	mu      sync.RWMutex
	enabled bool
	active  []*entry
	states  map[task.Task]domain.TaskState
}

type entry struct {
	id     string
	task   task.Task
	state  domain.TaskState
	vertex ports.Vertex
}

func (e *entry) label() string {
	return fmt.Sprintf("%s [%s]", e.task.Name(), e.id[:8])
}

// NewScheduler creates a disabled Scheduler.
func NewScheduler(logger ports.Logger, telemetry ports.Telemetry) *Scheduler {
	return &Scheduler{
		logger:    logger,
		telemetry: telemetry,
		states:    make(map[task.Task]domain.TaskState),
	}
}

// Enable lets Tick advance tasks and starts a new run: states recorded by
// earlier runs are forgotten, so only tasks still active are carried over.
func (s *Scheduler) Enable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = true
	maps.DeleteFunc(s.states, func(t task.Task, _ domain.TaskState) bool {
		return !slices.ContainsFunc(s.active, func(e *entry) bool { return e.task == t })
	})
}

// Disable stops ticking and cancels every active task.
func (s *Scheduler) Disable() {
	s.mu.Lock()
	s.enabled = false
	s.mu.Unlock()

	s.CancelAll()
}

// Enabled reports whether Tick advances tasks.
func (s *Scheduler) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// Schedule adds t to the active set. Active tasks sharing a resource with t are
// interrupted and removed before t is initialized on the next tick.
// Scheduling a task that is already active is a no-op.
func (s *Scheduler) Schedule(t task.Task) {
	s.mu.Lock()
	if slices.ContainsFunc(s.active, func(e *entry) bool { return e.task == t }) {
		s.mu.Unlock()
		return
	}

	required := t.Requirements()
	var displaced []*entry
	s.active = slices.DeleteFunc(s.active, func(e *entry) bool {
		if domain.Overlaps(e.task.Requirements(), required) {
			displaced = append(displaced, e)
			return true
		}
		return false
	})
	s.mu.Unlock()

	for _, e := range displaced {
		s.logger.Info(fmt.Sprintf("%s displaced by %s", e.task.Name(), t.Name()))
		s.interrupt(e)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = append(s.active, &entry{
		id:    uuid.NewString(),
		task:  t,
		state: domain.TaskPending,
	})
	s.states[t] = domain.TaskPending
}

// Tick advances every active task by one step. It is a no-op while disabled.
func (s *Scheduler) Tick() {
	s.mu.RLock()
	if !s.enabled {
		s.mu.RUnlock()
		return
	}
	entries := slices.Clone(s.active)
	s.mu.RUnlock()

	for _, e := range entries {
		// A task may have been displaced or cancelled by an earlier task this tick.
		if !s.isActive(e) {
			continue
		}
		s.step(e)
	}
}

// CancelAll interrupts every active task and clears the active set.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	entries := s.active
	s.active = nil
	s.mu.Unlock()

	for _, e := range entries {
		s.interrupt(e)
	}
}

// Cancel interrupts t if it is active.
func (s *Scheduler) Cancel(t task.Task) {
	s.mu.Lock()
	var found *entry
	s.active = slices.DeleteFunc(s.active, func(e *entry) bool {
		if e.task == t {
			found = e
			return true
		}
		return false
	})
	s.mu.Unlock()

	if found != nil {
		s.interrupt(found)
	}
}

// Active returns the names of the active tasks in scheduling order.
func (s *Scheduler) Active() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.active))
	for i, e := range s.active {
		names[i] = e.task.Name()
	}
	return names
}

// Idle reports whether no task is active.
func (s *Scheduler) Idle() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.active) == 0
}

// State returns the lifecycle state of t in the current run, or pending if it
// was not scheduled since the last Enable.
func (s *Scheduler) State(t task.Task) domain.TaskState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.states[t]; ok {
		return st
	}
	return domain.TaskPending
}

func (s *Scheduler) step(e *entry) {
	if s.stateOf(e) == domain.TaskPending {
		e.vertex = s.telemetry.Record(e.label())
		if err := s.call(e, "initialize", e.task.Initialize); err != nil {
			s.fail(e, err)
			return
		}
		s.updateState(e, domain.TaskRunning)
	}

	if err := s.call(e, "execute", e.task.Execute); err != nil {
		s.fail(e, err)
		return
	}

	var finished bool
	if err := s.call(e, "is_finished", func() { finished = e.task.IsFinished() }); err != nil {
		s.fail(e, err)
		return
	}
	if !finished {
		return
	}

	if err := s.call(e, "end", e.task.End); err != nil {
		s.fail(e, err)
		return
	}
	s.remove(e, domain.TaskFinished)
	e.vertex.Complete(nil)
}

// call runs one lifecycle hook, converting a panic into an error.
func (s *Scheduler) call(e *entry, phase string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(zerr.Wrap(domain.ErrTaskPanicked, "recovered"), "task", e.task.Name())
			err = zerr.With(err, "phase", phase)
			err = zerr.With(err, "panic", fmt.Sprint(r))
		}
	}()
	fn()
	return nil
}

// fail forces a task that panicked into the interrupted state.
func (s *Scheduler) fail(e *entry, err error) {
	s.logger.Error(err)
	if e.vertex != nil {
		e.vertex.Log(domain.LogLevelError, err.Error())
	}

	s.mu.Lock()
	s.active = slices.DeleteFunc(s.active, func(x *entry) bool { return x == e })
	s.mu.Unlock()

	s.interrupt(e)
}

// interrupt runs the cancellation path of an entry already removed from the active set.
func (s *Scheduler) interrupt(e *entry) {
	s.updateState(e, domain.TaskInterrupted)
	if err := s.call(e, "interrupted", e.task.Interrupted); err != nil {
		s.logger.Error(err)
	}
	if e.vertex != nil {
		e.vertex.Complete(zerr.With(zerr.Wrap(domain.ErrTaskInterrupted, "run ended"), "task", e.task.Name()))
	}
}

func (s *Scheduler) remove(e *entry, state domain.TaskState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = slices.DeleteFunc(s.active, func(x *entry) bool { return x == e })
	e.state = state
	s.states[e.task] = state
}

func (s *Scheduler) isActive(e *entry) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.active, e)
}

func (s *Scheduler) stateOf(e *entry) domain.TaskState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return e.state
}

// updateState updates the state of an entry.
func (s *Scheduler) updateState(e *entry, state domain.TaskState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.state = state
	s.states[e.task] = state
}
