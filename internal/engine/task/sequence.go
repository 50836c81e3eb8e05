package task

import (
	"strings"

	"go.trai.ch/semi/internal/core/domain"
)

// Sequence runs child tasks one after another and is itself a Task, so sequences
// nest. The next child is initialized on the tick its predecessor ends and first
// executed on the following tick.
type Sequence struct {
	name     string
	children []Task
	cursor   int
	started  bool

	completed   bool
	interrupted bool
}

// NewSequence creates a sequence over children, in order.
func NewSequence(name string, children ...Task) *Sequence {
	return &Sequence{name: name, children: children}
}

// Add appends a child. It must be called before the sequence is scheduled.
func (s *Sequence) Add(t Task) {
	s.children = append(s.children, t)
}

// Name implements Task.
func (s *Sequence) Name() string {
	if s.name != "" {
		return s.name
	}
	names := make([]string, len(s.children))
	for i, c := range s.children {
		names[i] = c.Name()
	}
	return "sequence(" + strings.Join(names, ",") + ")"
}

// Requirements is the union of the children's requirements.
func (s *Sequence) Requirements() []domain.Resource {
	var out []domain.Resource
	for _, c := range s.children {
		for _, r := range c.Requirements() {
			if !domain.Overlaps(out, []domain.Resource{r}) {
				out = append(out, r)
			}
		}
	}
	return out
}

// Initialize resets the cursor and starts the first child.
func (s *Sequence) Initialize() {
	s.cursor = 0
	s.completed = false
	s.interrupted = false
	s.started = false
	s.startCurrent()
}

// Execute advances the current child, moving to the next one when it finishes.
func (s *Sequence) Execute() {
	if s.cursor >= len(s.children) {
		return
	}

	current := s.children[s.cursor]
	current.Execute()
	if !current.IsFinished() {
		return
	}

	current.End()
	s.cursor++
	s.started = false
	s.startCurrent()
}

// IsFinished reports whether every child has ended.
func (s *Sequence) IsFinished() bool {
	return s.cursor >= len(s.children)
}

// End marks normal completion.
func (s *Sequence) End() {
	s.completed = !s.interrupted
}

// Interrupted forwards the interruption to the running child.
func (s *Sequence) Interrupted() {
	s.interrupted = true
	s.completed = false
	if s.cursor < len(s.children) && s.started {
		s.children[s.cursor].Interrupted()
	}
}

// Completed reports whether the sequence ran to normal completion.
func (s *Sequence) Completed() bool {
	return s.completed
}

// Current returns the index of the running child.
func (s *Sequence) Current() int {
	return s.cursor
}

func (s *Sequence) startCurrent() {
	if s.cursor < len(s.children) {
		s.children[s.cursor].Initialize()
		s.started = true
	}
}
