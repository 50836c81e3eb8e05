// Package script replays a scripted operator from YAML so recordings can be
// captured without a joystick.
package script

import (
	"os"
	"sync"
	"time"

	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Step holds the controls for a span of time.
type Step struct {
	Duration              time.Duration `yaml:"duration"`
	domain.OperatorSample `yaml:",inline"`
}

type document struct {
	Steps []Step `yaml:"steps"`
}

// Script is an operator that walks through its steps as it is polled. Once the
// last step has elapsed it reports neutral controls.
type Script struct {
	steps []Step
	total time.Duration

	mu      sync.Mutex
	elapsed time.Duration
}

// Parse decodes a script document.
func Parse(data []byte) (*Script, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse operator script")
	}

	s := &Script{steps: doc.Steps}
	for i, step := range doc.Steps {
		if step.Duration <= 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidScript, "parse"), "step", i)
		}
		s.total += step.Duration
	}
	return s, nil
}

// Load reads and decodes a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read operator script"), "path", path)
	}
	return Parse(data)
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Duration returns the total scripted time.
func (s *Script) Duration() time.Duration {
	return s.total
}

// Done reports whether every step has elapsed.
func (s *Script) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed >= s.total
}

// Poll implements ports.Poller.
func (s *Script) Poll(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elapsed += dt
}

// Sample implements ports.OperatorInput.
func (s *Script) Sample() domain.OperatorSample {
	s.mu.Lock()
	defer s.mu.Unlock()

	var at time.Duration
	for _, step := range s.steps {
		at += step.Duration
		if s.elapsed < at {
			return step.OperatorSample
		}
	}
	return domain.OperatorSample{}
}
