package scheduler

import "go.trai.ch/semi/internal/core/domain"

// GetTaskStateMap returns a copy of the last known state of every task, keyed by name.
// This is exported for testing purposes only.
func (s *Scheduler) GetTaskStateMap() map[string]domain.TaskState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stateMap := make(map[string]domain.TaskState, len(s.states))
	for k, v := range s.states {
		stateMap[k.Name()] = v
	}
	return stateMap
}
