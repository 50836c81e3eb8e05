package ports

import (
	"go.trai.ch/semi/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the lifecycle of scheduled task runs.
type Telemetry interface {
	// Record opens a vertex for a task run.
	Record(name string) Vertex
	// Close flushes the recording session.
	Close() error
}

// Vertex represents one task run.
type Vertex interface {
	// Log records a message associated with this run.
	Log(level domain.LogLevel, msg string)
	// Complete marks the run as finished, with err set when it was interrupted.
	Complete(err error)
}
