// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/semi/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() ports.Telemetry {
	tape := progrock.NewTape()
	return NewRecorder(tape)
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex for one task run. Run names carry a unique id, so the
// digest is unique per run.
func (r *Recorder) Record(name string) ports.Vertex {
	d := digest.FromString(name)
	return &Vertex{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
