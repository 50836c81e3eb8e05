package progrock

import (
	"fmt"

	"github.com/vito/progrock"
	"go.trai.ch/semi/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Log writes a levelled line to the vertex output.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex as finished (successfully or with an error).
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
