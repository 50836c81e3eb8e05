// Package telemetry provides the telemetry adapters that record task runs.
package telemetry

import (
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (NoOp) Record(_ string) ports.Vertex {
	return NoOpVertex{}
}

// Close does nothing.
func (NoOp) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Log does nothing.
func (NoOpVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (NoOpVertex) Complete(_ error) {}
