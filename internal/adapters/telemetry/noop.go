// Package telemetry provides implementations of the telemetry ports.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/relay/internal/core/ports"
)

// Noop is a no-op implementation of ports.Telemetry.
type Noop struct{}

// NewNoop creates a new no-op Telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a no-op vertex.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &NoopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (n *Noop) Close() error { return nil }

// NoopVertex is a no-op implementation of ports.Vertex.
type NoopVertex struct{}

// Stdout returns a writer that discards everything.
func (v *NoopVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns a writer that discards everything.
func (v *NoopVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (v *NoopVertex) Complete(_ error) {}
