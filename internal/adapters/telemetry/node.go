package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	telprogrock "go.trai.ch/relay/internal/adapters/telemetry/progrock"
	"go.trai.ch/relay/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return telprogrock.New(), nil
		},
	})
}
