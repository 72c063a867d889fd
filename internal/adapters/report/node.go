package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/relay/internal/core/ports"
)

const NodeID graft.ID = "adapter.report_store"

func init() {
	graft.Register(graft.Node[ports.RunReportStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RunReportStore, error) {
			return NewStore(DefaultPath)
		},
	})
}
