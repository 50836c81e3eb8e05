package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/semi/internal/adapters/config"
	"go.trai.ch/semi/internal/adapters/telemetry/progrock"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			if !cfg.Telemetry {
				return NewNoOp(), nil
			}
			return progrock.New(), nil
		},
	})
}
