package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/semi/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/semi/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/semi/internal/adapters/prefs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/semi/internal/adapters/sim"       //nolint:depguard // Wired in app layer
	"go.trai.ch/semi/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/semi/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			sim.NodeID,
			scheduler.NodeID,
			prefs.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	hw, err := graft.Dep[ports.Hardware](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.PreferenceStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, hw, sched, store, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, tel), nil
}
