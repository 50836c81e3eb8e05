package prefs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/semi/internal/adapters/config"
	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the preference store Graft node.
const NodeID graft.ID = "adapter.prefs"

const (
	// DriverFile selects the JSON file store.
	DriverFile = "file"
	// DriverSQLite selects the SQLite store.
	DriverSQLite = "sqlite"
)

func init() {
	graft.Register(graft.Node[ports.PreferenceStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.PreferenceStore, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return Open(cfg.Preferences)
		},
	})
}

// Open builds the store selected by cfg.Driver.
func Open(cfg domain.PreferenceConfig) (ports.PreferenceStore, error) {
	switch cfg.Driver {
	case DriverFile, "":
		return NewFileStore(cfg.Path)
	case DriverSQLite:
		return OpenSQLStore(cfg.Path)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownPreferenceDriver, "open preference store"), "driver", cfg.Driver)
	}
}
