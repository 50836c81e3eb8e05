package ports

import "go.trai.ch/semi/internal/core/domain"

// ConfigLoader defines the interface for loading the engine configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the configuration.
	Load() (domain.Config, error)
}
