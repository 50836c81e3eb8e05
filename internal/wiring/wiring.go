// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/semi/internal/adapters/config"
	_ "go.trai.ch/semi/internal/adapters/logger"
	_ "go.trai.ch/semi/internal/adapters/prefs"
	_ "go.trai.ch/semi/internal/adapters/sim"
	_ "go.trai.ch/semi/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/semi/internal/app"
	_ "go.trai.ch/semi/internal/engine/scheduler"
)
