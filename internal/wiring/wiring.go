// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lume/internal/adapters/config"
	_ "go.trai.ch/lume/internal/adapters/logger"
	_ "go.trai.ch/lume/internal/adapters/medialib"
	_ "go.trai.ch/lume/internal/adapters/scan"
	// Register app and engine nodes.
	_ "go.trai.ch/lume/internal/app"
	_ "go.trai.ch/lume/internal/engine/catalog"
	_ "go.trai.ch/lume/internal/engine/reconcile"
)
