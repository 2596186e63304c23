package app

import (
	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports"
)

// Components contains the initialized application components. It provides
// controlled access to what the CLI layer needs.
type Components struct {
	App     *App
	Logger  ports.Logger
	Options domain.Options
}
