package ports

import "go.trai.ch/lume/internal/core/domain"

// ConfigLoader resolves the engine configuration for a working directory.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from cwd and returns the
	// resolved options. A missing config file yields the defaults.
	Load(cwd string) (domain.Options, error)
}
