package ports

import "github.com/zoomgrab/zoomgrab/internal/core/domain"

// ConfigLoader loads the typed runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, or discovers one by
	// walking up from the working directory when path is empty. A missing
	// file yields the defaults, not an error.
	Load(path string) (domain.Config, error)
}
