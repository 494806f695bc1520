package ports

import "github.com/paulohenriquegf/garmin-statistics/internal/core/domain"

// ConfigLoader resolves the launch configuration for a working directory.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load searches upward from cwd for a config file and returns the
	// resulting configuration. A missing file is not an error: defaults
	// are returned instead.
	Load(cwd string) (domain.LaunchConfig, error)
}
