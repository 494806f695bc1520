// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/paulohenriquegf/garmin-statistics/internal/adapters/cache"
	_ "github.com/paulohenriquegf/garmin-statistics/internal/adapters/config"
	_ "github.com/paulohenriquegf/garmin-statistics/internal/adapters/export"
	_ "github.com/paulohenriquegf/garmin-statistics/internal/adapters/logger"
	_ "github.com/paulohenriquegf/garmin-statistics/internal/adapters/pip"
	_ "github.com/paulohenriquegf/garmin-statistics/internal/adapters/shell"
	// Register app nodes.
	_ "github.com/paulohenriquegf/garmin-statistics/internal/app"
)
