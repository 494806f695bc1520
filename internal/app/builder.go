package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/cache"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/config"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/export"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/logger"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/pip"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/shell"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/ports"
)

// Components bundles everything the entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the App Graft node.
const NodeID graft.ID = "app.main"

// ComponentsNodeID is the unique identifier for the Components Graft node.
const ComponentsNodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			pip.NodeID,
			shell.NodeID,
			export.NodeID,
			cache.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			installer, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.ExportReader](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.SummaryCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, installer, executor, reader, store, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
