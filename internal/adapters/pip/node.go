package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/logger"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/shell"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(executor, log), nil
		},
	})
}
