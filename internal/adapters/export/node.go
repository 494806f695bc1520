package export

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/logger"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/ports"
)

// NodeID is the unique identifier for the export reader Graft node.
const NodeID graft.ID = "adapter.export_reader"

func init() {
	graft.Register(graft.Node[ports.ExportReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ExportReader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewReader(log), nil
		},
	})
}
