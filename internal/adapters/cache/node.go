package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/paulohenriquegf/garmin-statistics/internal/core/ports"
)

// NodeID is the unique identifier for the summary cache Graft node.
const NodeID graft.ID = "adapter.summary_cache"

func init() {
	graft.Register(graft.Node[ports.SummaryCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SummaryCache, error) {
			return NewStore(), nil
		},
	})
}
