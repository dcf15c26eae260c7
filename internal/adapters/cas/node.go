package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shortstr/internal/core/ports"
)

// NodeID is the unique identifier for the stats store Graft node.
const NodeID graft.ID = "adapter.stats_store"

func init() {
	graft.Register(graft.Node[ports.StatsStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StatsStore, error) {
			return NewStore(), nil
		},
	})
}
