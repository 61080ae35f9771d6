package state

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/packship/packship/internal/core/ports"
)

const NodeID graft.ID = "adapter.version_store_provider"

func init() {
	graft.Register(graft.Node[ports.StoreProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.StoreProvider, error) {
			return Provider{}, nil
		},
	})
}
