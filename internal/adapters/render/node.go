package render

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/packship/packship/internal/core/ports"
)

const NodeID graft.ID = "adapter.renderer"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Renderer, error) {
			return NewRenderer(), nil
		},
	})
}
