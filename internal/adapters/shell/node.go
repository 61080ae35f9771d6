package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/packship/packship/internal/adapters/logger"
	"github.com/packship/packship/internal/core/ports"
)

const NodeID graft.ID = "adapter.publisher"

func init() {
	graft.Register(graft.Node[ports.Publisher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Publisher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPublisher(log), nil
		},
	})
}
