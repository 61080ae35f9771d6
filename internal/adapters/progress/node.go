package progress

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/packship/packship/internal/core/ports"
)

const NodeID graft.ID = "adapter.progress_reporter"

func init() {
	graft.Register(graft.Node[ports.ProgressReporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ProgressReporter, error) {
			return New(), nil
		},
	})
}
