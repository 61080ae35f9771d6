package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/packship/packship/internal/core/ports"
)

const (
	DiscovererNodeID graft.ID = "adapter.discoverer"
	SupplierNodeID   graft.ID = "adapter.content_supplier"
)

func init() {
	graft.Register(graft.Node[ports.Discoverer]{
		ID:        DiscovererNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Discoverer, error) {
			return NewDiscoverer(), nil
		},
	})

	graft.Register(graft.Node[ports.ContentSupplier]{
		ID:        SupplierNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ContentSupplier, error) {
			return NewSupplier(NewWalker()), nil
		},
	})
}
