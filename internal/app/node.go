package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/packship/packship/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"github.com/packship/packship/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"github.com/packship/packship/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/packship/packship/internal/adapters/progress" //nolint:depguard // Wired in app layer
	"github.com/packship/packship/internal/adapters/render"   //nolint:depguard // Wired in app layer
	"github.com/packship/packship/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"github.com/packship/packship/internal/adapters/state"    //nolint:depguard // Wired in app layer
	"github.com/packship/packship/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.DiscovererNodeID,
			fs.SupplierNodeID,
			render.NodeID,
			shell.NodeID,
			state.NodeID,
			progress.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	discoverer, err := graft.Dep[ports.Discoverer](ctx)
	if err != nil {
		return nil, err
	}
	supplier, err := graft.Dep[ports.ContentSupplier](ctx)
	if err != nil {
		return nil, err
	}
	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}
	publisher, err := graft.Dep[ports.Publisher](ctx)
	if err != nil {
		return nil, err
	}
	stores, err := graft.Dep[ports.StoreProvider](ctx)
	if err != nil {
		return nil, err
	}
	reporter, err := graft.Dep[ports.ProgressReporter](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, discoverer, supplier, renderer, publisher, stores, reporter, log), nil
}
