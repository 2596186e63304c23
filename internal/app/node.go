package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lume/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lume/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/lume/internal/adapters/medialib" //nolint:depguard // Wired in app layer
	"go.trai.ch/lume/internal/adapters/scan"     //nolint:depguard // Wired in app layer
	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports"
	"go.trai.ch/lume/internal/engine/catalog"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.NodeID,
			medialib.NodeID,
			scan.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			store, err := graft.Dep[*catalog.Store](ctx)
			if err != nil {
				return nil, err
			}

			lib, err := graft.Dep[*medialib.Library](ctx)
			if err != nil {
				return nil, err
			}

			scanner, err := graft.Dep[*scan.Scanner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, lib, scanner, lib, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	opts, err := graft.Dep[domain.Options](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:     application,
		Logger:  log,
		Options: opts,
	}, nil
}
