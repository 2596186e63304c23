package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lume/internal/adapters/config"
	"go.trai.ch/lume/internal/adapters/logger"
	"go.trai.ch/lume/internal/adapters/medialib"
	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports"
	"go.trai.ch/lume/internal/engine/reconcile"
)

// NodeID is the unique identifier for the catalog store Graft node.
const NodeID graft.ID = "engine.catalog"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			medialib.NodeID,
			reconcile.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Store, error) {
			lib, err := graft.Dep[*medialib.Library](ctx)
			if err != nil {
				return nil, err
			}
			reconciler, err := graft.Dep[ports.MomentReconciler](ctx)
			if err != nil {
				return nil, err
			}
			opts, err := graft.Dep[domain.Options](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(lib, lib, reconciler, log, opts), nil
		},
	})
}
