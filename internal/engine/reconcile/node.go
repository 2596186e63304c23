package reconcile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lume/internal/adapters/config"
	"go.trai.ch/lume/internal/adapters/medialib"
	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports"
)

// NodeID is the unique identifier for the moment reconciler Graft node.
const NodeID graft.ID = "engine.reconcile"

func init() {
	graft.Register(graft.Node[ports.MomentReconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{medialib.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.MomentReconciler, error) {
			lib, err := graft.Dep[*medialib.Library](ctx)
			if err != nil {
				return nil, err
			}
			opts, err := graft.Dep[domain.Options](ctx)
			if err != nil {
				return nil, err
			}
			return ForSource(lib, opts), nil
		},
	})
}
