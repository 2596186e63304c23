package scan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lume/internal/adapters/logger"
	"go.trai.ch/lume/internal/adapters/medialib"
	"go.trai.ch/lume/internal/core/ports"
)

// NodeID is the unique identifier for the scanner Graft node.
const NodeID graft.ID = "adapter.scan"

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{medialib.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Scanner, error) {
			lib, err := graft.Dep[*medialib.Library](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(lib, log), nil
		},
	})
}
