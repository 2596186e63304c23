package medialib

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lume/internal/adapters/config"
	"go.trai.ch/lume/internal/core/domain"
)

// NodeID is the unique identifier for the media library Graft node.
const NodeID graft.ID = "adapter.medialib"

func init() {
	graft.Register(graft.Node[*Library]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Library, error) {
			opts, err := graft.Dep[domain.Options](ctx)
			if err != nil {
				return nil, err
			}
			return Open(opts.LibraryPath)
		},
	})
}
