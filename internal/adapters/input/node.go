package input

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zoomgrab/zoomgrab/internal/adapters/logger"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
)

// NodeID is the unique identifier for the input parser Graft node.
const NodeID graft.ID = "adapter.input"

func init() {
	graft.Register(graft.Node[*Parser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Parser, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewParser(log), nil
		},
	})
}
