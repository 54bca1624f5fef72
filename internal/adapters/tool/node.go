package tool

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zoomgrab/zoomgrab/internal/adapters/logger"
	"github.com/zoomgrab/zoomgrab/internal/adapters/shell"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
)

// NodeID is the unique identifier for the tool manager Graft node.
const NodeID graft.ID = "adapter.tool"

func init() {
	graft.Register(graft.Node[ports.ToolManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.ToolManager, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(runner, log), nil
		},
	})
}
