package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zoomgrab/zoomgrab/internal/adapters/config"
	"github.com/zoomgrab/zoomgrab/internal/adapters/input"
	"github.com/zoomgrab/zoomgrab/internal/adapters/logger"
	"github.com/zoomgrab/zoomgrab/internal/adapters/shell"
	"github.com/zoomgrab/zoomgrab/internal/adapters/tool"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app"

// Components bundles the application with the pieces the entry point needs
// directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			input.NodeID,
			shell.NodeID,
			tool.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			parser, err := graft.Dep[*input.Parser](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			tools, err := graft.Dep[ports.ToolManager](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, parser, runner, tools, log),
				Logger: log,
			}, nil
		},
	})
}
