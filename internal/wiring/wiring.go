// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/zoomgrab/zoomgrab/internal/adapters/config"
	_ "github.com/zoomgrab/zoomgrab/internal/adapters/input"
	_ "github.com/zoomgrab/zoomgrab/internal/adapters/logger"
	_ "github.com/zoomgrab/zoomgrab/internal/adapters/shell"
	_ "github.com/zoomgrab/zoomgrab/internal/adapters/tool"
	// Register the app node.
	_ "github.com/zoomgrab/zoomgrab/internal/app"
)
