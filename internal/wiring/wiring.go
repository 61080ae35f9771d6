// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/packship/packship/internal/adapters/config"
	_ "github.com/packship/packship/internal/adapters/fs"
	_ "github.com/packship/packship/internal/adapters/logger"
	_ "github.com/packship/packship/internal/adapters/progress"
	_ "github.com/packship/packship/internal/adapters/render"
	_ "github.com/packship/packship/internal/adapters/shell"
	_ "github.com/packship/packship/internal/adapters/state"
	// Register app nodes.
	_ "github.com/packship/packship/internal/app"
)
