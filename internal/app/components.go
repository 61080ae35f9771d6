package app

import "github.com/packship/packship/internal/core/ports"

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
