package ports

import (
	"context"

	"github.com/packship/packship/internal/core/domain"
)

// Publisher runs the external registry publish command for a package at a
// candidate version.
//
//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks
type Publisher interface {
	// Publish invokes the configured publish command. It returns an error if
	// the command could not be started or exited non-zero.
	Publish(ctx context.Context, project *domain.Project, pkg *domain.Package, version int) error
}
