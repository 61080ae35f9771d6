package ports

import "github.com/packship/packship/internal/core/domain"

// Discoverer finds publishable packages under a content root.
//
//go:generate mockgen -source=discoverer.go -destination=mocks/mock_discoverer.go -package=mocks
type Discoverer interface {
	// Discover returns the packages found under root, sorted by key.
	// Two packages normalizing to the same key is an error.
	Discover(root string) ([]*domain.Package, error)
}
