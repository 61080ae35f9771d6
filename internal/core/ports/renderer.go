package ports

import "github.com/packship/packship/internal/core/domain"

// Renderer writes the generated artifacts (manifest and readme) for a package
// at a candidate version.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes manifest.yaml and README.md into the package directory.
	Render(pkg *domain.Package, version int) error
}
