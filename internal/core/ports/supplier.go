package ports

import "github.com/packship/packship/internal/core/domain"

// ContentSupplier produces the exact, deterministically ordered content blob
// that fingerprints a package. The decision engine hashes this verbatim.
//
//go:generate mockgen -source=supplier.go -destination=mocks/mock_supplier.go -package=mocks
type ContentSupplier interface {
	// Assemble walks the package directory and returns the content blob.
	// It also fills in pkg.Files with the per-file checksum table.
	Assemble(pkg *domain.Package) ([]byte, error)
}
