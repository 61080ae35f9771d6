package fs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/packship/packship/internal/core/domain"
	"github.com/packship/packship/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// generatedArtifacts are written by the renderer during a publish cycle and
// must never contribute to the content fingerprint, or every publish would
// change the package it just published.
var generatedArtifacts = []string{"manifest.yaml", "README.md"}

var _ ports.ContentSupplier = (*Supplier)(nil)

// Supplier assembles the deterministic content blob for a package.
type Supplier struct {
	walker *Walker
}

// NewSupplier creates a new Supplier.
func NewSupplier(walker *Walker) *Supplier {
	return &Supplier{walker: walker}
}

type assembledFile struct {
	rel     string
	content []byte
}

// Assemble walks the package directory, reads every contributing file, and
// concatenates them in sorted relative-path order. Each entry is written as
// "relpath NUL content NUL" so file boundaries and renames are visible to the
// hash. It also fills in pkg.Files with sizes and xxhash checksums.
func (s *Supplier) Assemble(pkg *domain.Package) ([]byte, error) {
	ignores := append(append([]string{}, pkg.Exclude...), generatedArtifacts...)

	var paths []string
	for path := range s.walker.WalkFiles(pkg.Dir, ignores) {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	// Reads are concurrent; assembly below stays in sorted order.
	files := make([]assembledFile, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			rel, err := filepath.Rel(pkg.Dir, path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
			}

			//nolint:gosec // Path comes from walking the package directory
			content, err := os.ReadFile(path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to read package file"), "path", path)
			}

			files[i] = assembledFile{rel: filepath.ToSlash(rel), content: content}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	table := make([]domain.PackageFile, 0, len(files))
	for _, f := range files {
		buf.WriteString(f.rel)
		buf.WriteByte(0)
		buf.Write(f.content)
		buf.WriteByte(0)

		table = append(table, domain.PackageFile{
			Path:     f.rel,
			Size:     int64(len(f.content)),
			Checksum: fmt.Sprintf("%016x", xxhash.Sum64(f.content)),
		})
	}
	pkg.Files = table

	return buf.Bytes(), nil
}
