package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/packship/packship/internal/core/domain"
	"github.com/packship/packship/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// MetadataFilename is the per-package metadata file a directory must carry to
// be treated as a package.
const MetadataFilename = "package.yaml"

var _ ports.Discoverer = (*Discoverer)(nil)

// Discoverer finds packages in the content root.
type Discoverer struct{}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer() *Discoverer {
	return &Discoverer{}
}

// metadataDTO is the on-disk shape of package.yaml.
type metadataDTO struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Exclude     []string `yaml:"exclude"`
}

// Discover scans the direct subdirectories of root. A subdirectory is a
// package iff it contains a package.yaml. Packages are returned sorted by
// key; two packages normalizing to the same key is an error.
func (d *Discoverer) Discover(root string) ([]*domain.Package, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read content root"), "root", root)
	}

	byKey := make(map[string]string)
	var pkgs []*domain.Package

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		pkg, err := d.loadPackage(dir)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			continue
		}

		if other, exists := byKey[pkg.Key]; exists {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrDuplicatePackage, "package keys collide"), "key", pkg.Key), "dirs", other+", "+dir)
		}
		byKey[pkg.Key] = dir
		pkgs = append(pkgs, pkg)
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Key < pkgs[j].Key })
	return pkgs, nil
}

// loadPackage reads a directory's metadata. It returns nil for directories
// without a metadata file.
func (d *Discoverer) loadPackage(dir string) (*domain.Package, error) {
	metaPath := filepath.Join(dir, MetadataFilename)

	//nolint:gosec // Path is derived from the configured content root
	data, err := os.ReadFile(metaPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read package metadata"), "path", metaPath)
	}

	var meta metadataDTO
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse package metadata"), "path", metaPath)
	}

	if strings.TrimSpace(meta.Name) == "" {
		return nil, zerr.With(zerr.New("package name missing"), "path", metaPath)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve package directory"), "dir", dir)
	}

	return &domain.Package{
		Key:         strings.ToLower(meta.Name),
		Name:        meta.Name,
		Dir:         abs,
		Description: meta.Description,
		Exclude:     meta.Exclude,
	}, nil
}
