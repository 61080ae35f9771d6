// Package state implements the durable version store as a flat JSON file.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/packship/packship/internal/core/domain"
	"github.com/packship/packship/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionStore = (*Store)(nil)

// Store implements ports.VersionStore using a single pretty-printed JSON file.
//
// The store assumes a single writer at a time. Concurrent processes racing on
// the same state file are last-writer-wins; no locking is attempted.
type Store struct {
	path string
}

// NewStore creates a version store backed by the file at the given path.
// The file is not touched until the first Load or Save.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Load reads the persisted version map. A missing or empty state file yields
// an empty map; a state file that cannot be parsed is fatal.
func (s *Store) Load() (domain.VersionMap, error) {
	versions := make(domain.VersionMap)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return versions, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read version state"), "path", s.path)
	}

	if len(data) == 0 {
		return versions, nil
	}

	if err := json.Unmarshal(data, &versions); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrStateCorrupt, "failed to parse version state"), "path", s.path), "cause", err.Error())
	}

	return versions, nil
}

// Save serializes the full map and replaces the persisted state. Keys are
// emitted in sorted order, so identical maps produce byte-identical files.
func (s *Store) Save(m domain.VersionMap) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal version state")
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for version state"), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write version state"), "path", s.path)
	}

	return nil
}

// Provider implements ports.StoreProvider.
type Provider struct{}

// Open returns a store for the given state file path.
func (Provider) Open(path string) ports.VersionStore {
	return NewStore(path)
}
