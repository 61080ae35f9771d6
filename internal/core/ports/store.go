// Package ports defines the core interfaces for the application.
package ports

import "github.com/packship/packship/internal/core/domain"

// VersionStore owns the durable mapping from package key to its last
// committed version record.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type VersionStore interface {
	// Load reads the persisted state. A missing state file is not an error
	// and yields an empty map. A state file that exists but cannot be parsed
	// fails with domain.ErrStateCorrupt.
	Load() (domain.VersionMap, error)

	// Save serializes the full map deterministically and replaces the
	// persisted state. Callers must hold the complete authoritative map.
	Save(m domain.VersionMap) error
}

// StoreProvider opens a VersionStore for a given state file path. The path
// comes from configuration, so stores are opened per run rather than held as
// process-wide state.
type StoreProvider interface {
	Open(path string) VersionStore
}
