// Package updater implements the update decision engine: it decides whether a
// package's content has changed since the last committed publish and, if so,
// drives a one-shot apply-and-commit cycle against the version store.
package updater

import (
	"github.com/packship/packship/internal/core/domain"
	"github.com/packship/packship/internal/core/ports"
	"go.trai.ch/zerr"
)

// Apply performs the caller-supplied side effects for a candidate version
// (rendering artifacts, running the external publish command) and reports
// success. Implementations are expected to catch their own failures and
// translate them into the returned flag.
type Apply func(version int) bool

// Updater runs decision cycles against a version store. Each cycle loads
// fresh state, so the engine never acts on stale data from a previous
// process invocation.
type Updater struct {
	store ports.VersionStore
}

// New creates an Updater backed by the given store.
func New(store ports.VersionStore) *Updater {
	return &Updater{store: store}
}

// PerformUpdate decides whether key's content warrants a new version.
//
// It returns true when an update was warranted (even if apply reported
// failure), false when the content is unchanged and force is unset. The
// version bump and content hash are committed together, and only after apply
// reports success; a declined or failed cycle never writes the state file.
func (u *Updater) PerformUpdate(key string, content []byte, apply Apply, force bool) (bool, error) {
	versions, err := u.store.Load()
	if err != nil {
		return false, zerr.Wrap(err, "failed to load version state")
	}

	sum := HashContent(content)

	entry, ok := versions[key]
	if !ok {
		// Track the key from first sight, even if no update happens below.
		// The placeholder only ever reaches disk via the commit path.
		entry = domain.VersionRecord{}
		versions[key] = entry
	}

	if entry.ContentHash == sum && !force {
		return false, nil
	}

	candidate := entry.Version + 1
	if !apply(candidate) {
		// The apply action already surfaced its own failure; nothing is
		// committed and the next run will see the same content as changed.
		return true, nil
	}

	versions[key] = domain.VersionRecord{Version: candidate, ContentHash: sum}
	if err := u.store.Save(versions); err != nil {
		// The external side effect already happened but the bump was not
		// recorded. The next run will re-publish the same content unless the
		// operator intervenes, so this must not be swallowed.
		return true, zerr.With(zerr.With(zerr.Wrap(err, "failed to persist version state after publish"), "package", key), "version", candidate)
	}

	return true, nil
}
