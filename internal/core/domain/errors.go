package domain

import "go.trai.ch/zerr"

var (
	// ErrStateCorrupt is returned when the persisted version state exists but
	// cannot be parsed. This is fatal: silently resetting the state would bump
	// every package on the next run.
	ErrStateCorrupt = zerr.New("version state corrupt")

	// ErrDuplicatePackage is returned when two packages normalize to the same key.
	ErrDuplicatePackage = zerr.New("duplicate package key")

	// ErrNoPackages is returned when the content root contains no packages.
	ErrNoPackages = zerr.New("no packages found")

	// ErrPublishFailed is returned by a run in which at least one package's
	// publish action reported failure.
	ErrPublishFailed = zerr.New("publish failed")
)
