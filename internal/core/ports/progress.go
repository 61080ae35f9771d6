package ports

import "io"

// ProgressReporter records per-package progress for a publish run.
type ProgressReporter interface {
	// Begin starts recording progress for the named unit of work.
	Begin(name string) ProgressTask
	// Close flushes and closes the recording session.
	Close() error
}

// ProgressTask is a single in-flight unit of work.
type ProgressTask interface {
	// Stdout returns a writer for output attributed to this task.
	Stdout() io.Writer
	// Cached marks the task as skipped because nothing changed.
	Cached()
	// Done marks the task as finished, successfully or with an error.
	Done(err error)
}
