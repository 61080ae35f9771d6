// Package progress implements the progress reporter using progrock.
package progress

import (
	"github.com/opencontainers/go-digest"
	"github.com/packship/packship/internal/core/ports"
	"github.com/vito/progrock"
)

var _ ports.ProgressReporter = (*Reporter)(nil)

// Reporter records per-package progress on a progrock tape.
type Reporter struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Reporter with a default tape.
func New() *Reporter {
	return NewReporter(progrock.NewTape())
}

// NewReporter creates a Reporter recording to the given writer.
func NewReporter(w progrock.Writer) *Reporter {
	return &Reporter{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Begin starts a vertex for the named unit of work.
func (r *Reporter) Begin(name string) ports.ProgressTask {
	d := digest.FromString(name)
	return &task{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the recording session.
func (r *Reporter) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
