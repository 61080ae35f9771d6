package progress

import (
	"io"

	"github.com/vito/progrock"
)

// task implements ports.ProgressTask wrapping *progrock.VertexRecorder.
type task struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer for output attributed to this task.
func (t *task) Stdout() io.Writer {
	return t.vertex.Stdout()
}

// Cached marks the task as skipped because nothing changed.
func (t *task) Cached() {
	t.vertex.Cached()
}

// Done marks the task as finished.
func (t *task) Done(err error) {
	t.vertex.Done(err)
}
