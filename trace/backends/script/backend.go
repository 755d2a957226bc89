// Package script provides a textual backend for the trace system. It
// renders a recording as one line per construction step, in order:
//
//	point (0, 0)
//	point (1, 0)
//	line [1, 0, 0]
//	circle ((0, 0), (1, 0))
//
// The output is deterministic for a given construction sequence, which
// makes it useful for golden-file tests and for inspecting what a
// computation actually built.
//
//	// Import to register the backend
//	import _ "github.com/gogeom/euclid/trace/backends/script"
//
//	backend, _ := trace.NewBackend("script")
//	_ = recording.Playback(backend)
//	script := backend.(*script.Backend).String()
package script

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gogeom/euclid"
	"github.com/gogeom/euclid/trace"
)

func init() {
	trace.Register("script", func() trace.Backend {
		return New()
	})
}

// Backend renders a recording as a line-per-step script.
type Backend struct {
	buf bytes.Buffer
}

var (
	_ trace.Backend       = (*Backend)(nil)
	_ trace.WriterBackend = (*Backend)(nil)
)

// New creates a new script backend.
func New() *Backend {
	return &Backend{}
}

// Begin resets the backend for a fresh replay.
func (b *Backend) Begin(n int) error {
	b.buf.Reset()
	b.buf.Grow(n * 24)
	return nil
}

// Point writes a point step.
func (b *Backend) Point(p euclid.Point) error {
	_, err := fmt.Fprintf(&b.buf, "point %s\n", p)
	return err
}

// Line writes a line step.
func (b *Backend) Line(l euclid.Line) error {
	_, err := fmt.Fprintf(&b.buf, "line %s\n", l)
	return err
}

// Circle writes a circle step.
func (b *Backend) Circle(c euclid.Circle) error {
	_, err := fmt.Fprintf(&b.buf, "circle %s\n", c)
	return err
}

// End finalizes the replay.
func (b *Backend) End() error {
	return nil
}

// String returns the rendered script. Call it after End.
func (b *Backend) String() string {
	return b.buf.String()
}

// WriteTo writes the rendered script to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}
