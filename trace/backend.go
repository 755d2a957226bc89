package trace

import (
	"io"

	"github.com/gogeom/euclid"
)

// Backend is the interface that all trace export backends implement.
// Backends receive the recorded figures in construction order and
// translate them to their output format (a textual script, statistics,
// an SVG sketch, and so on).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register in their init functions.
type Backend interface {
	// Begin initializes the backend for a replay of n commands.
	// It is called once, before any figure method.
	Begin(n int) error

	// Point handles the construction of a point.
	Point(p euclid.Point) error

	// Line handles the construction of a line.
	Line(l euclid.Line) error

	// Circle handles the construction of a circle.
	Circle(c euclid.Circle) error

	// End finalizes the replay. It is called exactly once, even when
	// a figure method returned an error.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an
// io.Writer. WriteTo should only be called after End.
type WriterBackend interface {
	Backend

	WriteTo(w io.Writer) (int64, error)
}
