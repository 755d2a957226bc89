package trace

import (
	"sync"

	"github.com/gogeom/euclid"
)

// Recorder captures the figures a plane constructs. It implements
// euclid.Tracer, so it plugs directly into euclid.WithTracer. Use
// Finish to obtain an immutable Recording that can be replayed to
// different backends.
//
// The plane invokes the tracer from whatever goroutine performs the
// construction, so the Recorder serializes its appends internally.
type Recorder struct {
	mu        sync.Mutex
	commands  []Command
	resources *ResourcePool
}

var _ euclid.Tracer = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
	}
}

// TracePoint records the construction of a point.
func (r *Recorder) TracePoint(p euclid.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, PointCommand{Ref: r.resources.AddPoint(p)})
}

// TraceLine records the construction of a line.
func (r *Recorder) TraceLine(l euclid.Line) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, LineCommand{Ref: r.resources.AddLine(l)})
}

// TraceCircle records the construction of a circle.
func (r *Recorder) TraceCircle(c euclid.Circle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, CircleCommand{Ref: r.resources.AddCircle(c)})
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// Reset discards everything recorded so far. The Recorder can keep
// recording afterwards.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = r.commands[:0]
	r.resources.Clear()
}

// Finish returns an immutable Recording containing all recorded
// commands. After calling Finish, the Recorder should not be used
// again.
func (r *Recorder) Finish() *Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &Recording{
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable container for recorded construction
// commands. It can be replayed to any Backend implementation.
type Recording struct {
	commands  []Command
	resources *ResourcePool
}

// Commands returns the recorded commands in construction order.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Playback replays the recording to the given backend. Replay stops at
// the first backend error; End is still invoked so the backend can
// release whatever it acquired in Begin.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(len(r.commands)); err != nil {
		return err
	}
	var replayErr error
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case PointCommand:
			if pt, ok := r.resources.GetPoint(c.Ref); ok {
				replayErr = backend.Point(pt)
			}
		case LineCommand:
			if l, ok := r.resources.GetLine(c.Ref); ok {
				replayErr = backend.Line(l)
			}
		case CircleCommand:
			if circ, ok := r.resources.GetCircle(c.Ref); ok {
				replayErr = backend.Circle(circ)
			}
		}
		if replayErr != nil {
			break
		}
	}
	if err := backend.End(); err != nil && replayErr == nil {
		replayErr = err
	}
	return replayErr
}
