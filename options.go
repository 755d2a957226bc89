package euclid

// PlaneOption configures a Plane during creation.
// Use functional options to customize Plane behavior.
//
// Example:
//
//	// Default: private unbounded memo, no tracing
//	pl := euclid.NewPlane()
//
//	// Shared memo and a construction recorder
//	pl := euclid.NewPlane(euclid.WithMemo(memo), euclid.WithTracer(rec))
type PlaneOption func(*planeOptions)

// planeOptions holds optional configuration for Plane creation.
type planeOptions struct {
	memo   *Memo
	tracer Tracer
}

// WithMemo sets the memoization cache used by the Plane. Planes sharing
// a memo share construction results; tests inject a fresh memo to
// isolate cache effects.
func WithMemo(m *Memo) PlaneOption {
	return func(o *planeOptions) {
		o.memo = m
	}
}

// WithMemoCapacity creates the Plane with a capacity-bounded memo
// instead of the default unbounded one. See NewMemoWithCapacity for the
// tradeoff.
func WithMemoCapacity(capacity int) PlaneOption {
	return func(o *planeOptions) {
		o.memo = NewMemoWithCapacity(capacity)
	}
}

// WithTracer attaches a construction tracer to the Plane. Every Point,
// Line, and Circle actually constructed (memo misses only) is reported
// to the tracer in construction order. The trace package provides a
// replayable Recorder implementation.
func WithTracer(t Tracer) PlaneOption {
	return func(o *planeOptions) {
		o.tracer = t
	}
}

// Tracer observes primitives as they are constructed. Implementations
// must not call back into the Plane from within a callback.
type Tracer interface {
	// TracePoint reports a newly constructed point.
	TracePoint(Point)
	// TraceLine reports a newly constructed line.
	TraceLine(Line)
	// TraceCircle reports a newly constructed circle.
	TraceCircle(Circle)
}
