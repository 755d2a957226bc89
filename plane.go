package euclid

import "sync"

// Plane is a construction workspace: the fixed reference frame anchoring
// the number line, the memoization cache, and an optional construction
// tracer. All constructions and number operations happen through a
// Plane.
//
// The reference frame is the point pair Origin (0,0) and Unit (1,0); the
// two frame points are the only points ever created by coordinate
// injection. Everything else is built from them by constructions.
//
// A Plane is safe for concurrent use; the memo collapses concurrent
// computations of the same construction into one.
type Plane struct {
	memo   *Memo
	tracer Tracer

	origin Point
	unit   Point
	xaxis  Line

	yaxisOnce sync.Once
	yaxis     Line
	yaxisErr  error
}

// NewPlane creates a Plane with a private unbounded memo and no tracer,
// unless options say otherwise.
func NewPlane(opts ...PlaneOption) *Plane {
	o := planeOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.memo == nil {
		o.memo = NewMemo()
	}

	origin := IntPt(0, 0)
	unit := IntPt(1, 0)
	// The number line itself. Coefficients of the line through two
	// distinct points never degenerate, so the error is impossible here.
	xaxis, err := newLine(origin, unit)
	if err != nil {
		panic("euclid: reference frame construction failed: " + err.Error())
	}

	return &Plane{
		memo:   o.memo,
		tracer: o.tracer,
		origin: origin,
		unit:   unit,
		xaxis:  xaxis,
	}
}

// Origin returns the frame point (0, 0).
func (pl *Plane) Origin() Point { return pl.origin }

// Unit returns the frame point (1, 0).
func (pl *Plane) Unit() Point { return pl.unit }

// XAxis returns the number line, the line through Origin and Unit.
func (pl *Plane) XAxis() Line { return pl.xaxis }

// YAxis returns the perpendicular to the number line at the Origin. It
// is built by construction (perpendicular bisector of the two unit
// points on either side of the Origin), not by coordinate injection,
// and cached for the lifetime of the Plane.
func (pl *Plane) YAxis() (Line, error) {
	pl.yaxisOnce.Do(func() {
		pl.yaxis, pl.yaxisErr = pl.perpendicularThrough(pl.origin, pl.xaxis)
	})
	return pl.yaxis, pl.yaxisErr
}

// Memo returns the Plane's memoization cache.
func (pl *Plane) Memo() *Memo { return pl.memo }

// tracePoint reports p to the tracer, if any.
func (pl *Plane) tracePoint(p Point) {
	if pl.tracer != nil {
		pl.tracer.TracePoint(p)
	}
}

// traceLine reports l to the tracer, if any.
func (pl *Plane) traceLine(l Line) {
	if pl.tracer != nil {
		pl.tracer.TraceLine(l)
	}
}

// traceCircle reports c to the tracer, if any.
func (pl *Plane) traceCircle(c Circle) {
	if pl.tracer != nil {
		pl.tracer.TraceCircle(c)
	}
}

// memoPoint memoizes a construction returning a single Point.
func (pl *Plane) memoPoint(key string, compute func() (Point, error)) (Point, error) {
	v, err := pl.memo.getOrCompute(key, func() (any, error) {
		p, err := compute()
		if err != nil {
			return nil, err
		}
		return p, nil
	})
	if err != nil {
		return Point{}, err
	}
	return v.(Point), nil
}

// memoPoints memoizes a construction returning an ordered point set.
func (pl *Plane) memoPoints(key string, compute func() ([]Point, error)) ([]Point, error) {
	v, err := pl.memo.getOrCompute(key, func() (any, error) {
		ps, err := compute()
		if err != nil {
			return nil, err
		}
		return ps, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Point), nil
}

// memoLine memoizes a construction returning a Line.
func (pl *Plane) memoLine(key string, compute func() (Line, error)) (Line, error) {
	v, err := pl.memo.getOrCompute(key, func() (any, error) {
		l, err := compute()
		if err != nil {
			return nil, err
		}
		return l, nil
	})
	if err != nil {
		return Line{}, err
	}
	return v.(Line), nil
}

// memoCircle memoizes a construction returning a Circle.
func (pl *Plane) memoCircle(key string, compute func() (Circle, error)) (Circle, error) {
	v, err := pl.memo.getOrCompute(key, func() (any, error) {
		c, err := compute()
		if err != nil {
			return nil, err
		}
		return c, nil
	})
	if err != nil {
		return Circle{}, err
	}
	return v.(Circle), nil
}
