package euclid

import "github.com/pkg/errors"

// The five canonical compass-and-straightedge operations. Each is a
// pure function of its geometric inputs: results are memoized under a
// canonical signature, and only actual computations (memo misses) are
// reported to the tracer. Failures are never cached.
//
// Intersections that yield two points always order them by the fixed
// rule of ascending (x, y); repeated calls are stable. Returned slices
// are shared with the memo and must not be modified.

// LineThrough returns the unique line through p1 and p2. It fails with
// ErrDegenerateConstruction when the points coincide.
func (pl *Plane) LineThrough(p1, p2 Point) (Line, error) {
	k1, k2 := p1.Key(), p2.Key()
	if k2 < k1 {
		k1, k2 = k2, k1
	}
	return pl.memoLine("LT|"+k1+"|"+k2, func() (Line, error) {
		l, err := newLine(p1, p2)
		if err != nil {
			return Line{}, errors.Wrapf(err, "line through %s and %s", p1, p2)
		}
		pl.traceLine(l)
		return l, nil
	})
}

// CircleCenterThrough returns the circle centered at center passing
// through boundary. It fails with ErrDegenerateConstruction when the
// points coincide.
func (pl *Plane) CircleCenterThrough(center, boundary Point) (Circle, error) {
	return pl.memoCircle("CT|"+center.Key()+"|"+boundary.Key(), func() (Circle, error) {
		c, err := newCircle(center, boundary)
		if err != nil {
			return Circle{}, errors.Wrapf(err, "circle centered at %s through %s", center, boundary)
		}
		pl.traceCircle(c)
		return c, nil
	})
}

// IntersectLines returns the single point common to l1 and l2. Parallel
// distinct lines fail with ErrNoIntersection; geometrically identical
// lines fail with ErrCoincidentLines, which the caller must handle
// explicitly — an arbitrary point is never substituted.
func (pl *Plane) IntersectLines(l1, l2 Line) (Point, error) {
	k1, k2 := l1.Key(), l2.Key()
	if k2 < k1 {
		k1, k2 = k2, k1
	}
	return pl.memoPoint("LL|"+k1+"|"+k2, func() (Point, error) {
		det := l1.A.Mul(l2.B).Sub(l2.A.Mul(l1.B))
		if det.IsZero() {
			if l1.Equal(l2) {
				return Point{}, errors.Wrapf(ErrCoincidentLines, "intersecting %s with itself", l1)
			}
			return Point{}, errors.Wrapf(ErrNoIntersection, "parallel lines %s and %s", l1, l2)
		}
		invDet, err := det.Inv()
		if err != nil {
			return Point{}, err
		}
		x := l1.B.Mul(l2.C).Sub(l2.B.Mul(l1.C)).Mul(invDet)
		y := l2.A.Mul(l1.C).Sub(l1.A.Mul(l2.C)).Mul(invDet)
		p := Pt(x, y)
		pl.tracePoint(p)
		return p, nil
	})
}

// IntersectLineCircle returns the points common to l and c: two when the
// line crosses the circle, one at exact tangency (discriminant exactly
// zero), and ErrNoIntersection when they miss.
func (pl *Plane) IntersectLineCircle(l Line, c Circle) ([]Point, error) {
	return pl.memoPoints("LC|"+l.Key()+"|"+c.Key(), func() ([]Point, error) {
		pts, err := lineCircleIntersection(l, c)
		if err != nil {
			return nil, err
		}
		for _, p := range pts {
			pl.tracePoint(p)
		}
		return pts, nil
	})
}

// IntersectCircles returns the points common to c1 and c2. The quartic
// system is reduced exactly: subtracting the two circle equations yields
// the radical line, which is then intersected with c1. Identical
// circles fail with ErrCoincidentCircles; concentric or too-distant
// circles fail with ErrNoIntersection.
func (pl *Plane) IntersectCircles(c1, c2 Circle) ([]Point, error) {
	k1, k2 := c1.Key(), c2.Key()
	if k2 < k1 {
		k1, k2 = k2, k1
	}
	return pl.memoPoints("CC|"+k1+"|"+k2, func() ([]Point, error) {
		if c1.Equal(c2) {
			return nil, errors.Wrapf(ErrCoincidentCircles, "intersecting %s with itself", c1)
		}
		radical, err := radicalLine(c1, c2)
		if err != nil {
			// Concentric circles with different radii share no point.
			return nil, errors.Wrapf(ErrNoIntersection, "concentric circles %s and %s", c1, c2)
		}
		pts, err := lineCircleIntersection(radical, c1)
		if err != nil {
			return nil, err
		}
		for _, p := range pts {
			pl.tracePoint(p)
		}
		return pts, nil
	})
}

// lineCircleIntersection substitutes the line's parametrization into the
// circle equation and solves the quadratic exactly.
func lineCircleIntersection(l Line, c Circle) ([]Point, error) {
	// Parametrize l as p0 + t·dir with dir = (B, −A), which satisfies
	// A·dirX + B·dirY = 0.
	p0, _ := l.twoPoints()
	dir := Pt(l.B, l.A.Neg())

	// |p0 + t·dir − center|² = r²  ⇒  qa·t² + qb·t + qc = 0
	off := p0.Sub(c.Center)
	qa := dir.Dot(dir)
	qb := NewInt(2).Mul(dir.Dot(off))
	qc := off.Dot(off).Sub(c.RadiusSquared())

	disc := qb.Square().Sub(NewInt(4).Mul(qa).Mul(qc))
	switch disc.Sign() {
	case -1:
		return nil, errors.Wrapf(ErrNoIntersection, "%s misses %s", l, c)
	case 0:
		// Tangency: the single root t = −qb / 2·qa.
		t, err := qb.Neg().Div(NewInt(2).Mul(qa))
		if err != nil {
			return nil, err
		}
		return []Point{paramPoint(p0, dir, t)}, nil
	}

	root, err := disc.Sqrt()
	if err != nil {
		return nil, errors.Wrap(err, "line-circle discriminant")
	}
	den := NewInt(2).Mul(qa)
	t1, err := qb.Neg().Sub(root).Div(den)
	if err != nil {
		return nil, err
	}
	t2, err := qb.Neg().Add(root).Div(den)
	if err != nil {
		return nil, err
	}
	a, b := paramPoint(p0, dir, t1), paramPoint(p0, dir, t2)
	if b.cmp(a) < 0 {
		a, b = b, a
	}
	return []Point{a, b}, nil
}

// paramPoint returns p0 + t·dir.
func paramPoint(p0, dir Point, t Scalar) Point {
	return Pt(p0.X.Add(t.Mul(dir.X)), p0.Y.Add(t.Mul(dir.Y)))
}

// radicalLine returns the line obtained by subtracting the equations of
// two circles. It degenerates exactly when the centers coincide.
func radicalLine(c1, c2 Circle) (Line, error) {
	two := NewInt(2)
	a := two.Mul(c2.Center.X.Sub(c1.Center.X))
	b := two.Mul(c2.Center.Y.Sub(c1.Center.Y))
	n1 := c1.Center.Dot(c1.Center)
	n2 := c2.Center.Dot(c2.Center)
	cc := n1.Sub(n2).Sub(c1.RadiusSquared()).Add(c2.RadiusSquared())
	return lineFromCoeffs(a, b, cc)
}
