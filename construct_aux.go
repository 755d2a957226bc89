package euclid

import "github.com/pkg/errors"

// Derived constructions, each expressed purely in terms of the five
// kernel operations. They inherit memoization step by step: every kernel
// call inside them is itself memoized.

// PerpendicularBisector returns the perpendicular bisector of the
// segment p1 p2: the line through the two intersections of the circles
// around p1 through p2 and around p2 through p1.
func (pl *Plane) PerpendicularBisector(p1, p2 Point) (Line, error) {
	c1, err := pl.CircleCenterThrough(p1, p2)
	if err != nil {
		return Line{}, err
	}
	c2, err := pl.CircleCenterThrough(p2, p1)
	if err != nil {
		return Line{}, err
	}
	pts, err := pl.IntersectCircles(c1, c2)
	if err != nil {
		return Line{}, err
	}
	// Equal radii at distance r always cross twice.
	return pl.LineThrough(pts[0], pts[1])
}

// Midpoint returns the midpoint of p1 and p2, constructed as the
// intersection of the segment's line with its perpendicular bisector.
func (pl *Plane) Midpoint(p1, p2 Point) (Point, error) {
	if p1.Equal(p2) {
		return p1, nil
	}
	l, err := pl.LineThrough(p1, p2)
	if err != nil {
		return Point{}, err
	}
	bis, err := pl.PerpendicularBisector(p1, p2)
	if err != nil {
		return Point{}, err
	}
	return pl.IntersectLines(l, bis)
}

// perpendicularThrough returns the perpendicular to l through p.
func (pl *Plane) perpendicularThrough(p Point, l Line) (Line, error) {
	q1, q2 := l.twoPoints()

	if l.Contains(p) {
		// A circle around p through a reference point of l cuts l in two
		// points symmetric about p; their bisector is the perpendicular.
		q := q1
		if q.Equal(p) {
			q = q2
		}
		c, err := pl.CircleCenterThrough(p, q)
		if err != nil {
			return Line{}, err
		}
		pts, err := pl.IntersectLineCircle(l, c)
		if err != nil {
			return Line{}, err
		}
		return pl.PerpendicularBisector(pts[0], pts[1])
	}

	// Drop a circle around p through a reference point of l. If that
	// point happens to be the foot of the perpendicular the circle is
	// tangent; the other reference point cannot be.
	pts, err := pl.cutLineTwice(p, q1, l)
	if err != nil {
		pts, err = pl.cutLineTwice(p, q2, l)
		if err != nil {
			return Line{}, err
		}
	}
	c1, err := pl.CircleCenterThrough(pts[0], p)
	if err != nil {
		return Line{}, err
	}
	c2, err := pl.CircleCenterThrough(pts[1], p)
	if err != nil {
		return Line{}, err
	}
	// The circles meet in p and its mirror image across l.
	ip, err := pl.IntersectCircles(c1, c2)
	if err != nil {
		return Line{}, err
	}
	if len(ip) < 2 {
		return Line{}, errors.Wrapf(ErrNoIntersection, "perpendicular through %s", p)
	}
	return pl.LineThrough(ip[0], ip[1])
}

// cutLineTwice intersects the circle around center through q with l and
// fails unless there are two intersection points.
func (pl *Plane) cutLineTwice(center, q Point, l Line) ([]Point, error) {
	c, err := pl.CircleCenterThrough(center, q)
	if err != nil {
		return nil, err
	}
	pts, err := pl.IntersectLineCircle(l, c)
	if err != nil {
		return nil, err
	}
	if len(pts) < 2 {
		return nil, errors.Wrapf(ErrNoIntersection, "circle around %s is tangent to %s", center, l)
	}
	return pts, nil
}

// parallelThrough returns the parallel to l through p. For p on l the
// parallel is l itself.
func (pl *Plane) parallelThrough(p Point, l Line) (Line, error) {
	if l.Contains(p) {
		return l, nil
	}
	perp, err := pl.perpendicularThrough(p, l)
	if err != nil {
		return Line{}, err
	}
	foot, err := pl.IntersectLines(l, perp)
	if err != nil {
		return Line{}, err
	}
	// The circle around p through the foot cuts the perpendicular in the
	// foot and its opposite; their bisector runs through p parallel to l.
	c, err := pl.CircleCenterThrough(p, foot)
	if err != nil {
		return Line{}, err
	}
	pts, err := pl.IntersectLineCircle(perp, c)
	if err != nil {
		return Line{}, err
	}
	if len(pts) < 2 {
		return Line{}, errors.Wrapf(ErrNoIntersection, "parallel through %s", p)
	}
	return pl.PerpendicularBisector(pts[0], pts[1])
}

// mirrorAcrossPoint reflects p through center: the second intersection
// of the circle around center through p with the line through both.
func (pl *Plane) mirrorAcrossPoint(center, p Point) (Point, error) {
	if p.Equal(center) {
		return p, nil
	}
	c, err := pl.CircleCenterThrough(center, p)
	if err != nil {
		return Point{}, err
	}
	l, err := pl.LineThrough(center, p)
	if err != nil {
		return Point{}, err
	}
	pts, err := pl.IntersectLineCircle(l, c)
	if err != nil {
		return Point{}, err
	}
	for _, q := range pts {
		if !q.Equal(p) {
			return q, nil
		}
	}
	return Point{}, errors.Wrapf(ErrNoIntersection, "mirror of %s across %s", p, center)
}

// doubleFrom returns the point twice as far from o as p, on the line
// through both: the second intersection of the circle around p through o
// with that line.
func (pl *Plane) doubleFrom(o, p Point) (Point, error) {
	if p.Equal(o) {
		return o, nil
	}
	c, err := pl.CircleCenterThrough(p, o)
	if err != nil {
		return Point{}, err
	}
	l, err := pl.LineThrough(o, p)
	if err != nil {
		return Point{}, err
	}
	pts, err := pl.IntersectLineCircle(l, c)
	if err != nil {
		return Point{}, err
	}
	for _, q := range pts {
		if !q.Equal(o) {
			return q, nil
		}
	}
	return Point{}, errors.Wrapf(ErrNoIntersection, "doubling %s from %s", p, o)
}
