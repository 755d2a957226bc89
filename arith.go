package euclid

// Arithmetic over Nums, compiled to construction sequences. Every entry
// point is memoized under the exact identities of its operands, on top
// of the per-construction memoization in the kernel.

// Add returns a + b, constructed from the midpoint identity: the
// midpoint M of the two points is found with the perpendicular bisector
// construction, and doubling M away from the Origin lands exactly on
// x = a + b.
func (a Num) Add(b Num) (Num, error) {
	if err := a.checkPlane(b); err != nil {
		return Num{}, err
	}
	pl := a.pl
	k1, k2 := a.p.Key(), b.p.Key()
	if k2 < k1 {
		k1, k2 = k2, k1
	}
	p, err := pl.memoPoint("add|"+k1+"|"+k2, func() (Point, error) {
		if a.IsZero() {
			return b.p, nil
		}
		if b.IsZero() {
			return a.p, nil
		}
		if a.Equal(b) {
			d, err := a.Double()
			if err != nil {
				return Point{}, err
			}
			return d.p, nil
		}
		m, err := pl.Midpoint(a.p, b.p)
		if err != nil {
			return Point{}, err
		}
		return pl.doubleFrom(pl.origin, m)
	})
	if err != nil {
		return Num{}, err
	}
	return a.bind(p), nil
}

// Sub returns a − b.
func (a Num) Sub(b Num) (Num, error) {
	if err := a.checkPlane(b); err != nil {
		return Num{}, err
	}
	if a.Equal(b) {
		return a.pl.Zero(), nil
	}
	nb, err := b.Neg()
	if err != nil {
		return Num{}, err
	}
	return a.Add(nb)
}

// Neg returns −a, the reflection of a through the Origin: the circle
// around the Origin through a meets the number line again at −a.
func (a Num) Neg() (Num, error) {
	if a.pl == nil {
		return Num{}, ErrMismatchedPlanes
	}
	pl := a.pl
	p, err := pl.memoPoint("neg|"+a.p.Key(), func() (Point, error) {
		return pl.mirrorAcrossPoint(pl.origin, a.p)
	})
	if err != nil {
		return Num{}, err
	}
	return a.bind(p), nil
}

// Abs returns |a|.
func (a Num) Abs() (Num, error) {
	if a.Sign() < 0 {
		return a.Neg()
	}
	return a, nil
}

// Double returns 2·a by the dedicated fast path: a single circle around
// a through the Origin, cut with the number line. This produces the same
// point as Add(a, a) in strictly fewer construction steps.
func (a Num) Double() (Num, error) {
	if a.pl == nil {
		return Num{}, ErrMismatchedPlanes
	}
	pl := a.pl
	p, err := pl.memoPoint("dbl|"+a.p.Key(), func() (Point, error) {
		return pl.doubleFrom(pl.origin, a.p)
	})
	if err != nil {
		return Num{}, err
	}
	return a.bind(p), nil
}

// Half returns the midpoint of the Origin and a: a/2 as a point, which
// is integer-valued only for even a.
func (a Num) Half() (Num, error) {
	if a.pl == nil {
		return Num{}, ErrMismatchedPlanes
	}
	pl := a.pl
	p, err := pl.memoPoint("hlf|"+a.p.Key(), func() (Point, error) {
		return pl.Midpoint(pl.origin, a.p)
	})
	if err != nil {
		return Num{}, err
	}
	return a.bind(p), nil
}

// Mul returns a × b via the intercept theorem: a is swung onto the
// y-axis, and the parallel through b to the line joining (0, a) and
// (−1, 0) cuts the y-axis at a height of exactly a·b.
func (a Num) Mul(b Num) (Num, error) {
	if err := a.checkPlane(b); err != nil {
		return Num{}, err
	}
	pl := a.pl
	k1, k2 := a.p.Key(), b.p.Key()
	if k2 < k1 {
		k1, k2 = k2, k1
	}
	p, err := pl.memoPoint("mul|"+k1+"|"+k2, func() (Point, error) {
		one := pl.One()
		switch {
		case a.IsZero() || b.IsZero():
			return pl.origin, nil
		case a.Equal(one):
			return b.p, nil
		case b.Equal(one):
			return a.p, nil
		}

		aPos, err := a.Abs()
		if err != nil {
			return Point{}, err
		}
		bPos, err := b.Abs()
		if err != nil {
			return Point{}, err
		}

		shifted, err := pl.swingToYAxis(aPos.p)
		if err != nil {
			return Point{}, err
		}
		negUnit, err := pl.mirrorAcrossPoint(pl.origin, pl.unit)
		if err != nil {
			return Point{}, err
		}
		ln, err := pl.LineThrough(shifted, negUnit)
		if err != nil {
			return Point{}, err
		}
		par, err := pl.parallelThrough(bPos.p, ln)
		if err != nil {
			return Point{}, err
		}
		yax, err := pl.YAxis()
		if err != nil {
			return Point{}, err
		}
		prod, err := pl.IntersectLines(yax, par)
		if err != nil {
			return Point{}, err
		}
		res, err := pl.swingToXAxis(prod)
		if err != nil {
			return Point{}, err
		}
		if a.Sign()*b.Sign() < 0 {
			return pl.mirrorAcrossPoint(pl.origin, res)
		}
		return res, nil
	})
	if err != nil {
		return Num{}, err
	}
	return a.bind(p), nil
}

// Div returns the floor quotient a ÷ b, so that
// a == b·(a ÷ b) + (a mod b) with the remainder in [0, b) for b > 0.
// It fails with ErrDivisionByZero before any construction when b is 0.
func (a Num) Div(b Num) (Num, error) {
	if err := a.checkPlane(b); err != nil {
		return Num{}, err
	}
	if b.IsZero() {
		return Num{}, ErrDivisionByZero
	}
	r, err := a.Mod(b)
	if err != nil {
		return Num{}, err
	}
	exact, err := a.Sub(r)
	if err != nil {
		return Num{}, err
	}
	return exact.quo(b)
}

// quo returns the exact ratio a/b as a point construction, again by the
// intercept theorem. Callers guarantee b is nonzero.
func (a Num) quo(b Num) (Num, error) {
	pl := a.pl
	p, err := pl.memoPoint("quo|"+a.p.Key()+"|"+b.p.Key(), func() (Point, error) {
		if a.IsZero() {
			return pl.origin, nil
		}
		if b.Equal(pl.One()) {
			return a.p, nil
		}

		aPos, err := a.Abs()
		if err != nil {
			return Point{}, err
		}
		bPos, err := b.Abs()
		if err != nil {
			return Point{}, err
		}

		shifted, err := pl.swingToYAxis(aPos.p)
		if err != nil {
			return Point{}, err
		}
		ln, err := pl.LineThrough(shifted, bPos.p)
		if err != nil {
			return Point{}, err
		}
		negUnit, err := pl.mirrorAcrossPoint(pl.origin, pl.unit)
		if err != nil {
			return Point{}, err
		}
		par, err := pl.parallelThrough(negUnit, ln)
		if err != nil {
			return Point{}, err
		}
		yax, err := pl.YAxis()
		if err != nil {
			return Point{}, err
		}
		quot, err := pl.IntersectLines(yax, par)
		if err != nil {
			return Point{}, err
		}
		res, err := pl.swingToXAxis(quot)
		if err != nil {
			return Point{}, err
		}
		if a.Sign()*b.Sign() < 0 {
			return pl.mirrorAcrossPoint(pl.origin, res)
		}
		return res, nil
	})
	if err != nil {
		return Num{}, err
	}
	return a.bind(p), nil
}

// Mod returns a mod m with the sign of the modulus, in [0, m) for
// m > 0. Rather than subtracting m one step at a time, the remainder is
// reduced against the largest doubling m·2^j that reaches it — a binary
// long-division-style reduction with the same result in far fewer
// constructions. It fails with ErrDivisionByZero before any construction
// when m is 0.
func (a Num) Mod(m Num) (Num, error) {
	if err := a.checkPlane(m); err != nil {
		return Num{}, err
	}
	if m.IsZero() {
		return Num{}, ErrDivisionByZero
	}
	pl := a.pl
	p, err := pl.memoPoint("mod|"+a.p.Key()+"|"+m.p.Key(), func() (Point, error) {
		absM, err := m.Abs()
		if err != nil {
			return Point{}, err
		}
		rem := a
		for {
			absRem, err := rem.Abs()
			if err != nil {
				return Point{}, err
			}
			if absRem.Cmp(absM) < 0 {
				break
			}
			step, err := absM.doubleUntilReaches(absRem)
			if err != nil {
				return Point{}, err
			}
			if rem.Sign() > 0 {
				rem, err = rem.Sub(step)
			} else {
				rem, err = rem.Add(step)
			}
			if err != nil {
				return Point{}, err
			}
		}
		// Align the remainder's sign with the modulus.
		if m.Sign() < 0 && rem.Sign() > 0 {
			rem, err = rem.Sub(absM)
		} else if m.Sign() > 0 && rem.Sign() < 0 {
			rem, err = rem.Add(absM)
		}
		if err != nil {
			return Point{}, err
		}
		return rem.p, nil
	})
	if err != nil {
		return Num{}, err
	}
	return a.bind(p), nil
}

// doubleUntilReaches doubles m until it is ≥ target: the smallest
// m·2^j that reaches target.
func (m Num) doubleUntilReaches(target Num) (Num, error) {
	step := m
	for target.Cmp(step) > 0 {
		var err error
		step, err = step.Double()
		if err != nil {
			return Num{}, err
		}
	}
	return step, nil
}

// doubleUntilExceeds doubles m until it is strictly greater than
// target. The bitwise compiler uses this to find the two's-complement
// width for negative operands.
func (m Num) doubleUntilExceeds(target Num) (Num, error) {
	step := m
	for target.Cmp(step) >= 0 {
		var err error
		step, err = step.Double()
		if err != nil {
			return Num{}, err
		}
	}
	return step, nil
}

// Lsh returns a·2^k by repeated doubling.
func (a Num) Lsh(k uint) (Num, error) {
	res := a
	for i := uint(0); i < k; i++ {
		var err error
		res, err = res.Double()
		if err != nil {
			return Num{}, err
		}
	}
	return res, nil
}

// Rsh returns a arithmetically shifted right by k: floor(a / 2^k),
// realized as halving constructions with an odd-step correction.
func (a Num) Rsh(k uint) (Num, error) {
	if a.pl == nil {
		return Num{}, ErrMismatchedPlanes
	}
	two, err := a.pl.Int(2)
	if err != nil {
		return Num{}, err
	}
	res := a
	for i := uint(0); i < k; i++ {
		r, err := res.Mod(two)
		if err != nil {
			return Num{}, err
		}
		if !r.IsZero() {
			res, err = res.Sub(a.pl.One())
			if err != nil {
				return Num{}, err
			}
		}
		res, err = res.Half()
		if err != nil {
			return Num{}, err
		}
	}
	return res, nil
}

// swingToYAxis rotates a point on the positive x-axis onto the positive
// y-axis with a circle around the Origin.
func (pl *Plane) swingToYAxis(p Point) (Point, error) {
	yax, err := pl.YAxis()
	if err != nil {
		return Point{}, err
	}
	c, err := pl.CircleCenterThrough(pl.origin, p)
	if err != nil {
		return Point{}, err
	}
	pts, err := pl.IntersectLineCircle(yax, c)
	if err != nil {
		return Point{}, err
	}
	for _, q := range pts {
		if q.Y.Sign() > 0 {
			return q, nil
		}
	}
	return Point{}, ErrNoIntersection
}

// swingToXAxis rotates a point on the y-axis onto the positive x-axis.
func (pl *Plane) swingToXAxis(p Point) (Point, error) {
	c, err := pl.CircleCenterThrough(pl.origin, p)
	if err != nil {
		return Point{}, err
	}
	pts, err := pl.IntersectLineCircle(pl.xaxis, c)
	if err != nil {
		return Point{}, err
	}
	for _, q := range pts {
		if q.X.Sign() > 0 {
			return q, nil
		}
	}
	return Point{}, ErrNoIntersection
}
