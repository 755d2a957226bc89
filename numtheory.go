package euclid

import "github.com/pkg/errors"

// Number-theoretic operations layered on the arithmetic compiler. These
// never inspect digits of a native integer; everything reduces to the
// geometric operations.

// Floor returns the largest integer not exceeding a, computed
// geometrically as a − (a mod 1). The modulo reduction only ever
// compares exact scalars, so this works for irrational points too (the
// result of Sqrt, for example).
func (a Num) Floor() (Num, error) {
	if a.pl == nil {
		return Num{}, ErrMismatchedPlanes
	}
	frac, err := a.Mod(a.pl.One())
	if err != nil {
		return Num{}, err
	}
	return a.Sub(frac)
}

// Pow returns a^b for a non-negative integer exponent b.
func (a Num) Pow(b Num) (Num, error) {
	if err := a.checkPlane(b); err != nil {
		return Num{}, err
	}
	if b.Sign() < 0 {
		return Num{}, errors.Wrap(ErrNotANumber, "negative exponent")
	}
	if !b.p.Y.IsZero() || !b.p.X.IsInteger() {
		return Num{}, errors.Wrap(ErrNotANumber, "non-integer exponent")
	}
	one := a.pl.One()
	if b.IsZero() {
		return one, nil
	}
	res := a
	count, err := b.Sub(one)
	if err != nil {
		return Num{}, err
	}
	for count.Sign() > 0 {
		res, err = res.Mul(a)
		if err != nil {
			return Num{}, err
		}
		count, err = count.Sub(one)
		if err != nil {
			return Num{}, err
		}
	}
	return res, nil
}

// Sqrt returns the exact square root of a non-negative a by the
// geometric-mean construction: on a circle of diameter a+1, the
// perpendicular at distance (a−1)/2 from the center has height √a.
// The result is an exact point even when √a is irrational.
func (a Num) Sqrt() (Num, error) {
	if a.pl == nil {
		return Num{}, ErrMismatchedPlanes
	}
	if a.Sign() < 0 {
		return Num{}, ErrNegativeSqrt
	}
	pl := a.pl
	if a.IsZero() {
		return pl.Zero(), nil
	}
	one := pl.One()
	if a.Equal(one) {
		return one, nil
	}

	p, err := pl.memoPoint("sqrt|"+a.p.Key(), func() (Point, error) {
		// p = (a+1)/2, q = p − 1 = (a−1)/2.
		ap1, err := a.Add(one)
		if err != nil {
			return Point{}, err
		}
		half, err := ap1.Half()
		if err != nil {
			return Point{}, err
		}
		q, err := half.Sub(one)
		if err != nil {
			return Point{}, err
		}
		c, err := pl.CircleCenterThrough(pl.origin, half.p)
		if err != nil {
			return Point{}, err
		}
		perp, err := pl.perpendicularThrough(q.p, pl.xaxis)
		if err != nil {
			return Point{}, err
		}
		pts, err := pl.IntersectLineCircle(perp, c)
		if err != nil {
			return Point{}, err
		}
		var top Point
		for _, pt := range pts {
			if pt.Y.Sign() > 0 {
				top = pt
			}
		}
		// Swing the height down onto the number line from q.
		c2, err := pl.CircleCenterThrough(q.p, top)
		if err != nil {
			return Point{}, err
		}
		onAxis, err := pl.IntersectLineCircle(pl.xaxis, c2)
		if err != nil {
			return Point{}, err
		}
		far := onAxis[len(onAxis)-1] // ascending order: rightmost point
		root, err := pl.FromPoint(far).Sub(q)
		if err != nil {
			return Point{}, err
		}
		return root.p, nil
	})
	if err != nil {
		return Num{}, err
	}
	return a.bind(p), nil
}

// IsPrime reports whether a is prime, by trial division with odd
// candidates up to the geometric square root.
func (a Num) IsPrime() (bool, error) {
	if a.pl == nil {
		return false, ErrMismatchedPlanes
	}
	pl := a.pl
	one := pl.One()
	two, err := pl.Int(2)
	if err != nil {
		return false, err
	}
	if a.Cmp(one) <= 0 {
		return false, nil
	}
	if a.Equal(two) {
		return true, nil
	}
	r, err := a.Mod(two)
	if err != nil {
		return false, err
	}
	if r.IsZero() {
		return false, nil
	}
	root, err := a.Sqrt()
	if err != nil {
		return false, err
	}
	limPlus, err := root.Add(one)
	if err != nil {
		return false, err
	}
	lim, err := limPlus.Floor()
	if err != nil {
		return false, err
	}
	cur, err := pl.Int(3)
	if err != nil {
		return false, err
	}
	for cur.Cmp(lim) < 0 {
		r, err := a.Mod(cur)
		if err != nil {
			return false, err
		}
		if r.IsZero() {
			return false, nil
		}
		cur, err = cur.Add(two)
		if err != nil {
			return false, err
		}
	}
	return true, nil
}

// GCD returns the greatest common divisor of a and b by the Euclidean
// algorithm over geometric modulo.
func GCD(a, b Num) (Num, error) {
	if err := a.checkPlane(b); err != nil {
		return Num{}, err
	}
	for !b.IsZero() {
		r, err := a.Mod(b)
		if err != nil {
			return Num{}, err
		}
		a, b = b, r
	}
	return a.Abs()
}

// ModInverse returns x with a·x ≡ 1 (mod n), by the extended Euclidean
// algorithm. It fails with ErrNoInverse when a and n are not coprime.
func (a Num) ModInverse(n Num) (Num, error) {
	if err := a.checkPlane(n); err != nil {
		return Num{}, err
	}
	if n.IsZero() {
		return Num{}, ErrDivisionByZero
	}
	pl := a.pl
	t, newT := pl.Zero(), pl.One()
	r := n
	newR, err := a.Mod(n)
	if err != nil {
		return Num{}, err
	}
	for !newR.IsZero() {
		q, err := r.Div(newR)
		if err != nil {
			return Num{}, err
		}
		qt, err := q.Mul(newT)
		if err != nil {
			return Num{}, err
		}
		nextT, err := t.Sub(qt)
		if err != nil {
			return Num{}, err
		}
		qr, err := q.Mul(newR)
		if err != nil {
			return Num{}, err
		}
		nextR, err := r.Sub(qr)
		if err != nil {
			return Num{}, err
		}
		t, newT = newT, nextT
		r, newR = newR, nextR
	}
	if !r.Equal(pl.One()) {
		return Num{}, errors.Wrapf(ErrNoInverse, "gcd(%s, %s) = %s", a, n, r)
	}
	return t.Mod(n)
}

// PowMod returns a^b mod n by square-and-multiply, reducing eagerly so
// intermediate values stay below n².
func PowMod(a, b, n Num) (Num, error) {
	if err := a.checkPlane(b); err != nil {
		return Num{}, err
	}
	if err := a.checkPlane(n); err != nil {
		return Num{}, err
	}
	if n.IsZero() {
		return Num{}, ErrDivisionByZero
	}
	pl := a.pl
	one := pl.One()
	two, err := pl.Int(2)
	if err != nil {
		return Num{}, err
	}
	result := one
	base := a
	exp := b
	for exp.Sign() > 0 {
		bit, err := exp.Mod(two)
		if err != nil {
			return Num{}, err
		}
		if bit.Equal(one) {
			result, err = result.Mul(base)
			if err != nil {
				return Num{}, err
			}
			if result.Cmp(n) >= 0 {
				result, err = result.Mod(n)
				if err != nil {
					return Num{}, err
				}
			}
		}
		base, err = base.Mul(base)
		if err != nil {
			return Num{}, err
		}
		if base.Cmp(n) >= 0 {
			base, err = base.Mod(n)
			if err != nil {
				return Num{}, err
			}
		}
		exp, err = exp.Rsh(1)
		if err != nil {
			return Num{}, err
		}
	}
	return result.Mod(n)
}
