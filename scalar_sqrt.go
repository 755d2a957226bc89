package euclid

import "math/big"

// Sqrt returns the exact nonnegative square root of s.
//
// Rational radicands always succeed: √(n/d) = √(n·d)/d with the square
// content of n·d extracted exactly. Values of the form a + b·√d succeed
// when the classical denesting identity applies, i.e. when a² − b²·d is
// the square of a rational:
//
//	√(a + b·√d) = √m + √n,  m,n = (a ± √(a²−b²d))/2
//
// Anything else returns ErrInexact; the library never substitutes an
// approximation. Negative values return ErrNegativeSqrt.
func (s Scalar) Sqrt() (Scalar, error) {
	switch s.Sign() {
	case 0:
		return Scalar{}, nil
	case -1:
		return Scalar{}, ErrNegativeSqrt
	}

	if r, ok := s.Rat(); ok {
		return sqrtRat(r), nil
	}

	if len(s.terms) > 2 {
		return Scalar{}, ErrInexact
	}
	// s = a + b·√d with b ≠ 0. A pure radical b·√d (a = 0) has no root
	// in the field: (u + v·√d)² = b·√d forces u = v = 0.
	var a *big.Rat
	var radical radTerm
	if len(s.terms) == 1 {
		return Scalar{}, ErrInexact
	}
	if s.terms[0].rad.Cmp(bigIntOne) != 0 {
		return Scalar{}, ErrInexact
	}
	a = s.terms[0].coef
	radical = s.terms[1]

	// disc = a² − b²·d must be the square of a rational.
	b2d := new(big.Rat).Mul(radical.coef, radical.coef)
	b2d.Mul(b2d, new(big.Rat).SetInt(radical.rad))
	disc := new(big.Rat).Mul(a, a)
	disc.Sub(disc, b2d)
	if disc.Sign() < 0 {
		return Scalar{}, ErrInexact
	}
	root, ok := ratSqrt(disc)
	if !ok {
		return Scalar{}, ErrInexact
	}

	half := big.NewRat(1, 2)
	m := new(big.Rat).Add(a, root)
	m.Mul(m, half)
	n := new(big.Rat).Sub(a, root)
	n.Mul(n, half)

	// √(a+b√d) = √m + √n for b > 0, √m − √n for b < 0 (m ≥ n ≥ 0
	// because s is positive).
	res := sqrtRat(m)
	if radical.coef.Sign() > 0 {
		return res.Add(sqrtRat(n)), nil
	}
	return res.Sub(sqrtRat(n)), nil
}

// sqrtRat returns √r for a nonnegative rational r as an exact Scalar.
func sqrtRat(r *big.Rat) Scalar {
	if r.Sign() == 0 {
		return Scalar{}
	}
	// √(n/d) = √(n·d) / d.
	nd := new(big.Int).Mul(r.Num(), r.Denom())
	mult, rad := reduceRadicand(nd)
	coef := new(big.Rat).SetFrac(mult, r.Denom())
	return Scalar{terms: addTerm(nil, coef, rad)}
}

// ratSqrt returns the exact rational square root of r, if one exists.
func ratSqrt(r *big.Rat) (*big.Rat, bool) {
	if r.Sign() == 0 {
		return new(big.Rat), true
	}
	sn := new(big.Int).Sqrt(r.Num())
	if new(big.Int).Mul(sn, sn).Cmp(r.Num()) != 0 {
		return nil, false
	}
	sd := new(big.Int).Sqrt(r.Denom())
	if new(big.Int).Mul(sd, sd).Cmp(r.Denom()) != 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(sn, sd), true
}
