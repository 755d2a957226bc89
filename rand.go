package euclid

import "github.com/pkg/errors"

// LCG is a linear congruential generator whose entire state lives on
// the plane. Every step is a handful of geometric constructions, so a
// generator seeded identically on the same plane replays the exact
// same point sequence.
//
// The multiplier, increment and modulus are the 32-bit Numerical
// Recipes constants.
type LCG struct {
	pl    *Plane
	state Num
	mult  Num
	inc   Num
	mod   Num
}

// NewLCG returns a generator over pl seeded with seed.
func (pl *Plane) NewLCG(seed int64) (*LCG, error) {
	mult, err := pl.Int(1664525)
	if err != nil {
		return nil, err
	}
	inc, err := pl.Int(1013904223)
	if err != nil {
		return nil, err
	}
	mod, err := pl.Int(1 << 32)
	if err != nil {
		return nil, err
	}
	s, err := pl.Int(seed)
	if err != nil {
		return nil, err
	}
	state, err := s.Mod(mod)
	if err != nil {
		return nil, err
	}
	return &LCG{pl: pl, state: state, mult: mult, inc: inc, mod: mod}, nil
}

// Next advances the generator and returns the new state, a value in
// [0, 2^32).
func (g *LCG) Next() (Num, error) {
	prod, err := g.state.Mul(g.mult)
	if err != nil {
		return Num{}, err
	}
	sum, err := prod.Add(g.inc)
	if err != nil {
		return Num{}, err
	}
	next, err := sum.Mod(g.mod)
	if err != nil {
		return Num{}, err
	}
	g.state = next
	return next, nil
}

// maxPrimeDraws bounds the rejection loop in RandPrime.
const maxPrimeDraws = 4096

// RandPrime draws generator values until one maps to a prime in
// [lo, hi]. Draws in the biased tail of the generator range are
// rejected so the mapping stays uniform. It fails when the range
// contains no prime reachable within maxPrimeDraws draws.
func (g *LCG) RandPrime(lo, hi Num) (Num, error) {
	if err := lo.checkPlane(hi); err != nil {
		return Num{}, err
	}
	if hi.Cmp(lo) < 0 {
		return Num{}, errors.New("euclid: empty prime range")
	}
	one := g.pl.One()
	span, err := hi.Sub(lo)
	if err != nil {
		return Num{}, err
	}
	if span, err = span.Add(one); err != nil {
		return Num{}, err
	}
	// Largest multiple of span below the modulus; draws at or above
	// it would skew the low residues.
	q, err := g.mod.Div(span)
	if err != nil {
		return Num{}, err
	}
	lim, err := q.Mul(span)
	if err != nil {
		return Num{}, err
	}
	for i := 0; i < maxPrimeDraws; i++ {
		s, err := g.Next()
		if err != nil {
			return Num{}, err
		}
		if s.Cmp(lim) >= 0 {
			continue
		}
		r, err := s.Mod(span)
		if err != nil {
			return Num{}, err
		}
		cand, err := lo.Add(r)
		if err != nil {
			return Num{}, err
		}
		prime, err := cand.IsPrime()
		if err != nil {
			return Num{}, err
		}
		if prime {
			return cand, nil
		}
	}
	return Num{}, errors.New("euclid: no prime found in range")
}
