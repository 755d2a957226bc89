package euclid

import (
	"github.com/bits-and-blooms/bitset"
)

// Bitwise operations on geometric integers. Operands are decomposed
// into base-two digits, least significant first, by iterated
// remainder-and-halve constructions. The digit vectors are combined
// with set operations and the result is reassembled as the weighted
// sum of its set bits.
//
// Negative operands are handled in two's complement: both are offset
// by a power of two strictly greater than either magnitude, combined
// as non-negative values, and the offset is subtracted back out
// according to the sign rule of the operator.

// And returns the bitwise AND of a and b.
func (a Num) And(b Num) (Num, error) {
	return a.bitwise(b, "and|", func(x, y *bitset.BitSet) *bitset.BitSet {
		return x.Intersection(y)
	}, func(aNeg, bNeg bool) bool { return aNeg && bNeg })
}

// Or returns the bitwise OR of a and b.
func (a Num) Or(b Num) (Num, error) {
	return a.bitwise(b, "or|", func(x, y *bitset.BitSet) *bitset.BitSet {
		return x.Union(y)
	}, func(aNeg, bNeg bool) bool { return aNeg || bNeg })
}

// Xor returns the bitwise XOR of a and b.
func (a Num) Xor(b Num) (Num, error) {
	return a.bitwise(b, "xor|", func(x, y *bitset.BitSet) *bitset.BitSet {
		return x.SymmetricDifference(y)
	}, func(aNeg, bNeg bool) bool { return aNeg != bNeg })
}

// bitwise implements the shared digit pipeline. combine merges the two
// digit vectors; wide reports, from the operand signs, whether the
// two's-complement width survives into the combined value and must be
// subtracted back out.
func (a Num) bitwise(b Num, tag string, combine func(x, y *bitset.BitSet) *bitset.BitSet, wide func(aNeg, bNeg bool) bool) (Num, error) {
	if err := a.checkPlane(b); err != nil {
		return Num{}, err
	}
	pl := a.pl
	ka, kb := a.p.Key(), b.p.Key()
	if kb < ka {
		ka, kb = kb, ka
		a, b = b, a
	}
	p, err := pl.memoPoint(tag+ka+"|"+kb, func() (Point, error) {
		aNeg, bNeg := a.Sign() < 0, b.Sign() < 0
		x, y := a, b
		var width Num
		if aNeg || bNeg {
			// Width must exceed both magnitudes so the offset
			// values keep their own bits below the sign bit.
			absA, err := a.Abs()
			if err != nil {
				return Point{}, err
			}
			absB, err := b.Abs()
			if err != nil {
				return Point{}, err
			}
			mag := absA
			if absB.Cmp(mag) > 0 {
				mag = absB
			}
			width, err = pl.One().doubleUntilExceeds(mag)
			if err != nil {
				return Point{}, err
			}
			Logger().Debug("two's-complement transform", "op", tag, "width", width.String())
			if aNeg {
				if x, err = x.Add(width); err != nil {
					return Point{}, err
				}
			}
			if bNeg {
				if y, err = y.Add(width); err != nil {
					return Point{}, err
				}
			}
		}
		dx, err := x.digits()
		if err != nil {
			return Point{}, err
		}
		dy, err := y.digits()
		if err != nil {
			return Point{}, err
		}
		res, err := pl.assemble(combine(dx, dy))
		if err != nil {
			return Point{}, err
		}
		if (aNeg || bNeg) && wide(aNeg, bNeg) {
			if res, err = res.Sub(width); err != nil {
				return Point{}, err
			}
		}
		return res.p, nil
	})
	if err != nil {
		return Num{}, err
	}
	return a.bind(p), nil
}

// digits decomposes a non-negative value into its base-two digits,
// least significant bit first.
func (a Num) digits() (*bitset.BitSet, error) {
	pl := a.pl
	two, err := pl.Int(2)
	if err != nil {
		return nil, err
	}
	bits := bitset.New(8)
	cur := a
	for i := uint(0); !cur.IsZero(); i++ {
		r, err := cur.Mod(two)
		if err != nil {
			return nil, err
		}
		if !r.IsZero() {
			bits.Set(i)
			if cur, err = cur.Sub(pl.One()); err != nil {
				return nil, err
			}
		}
		if cur, err = cur.Half(); err != nil {
			return nil, err
		}
	}
	return bits, nil
}

// assemble rebuilds the value Σ 2^i over the set bits, doubling a
// running power of two once per digit position.
func (pl *Plane) assemble(bits *bitset.BitSet) (Num, error) {
	res := pl.Zero()
	pow := pl.One()
	var err error
	for i, n := uint(0), bits.Len(); i < n; i++ {
		if bits.Test(i) {
			if res, err = res.Add(pow); err != nil {
				return Num{}, err
			}
		}
		if pow, err = pow.Double(); err != nil {
			return Num{}, err
		}
	}
	return res, nil
}
