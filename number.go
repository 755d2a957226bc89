package euclid

import (
	"strconv"

	"github.com/pkg/errors"
)

// Num is an integer realized as a point on the number line of a Plane.
// The value n is the point (n, 0) relative to the reference frame; the
// only way to create one is by construction from Origin and Unit, so
// every Num is itself a certificate of constructibility.
//
// Num is an immutable value. The zero value is not usable; obtain Nums
// from a Plane. Operations on Nums from different Planes fail with
// ErrMismatchedPlanes.
type Num struct {
	pl *Plane
	p  Point
}

// Zero returns the Num for 0, the Origin frame point.
func (pl *Plane) Zero() Num { return Num{pl: pl, p: pl.origin} }

// One returns the Num for 1, the Unit frame point.
func (pl *Plane) One() Num { return Num{pl: pl, p: pl.unit} }

// Int constructs the Num for n by binary double-and-add from the frame
// points: the digits of |n| drive a ladder of Double and Add
// constructions, and negative n is mirrored through the Origin. Direct
// coordinate injection is reserved for the two frame points; everything
// else is built in-system.
func (pl *Plane) Int(n int64) (Num, error) {
	p, err := pl.memoPoint("N|"+strconv.FormatInt(n, 10), func() (Point, error) {
		Logger().Debug("constructing integer", "n", n)
		neg := n < 0
		mag := uint64(n)
		if neg {
			mag = uint64(-n)
		}
		ret := pl.Zero()
		cur := pl.One()
		for bits := mag; bits != 0; bits >>= 1 {
			if bits&1 != 0 {
				var err error
				ret, err = ret.Add(cur)
				if err != nil {
					return Point{}, err
				}
			}
			if bits > 1 {
				var err error
				cur, err = cur.Double()
				if err != nil {
					return Point{}, err
				}
			}
		}
		if neg {
			ret, err := ret.Neg()
			if err != nil {
				return Point{}, err
			}
			return ret.p, nil
		}
		return ret.p, nil
	})
	if err != nil {
		return Num{}, err
	}
	return Num{pl: pl, p: p}, nil
}

// FromPoint binds an existing point to the Plane's number view. The
// result is only integer-valued if the point lies on the number line at
// an integer coordinate; Int64 performs that check.
func (pl *Plane) FromPoint(p Point) Num {
	return Num{pl: pl, p: p}
}

// Point returns the underlying point of n.
func (n Num) Point() Point { return n.p }

// Plane returns the Plane n belongs to.
func (n Num) Plane() *Plane { return n.pl }

// Int64 extracts the integer value of n. It fails with ErrNotANumber
// when the point is off the number line, has a non-integral coordinate,
// or does not fit in an int64.
func (n Num) Int64() (int64, error) {
	if !n.p.Y.IsZero() {
		return 0, errors.Wrapf(ErrNotANumber, "point %s is off the number line", n.p)
	}
	v, ok := n.p.X.Int64()
	if !ok {
		return 0, errors.Wrapf(ErrNotANumber, "coordinate %s is not an int64", n.p.X)
	}
	return v, nil
}

// Sign returns the sign of n's coordinate: −1, 0, or +1.
func (n Num) Sign() int { return n.p.X.Sign() }

// Cmp compares the values of two Nums exactly: −1, 0, or +1.
func (n Num) Cmp(m Num) int { return n.p.X.Cmp(m.p.X) }

// Equal reports whether n and m denote the same value.
func (n Num) Equal(m Num) bool { return n.p.Equal(m.p) }

// Less reports whether n < m.
func (n Num) Less(m Num) bool { return n.Cmp(m) < 0 }

// IsZero reports whether n denotes 0.
func (n Num) IsZero() bool { return n.p.Equal(n.pl.origin) }

// String renders the value of n.
func (n Num) String() string {
	if n.p.Y.IsZero() {
		return n.p.X.String()
	}
	return n.p.String()
}

// bind wraps a point in the same plane as n.
func (n Num) bind(p Point) Num { return Num{pl: n.pl, p: p} }

// checkPlane verifies the operands share a plane.
func (n Num) checkPlane(m Num) error {
	if n.pl == nil || m.pl == nil {
		return errors.Wrap(ErrMismatchedPlanes, "unbound Num")
	}
	if n.pl != m.pl {
		return ErrMismatchedPlanes
	}
	return nil
}
