package euclid

import "strings"

// Point is an exact 2D point. Points are immutable value objects; two
// points are equal iff their coordinates denote the same real numbers.
type Point struct {
	X, Y Scalar
}

// Pt is a convenience function to create a Point.
func Pt(x, y Scalar) Point {
	return Point{X: x, Y: y}
}

// IntPt returns the point (x, y) with integer coordinates.
func IntPt(x, y int64) Point {
	return Point{X: NewInt(x), Y: NewInt(y)}
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X.Add(q.X), Y: p.Y.Add(q.Y)}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X.Sub(q.X), Y: p.Y.Sub(q.Y)}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) Scalar {
	return p.X.Mul(q.X).Add(p.Y.Mul(q.Y))
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) Scalar {
	return p.X.Mul(q.Y).Sub(p.Y.Mul(q.X))
}

// DistSquared returns the squared distance between two points.
// It is always exactly representable, unlike the distance itself.
func (p Point) DistSquared(q Point) Scalar {
	d := p.Sub(q)
	return d.Dot(d)
}

// Dist returns the exact distance between two points.
// It fails with ErrInexact when the root does not denest.
func (p Point) Dist(q Point) (Scalar, error) {
	return p.DistSquared(q).Sqrt()
}

// cmp orders points lexicographically by (x, y). This is the fixed rule
// used to order intersection results deterministically.
func (p Point) cmp(q Point) int {
	if c := p.X.Cmp(q.X); c != 0 {
		return c
	}
	return p.Y.Cmp(q.Y)
}

// Key returns the canonical content address of p.
func (p Point) Key() string {
	var b strings.Builder
	b.WriteString(p.X.Key())
	b.WriteByte(',')
	b.WriteString(p.Y.Key())
	return b.String()
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return "(" + p.X.String() + ", " + p.Y.String() + ")"
}
