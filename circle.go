package euclid

import "strings"

// Circle is a circle defined by its center and one point on its
// boundary. The radius is always derived from the two points, never
// stored, so exactness stays tied to the defining geometry.
//
// Circles are immutable value objects.
type Circle struct {
	Center, Boundary Point
}

// newCircle returns the circle centered at center through boundary.
// It fails with ErrDegenerateConstruction when the points coincide.
func newCircle(center, boundary Point) (Circle, error) {
	if center.Equal(boundary) {
		return Circle{}, ErrDegenerateConstruction
	}
	return Circle{Center: center, Boundary: boundary}, nil
}

// RadiusSquared returns the exact squared radius.
func (c Circle) RadiusSquared() Scalar {
	return c.Center.DistSquared(c.Boundary)
}

// Contains reports whether p lies on the boundary of c.
func (c Circle) Contains(p Point) bool {
	return c.Center.DistSquared(p).Equal(c.RadiusSquared())
}

// Equal reports whether c and d are the same circle: same center and
// same radius, regardless of which boundary point defined them.
func (c Circle) Equal(d Circle) bool {
	return c.Center.Equal(d.Center) && c.RadiusSquared().Equal(d.RadiusSquared())
}

// Key returns the canonical content address of c: center plus squared
// radius, so circles defined by different boundary points on the same
// circle share an address.
func (c Circle) Key() string {
	var b strings.Builder
	b.WriteString(c.Center.Key())
	b.WriteByte('|')
	b.WriteString(c.RadiusSquared().Key())
	return b.String()
}

// String renders c as "circle(center, r²)".
func (c Circle) String() string {
	return "circle(" + c.Center.String() + ", r²=" + c.RadiusSquared().String() + ")"
}
