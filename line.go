package euclid

import "strings"

// Line is an infinite straight line in canonical form A·x + B·y + C = 0.
// The coefficients are normalized so that the leading nonzero coefficient
// among (A, B) is exactly 1; two geometrically identical lines therefore
// compare equal no matter which points defined them.
//
// Lines are immutable value objects.
type Line struct {
	A, B, C Scalar
}

// newLine returns the canonical line through p1 and p2.
// It fails with ErrDegenerateConstruction when the points coincide.
func newLine(p1, p2 Point) (Line, error) {
	if p1.Equal(p2) {
		return Line{}, ErrDegenerateConstruction
	}
	a := p1.Y.Sub(p2.Y)
	b := p2.X.Sub(p1.X)
	c := p1.X.Mul(p2.Y).Sub(p2.X.Mul(p1.Y))
	return lineFromCoeffs(a, b, c)
}

// lineFromCoeffs normalizes A·x + B·y + C = 0. It fails with
// ErrDegenerateConstruction when A and B are both zero.
func lineFromCoeffs(a, b, c Scalar) (Line, error) {
	lead := a
	if a.IsZero() {
		lead = b
	}
	if lead.IsZero() {
		return Line{}, ErrDegenerateConstruction
	}
	inv, err := lead.Inv()
	if err != nil {
		return Line{}, err
	}
	return Line{A: a.Mul(inv), B: b.Mul(inv), C: c.Mul(inv)}, nil
}

// Equal reports whether l and m are the same line.
func (l Line) Equal(m Line) bool {
	return l.A.Equal(m.A) && l.B.Equal(m.B) && l.C.Equal(m.C)
}

// Eval returns A·x + B·y + C for the point p; zero iff p lies on l.
func (l Line) Eval(p Point) Scalar {
	return l.A.Mul(p.X).Add(l.B.Mul(p.Y)).Add(l.C)
}

// Contains reports whether p lies on l.
func (l Line) Contains(p Point) bool {
	return l.Eval(p).IsZero()
}

// twoPoints returns two distinct reference points on l, derived from the
// canonical coefficients so they are stable across calls.
func (l Line) twoPoints() (Point, Point) {
	if !l.B.IsZero() {
		// x = 0 and x = 1.
		invB, _ := l.B.Inv()
		y0 := l.C.Neg().Mul(invB)
		y1 := l.C.Add(l.A).Neg().Mul(invB)
		return Pt(Scalar{}, y0), Pt(NewInt(1), y1)
	}
	// Vertical line: A is 1 after normalization, x = −C.
	x := l.C.Neg()
	return Pt(x, Scalar{}), Pt(x, NewInt(1))
}

// Key returns the canonical content address of l.
func (l Line) Key() string {
	var b strings.Builder
	b.WriteString(l.A.Key())
	b.WriteByte(';')
	b.WriteString(l.B.Key())
	b.WriteByte(';')
	b.WriteString(l.C.Key())
	return b.String()
}

// String renders l as "A·x + B·y + C = 0".
func (l Line) String() string {
	return l.A.String() + "·x + " + l.B.String() + "·y + " + l.C.String() + " = 0"
}
