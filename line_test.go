package euclid

import "testing"

func TestLineCanonicalForm(t *testing.T) {
	// The same geometric line must normalize identically no matter
	// which pair of its points defined it.
	l1, err := newLine(IntPt(0, 0), IntPt(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	l2, err := newLine(IntPt(5, 5), IntPt(-3, -3))
	if err != nil {
		t.Fatal(err)
	}
	if !l1.Equal(l2) {
		t.Errorf("lines through (0,0)-(2,2) and (5,5)-(-3,-3) differ: %s vs %s", l1, l2)
	}
	if l1.Key() != l2.Key() {
		t.Errorf("keys differ for the same line: %q vs %q", l1.Key(), l2.Key())
	}

	// Reversed point order gives the same canonical coefficients.
	l3, err := newLine(IntPt(2, 2), IntPt(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !l1.Equal(l3) {
		t.Errorf("point order changes canonical form: %s vs %s", l1, l3)
	}
}

func TestLineDegenerate(t *testing.T) {
	if _, err := newLine(IntPt(1, 1), IntPt(1, 1)); err != ErrDegenerateConstruction {
		t.Errorf("coincident points err = %v, want ErrDegenerateConstruction", err)
	}
}

func TestLineContains(t *testing.T) {
	l, err := newLine(IntPt(0, 1), IntPt(1, 3)) // y = 2x + 1
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"first defining point", IntPt(0, 1), true},
		{"second defining point", IntPt(1, 3), true},
		{"another point on line", IntPt(-1, -1), true},
		{"off line", IntPt(0, 0), false},
		{"half step", Pt(NewRat(1, 2), NewInt(2)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestLineVertical(t *testing.T) {
	l, err := newLine(IntPt(3, -1), IntPt(3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if !l.A.Equal(NewInt(1)) || !l.B.IsZero() || !l.C.Equal(NewInt(-3)) {
		t.Errorf("vertical line not canonical: %s", l)
	}

	p1, p2 := l.twoPoints()
	if p1.Equal(p2) {
		t.Fatalf("twoPoints returned coincident points")
	}
	if !l.Contains(p1) || !l.Contains(p2) {
		t.Errorf("twoPoints off the line: %s, %s", p1, p2)
	}
}

func TestCircleEqual(t *testing.T) {
	c1, err := newCircle(IntPt(0, 0), IntPt(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	// Same circle, different boundary point.
	c2, err := newCircle(IntPt(0, 0), IntPt(3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if !c1.Equal(c2) {
		t.Errorf("circles with equal center and radius differ")
	}
	if c1.Key() != c2.Key() {
		t.Errorf("keys differ for the same circle: %q vs %q", c1.Key(), c2.Key())
	}

	c3, err := newCircle(IntPt(0, 0), IntPt(4, 0))
	if err != nil {
		t.Fatal(err)
	}
	if c1.Equal(c3) {
		t.Errorf("circles with different radii compare equal")
	}
}

func TestCircleDegenerate(t *testing.T) {
	if _, err := newCircle(IntPt(2, 2), IntPt(2, 2)); err != ErrDegenerateConstruction {
		t.Errorf("zero radius err = %v, want ErrDegenerateConstruction", err)
	}
}

func TestCircleContains(t *testing.T) {
	c, err := newCircle(IntPt(0, 0), IntPt(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !c.Contains(IntPt(3, 4)) {
		t.Errorf("(3,4) should lie on the circle of radius 5")
	}
	if c.Contains(IntPt(3, 3)) {
		t.Errorf("(3,3) should not lie on the circle of radius 5")
	}
	if !c.RadiusSquared().Equal(NewInt(25)) {
		t.Errorf("r² = %s, want 25", c.RadiusSquared())
	}
}
