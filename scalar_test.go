package euclid

import (
	"math"
	"testing"
)

func TestScalarRationalArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Scalar
		want Scalar
	}{
		{"add integers", NewInt(17).Add(NewInt(25)), NewInt(42)},
		{"add inverse", NewInt(7).Add(NewInt(-7)), NewInt(0)},
		{"sub", NewInt(3).Sub(NewInt(5)), NewInt(-2)},
		{"mul", NewInt(6).Mul(NewInt(7)), NewInt(42)},
		{"mul by zero", NewInt(123).Mul(NewInt(0)), NewInt(0)},
		{"neg", NewInt(9).Neg(), NewInt(-9)},
		{"halves add to one", NewRat(1, 2).Add(NewRat(1, 2)), NewInt(1)},
		{"rat mul", NewRat(2, 3).Mul(NewRat(3, 2)), NewInt(1)},
		{"rat reduce", NewRat(4, 8), NewRat(1, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestScalarRadicalCanonicalForm(t *testing.T) {
	sqrt2, err := NewInt(2).Sqrt()
	if err != nil {
		t.Fatalf("Sqrt(2): %v", err)
	}
	sqrt8, err := NewInt(8).Sqrt()
	if err != nil {
		t.Fatalf("Sqrt(8): %v", err)
	}

	// √8 = 2√2, so their keys must agree up to the coefficient.
	double := sqrt2.Add(sqrt2)
	if !double.Equal(sqrt8) {
		t.Errorf("√2+√2 = %s, want √8 = %s", double, sqrt8)
	}

	// √2 · √2 collapses back to a rational.
	sq := sqrt2.Mul(sqrt2)
	if !sq.Equal(NewInt(2)) {
		t.Errorf("√2·√2 = %s, want 2", sq)
	}
	if !sq.IsRational() {
		t.Errorf("√2·√2 not recognized as rational")
	}

	// √2 − √2 cancels exactly.
	if !sqrt2.Sub(sqrt2).IsZero() {
		t.Errorf("√2−√2 = %s, want 0", sqrt2.Sub(sqrt2))
	}
}

func TestScalarPerfectSquareReduction(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want Scalar
	}{
		{"sqrt 0", 0, NewInt(0)},
		{"sqrt 1", 1, NewInt(1)},
		{"sqrt 4", 4, NewInt(2)},
		{"sqrt 9", 9, NewInt(3)},
		{"sqrt 144", 144, NewInt(12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewInt(tt.n).Sqrt()
			if err != nil {
				t.Fatalf("Sqrt(%d): %v", tt.n, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Sqrt(%d) = %s, want %s", tt.n, got, tt.want)
			}
		})
	}
}

func TestScalarSqrtErrors(t *testing.T) {
	if _, err := NewInt(-4).Sqrt(); err != ErrNegativeSqrt {
		t.Errorf("Sqrt(-4) err = %v, want ErrNegativeSqrt", err)
	}
}

func TestScalarSqrtRational(t *testing.T) {
	// √(9/4) = 3/2
	got, err := NewRat(9, 4).Sqrt()
	if err != nil {
		t.Fatalf("Sqrt(9/4): %v", err)
	}
	if !got.Equal(NewRat(3, 2)) {
		t.Errorf("Sqrt(9/4) = %s, want 3/2", got)
	}

	// √(1/2) = √2/2
	got, err = NewRat(1, 2).Sqrt()
	if err != nil {
		t.Fatalf("Sqrt(1/2): %v", err)
	}
	if !got.Square().Equal(NewRat(1, 2)) {
		t.Errorf("Sqrt(1/2)² = %s, want 1/2", got.Square())
	}
}

func TestScalarSqrtDenesting(t *testing.T) {
	// (1+√2)² = 3+2√2, so √(3+2√2) must denest to 1+√2.
	sqrt2, err := NewInt(2).Sqrt()
	if err != nil {
		t.Fatal(err)
	}
	base := NewInt(1).Add(sqrt2)
	root, err := base.Square().Sqrt()
	if err != nil {
		t.Fatalf("Sqrt((1+√2)²): %v", err)
	}
	if !root.Equal(base) {
		t.Errorf("√((1+√2)²) = %s, want %s", root, base)
	}

	// The negative branch: (1−√2)² = 3−2√2 and √ must pick the
	// non-negative root √2−1.
	neg := NewInt(1).Sub(sqrt2)
	root, err = neg.Square().Sqrt()
	if err != nil {
		t.Fatalf("Sqrt((1−√2)²): %v", err)
	}
	if !root.Equal(neg.Neg()) {
		t.Errorf("√((1−√2)²) = %s, want %s", root, neg.Neg())
	}
}

func TestScalarSign(t *testing.T) {
	sqrt2, _ := NewInt(2).Sqrt()
	sqrt3, _ := NewInt(3).Sqrt()
	tests := []struct {
		name string
		s    Scalar
		want int
	}{
		{"zero", NewInt(0), 0},
		{"positive", NewInt(5), 1},
		{"negative", NewInt(-5), -1},
		{"sqrt2", sqrt2, 1},
		{"neg sqrt2", sqrt2.Neg(), -1},
		// √2 ≈ 1.414 so these straddle zero without a rational witness
		{"sqrt2 - 1.4", sqrt2.Sub(NewRat(7, 5)), 1},
		{"sqrt2 - 1.5", sqrt2.Sub(NewRat(3, 2)), -1},
		// √3 − √2 > 0 needs the recursive comparison
		{"sqrt3 - sqrt2", sqrt3.Sub(sqrt2), 1},
		{"sqrt2 - sqrt3", sqrt2.Sub(sqrt3), -1},
		// 1 + √2 − √3 ≈ 0.68
		{"mixed three terms", NewInt(1).Add(sqrt2).Sub(sqrt3), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Sign(); got != tt.want {
				t.Errorf("Sign(%s) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestScalarInv(t *testing.T) {
	sqrt2, _ := NewInt(2).Sqrt()
	tests := []struct {
		name string
		s    Scalar
	}{
		{"integer", NewInt(7)},
		{"rational", NewRat(-3, 5)},
		{"radical", sqrt2},
		{"mixed", NewInt(1).Add(sqrt2)},
		{"scaled radical", NewRat(2, 3).Mul(sqrt2).Sub(NewInt(4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.s.Inv()
			if err != nil {
				t.Fatalf("Inv(%s): %v", tt.s, err)
			}
			if prod := tt.s.Mul(inv); !prod.Equal(NewInt(1)) {
				t.Errorf("%s · %s = %s, want 1", tt.s, inv, prod)
			}
		})
	}

	if _, err := NewInt(0).Inv(); err != ErrDivisionByZero {
		t.Errorf("Inv(0) err = %v, want ErrDivisionByZero", err)
	}
}

func TestScalarDiv(t *testing.T) {
	got, err := NewInt(10).Div(NewInt(4))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(NewRat(5, 2)) {
		t.Errorf("10/4 = %s, want 5/2", got)
	}
}

func TestScalarCmp(t *testing.T) {
	sqrt2, _ := NewInt(2).Sqrt()
	if NewInt(1).Cmp(sqrt2) != -1 {
		t.Errorf("1 < √2 expected")
	}
	if sqrt2.Cmp(NewRat(3, 2)) != -1 {
		t.Errorf("√2 < 3/2 expected")
	}
	if sqrt2.Cmp(sqrt2) != 0 {
		t.Errorf("√2 == √2 expected")
	}
}

func TestScalarInt64(t *testing.T) {
	tests := []struct {
		name   string
		s      Scalar
		want   int64
		wantOK bool
	}{
		{"zero", NewInt(0), 0, true},
		{"positive", NewInt(42), 42, true},
		{"negative", NewInt(-7), -7, true},
		{"half", NewRat(1, 2), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.s.Int64()
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Int64(%s) = %d, %v; want %d, %v", tt.s, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	sqrt2, _ := NewInt(2).Sqrt()
	if _, ok := sqrt2.Int64(); ok {
		t.Errorf("Int64(√2) succeeded, want failure")
	}
}

func TestScalarKeyCanonical(t *testing.T) {
	sqrt2, _ := NewInt(2).Sqrt()
	sqrt8, _ := NewInt(8).Sqrt()

	// Equal values must produce equal keys regardless of how they
	// were built.
	a := sqrt8.Add(NewInt(3))
	b := NewInt(1).Add(sqrt2).Add(sqrt2).Add(NewInt(2))
	if a.Key() != b.Key() {
		t.Errorf("keys differ for equal values: %q vs %q", a.Key(), b.Key())
	}
	if NewInt(0).Key() != NewInt(5).Sub(NewInt(5)).Key() {
		t.Errorf("zero keys differ")
	}
}

func TestScalarFloat64(t *testing.T) {
	sqrt2, _ := NewInt(2).Sqrt()
	got := sqrt2.Float64()
	if math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("Float64(√2) = %g, want ≈ %g", got, math.Sqrt2)
	}
}

func TestScalarLargeSquareFactor(t *testing.T) {
	sqrt2, err := NewInt(2).Sqrt()
	if err != nil {
		t.Fatalf("Sqrt(2): %v", err)
	}

	// 5618 = 2·53², so √5618 = 53√2.
	a, err := NewInt(5618).Sqrt()
	if err != nil {
		t.Fatalf("Sqrt(5618): %v", err)
	}
	b := sqrt2.Mul(NewInt(53))
	if !a.Equal(b) {
		t.Errorf("√5618 = %s, want %s", a, b)
	}
	if a.Cmp(b) != 0 {
		t.Errorf("Cmp(√5618, 53√2) = %d, want 0", a.Cmp(b))
	}
	if a.Key() != b.Key() {
		t.Errorf("keys differ for equal values: %q vs %q", a.Key(), b.Key())
	}

	// 33603602 = 2·4099²; 4099² escapes radicand reduction, so the
	// representations stay structurally distinct but must still
	// compare equal.
	c, err := NewInt(33603602).Sqrt()
	if err != nil {
		t.Fatalf("Sqrt(33603602): %v", err)
	}
	d := sqrt2.Mul(NewInt(4099))
	if !c.Equal(d) {
		t.Errorf("√33603602 = %s, want %s", c, d)
	}
	if c.Cmp(d) != 0 {
		t.Errorf("Cmp(√33603602, 4099√2) = %d, want 0", c.Cmp(d))
	}
	if !c.Sub(d).IsZero() {
		t.Errorf("√33603602 − 4099√2 = %s, want 0", c.Sub(d))
	}
}

func isOddPrime(n int64) bool {
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestScalarSignManyRadicals(t *testing.T) {
	// Each prime radicand is its own radical class, so the sum grows
	// one term per addend.
	s := NewInt(0)
	count := 0
	for n := int64(2); count < 70; n++ {
		if !isOddPrime(n) {
			continue
		}
		r, err := NewInt(n).Sqrt()
		if err != nil {
			t.Fatalf("Sqrt(%d): %v", n, err)
		}
		s = s.Add(r)
		count++
	}

	if got := s.Sign(); got != 1 {
		t.Errorf("Sign(sum of %d radicals) = %d, want 1", count, got)
	}
	if got := s.Neg().Sign(); got != -1 {
		t.Errorf("Sign(−sum) = %d, want -1", got)
	}
	if !s.Sub(s).IsZero() {
		t.Errorf("sum − sum = %s, want 0", s.Sub(s))
	}
}
