package euclid

import (
	"math"
	"math/big"
	"strings"
)

// Scalar is an exact real value: a rational number plus a finite sum of
// rational multiples of square roots of positive integers,
//
//	q0 + q1·√d1 + q2·√d2 + ...
//
// Scalars are immutable and closed under the operations that arise in
// compass-and-straightedge constructions: addition, subtraction,
// multiplication, division, and the square roots the constructions
// produce. There is no floating-point anywhere in a Scalar; equality
// means equality of the denoted real numbers.
//
// The zero value is the Scalar 0 and is ready to use.
type Scalar struct {
	// terms is sorted by ascending radicand and kept in canonical form:
	// no zero coefficients, and no two radicands whose ratio is the
	// square of a rational. Radicand 1 holds the rational part.
	terms []radTerm
}

// radTerm is a single coef·√rad summand.
type radTerm struct {
	coef *big.Rat
	rad  *big.Int
}

var (
	bigIntOne = big.NewInt(1)

	// smallPrimes is the fast first pass of reduceRadicand; a bounded
	// trial loop handles larger square factors. Equivalent radicands
	// that slip past both are still merged by the square-ratio check
	// in addTerm, and Equal settles them by exact subtraction.
	smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}
)

// NewInt returns the Scalar denoting the integer n.
func NewInt(n int64) Scalar {
	return NewFromRat(new(big.Rat).SetInt64(n))
}

// NewRat returns the Scalar denoting num/den. It panics if den is zero,
// matching the behavior of big.NewRat.
func NewRat(num, den int64) Scalar {
	return NewFromRat(big.NewRat(num, den))
}

// NewFromRat returns the Scalar denoting the rational r.
// The value is copied; later changes to r do not affect the Scalar.
func NewFromRat(r *big.Rat) Scalar {
	if r.Sign() == 0 {
		return Scalar{}
	}
	return Scalar{terms: []radTerm{{
		coef: new(big.Rat).Set(r),
		rad:  bigIntOne,
	}}}
}

// IsZero reports whether s denotes zero.
func (s Scalar) IsZero() bool { return len(s.terms) == 0 }

// IsRational reports whether s denotes a rational number.
func (s Scalar) IsRational() bool {
	return len(s.terms) == 0 || (len(s.terms) == 1 && s.terms[0].rad.Cmp(bigIntOne) == 0)
}

// Rat returns the value of s as a big.Rat if s is rational.
func (s Scalar) Rat() (*big.Rat, bool) {
	if !s.IsRational() {
		return nil, false
	}
	if len(s.terms) == 0 {
		return new(big.Rat), true
	}
	return new(big.Rat).Set(s.terms[0].coef), true
}

// IsInteger reports whether s denotes an integer.
func (s Scalar) IsInteger() bool {
	r, ok := s.Rat()
	return ok && r.IsInt()
}

// Int64 returns the value of s as an int64.
// The second result is false if s is not an integer or overflows int64.
func (s Scalar) Int64() (int64, bool) {
	r, ok := s.Rat()
	if !ok || !r.IsInt() {
		return 0, false
	}
	n := r.Num()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}

// BigInt returns the value of s as a big.Int if s denotes an integer.
func (s Scalar) BigInt() (*big.Int, bool) {
	r, ok := s.Rat()
	if !ok || !r.IsInt() {
		return nil, false
	}
	return new(big.Int).Set(r.Num()), true
}

// Add returns s + t.
func (s Scalar) Add(t Scalar) Scalar {
	terms := make([]radTerm, 0, len(s.terms)+len(t.terms))
	terms = append(terms, s.terms...)
	for _, tm := range t.terms {
		terms = addTerm(terms, tm.coef, tm.rad)
	}
	return Scalar{terms: terms}
}

// Sub returns s − t.
func (s Scalar) Sub(t Scalar) Scalar { return s.Add(t.Neg()) }

// Neg returns −s.
func (s Scalar) Neg() Scalar {
	if len(s.terms) == 0 {
		return s
	}
	terms := make([]radTerm, len(s.terms))
	for i, tm := range s.terms {
		terms[i] = radTerm{coef: new(big.Rat).Neg(tm.coef), rad: tm.rad}
	}
	return Scalar{terms: terms}
}

// Mul returns s × t.
func (s Scalar) Mul(t Scalar) Scalar {
	var terms []radTerm
	for _, a := range s.terms {
		for _, b := range t.terms {
			coef := new(big.Rat).Mul(a.coef, b.coef)
			rad := new(big.Int).Mul(a.rad, b.rad)
			terms = addTerm(terms, coef, rad)
		}
	}
	return Scalar{terms: terms}
}

// Square returns s × s.
func (s Scalar) Square() Scalar { return s.Mul(s) }

// maxRationalizeSteps bounds the conjugation loop in Inv. Values built by
// the construction kernel carry very few radical classes and rationalize
// in one or two steps; the cap turns a pathological input into ErrInexact
// instead of an unbounded loop.
const maxRationalizeSteps = 64

// Inv returns 1/s. It returns ErrDivisionByZero if s is zero and
// ErrInexact if the denominator cannot be rationalized.
func (s Scalar) Inv() (Scalar, error) {
	if s.IsZero() {
		return Scalar{}, ErrDivisionByZero
	}
	num := NewInt(1)
	den := s
	for i := 0; !den.IsRational(); i++ {
		if i >= maxRationalizeSteps {
			return Scalar{}, ErrInexact
		}
		// Conjugate with respect to the largest radical class: flipping
		// the sign of that term cancels it from den × conj exactly.
		conj := den.conjugate(len(den.terms) - 1)
		num = num.Mul(conj)
		den = den.Mul(conj)
	}
	r, _ := den.Rat()
	if r.Sign() == 0 {
		return Scalar{}, ErrDivisionByZero
	}
	return num.Mul(NewFromRat(r.Inv(r))), nil
}

// Div returns s / t. It returns ErrDivisionByZero if t is zero.
func (s Scalar) Div(t Scalar) (Scalar, error) {
	inv, err := t.Inv()
	if err != nil {
		return Scalar{}, err
	}
	return s.Mul(inv), nil
}

// conjugate returns s with the sign of terms[i] flipped.
func (s Scalar) conjugate(i int) Scalar {
	terms := make([]radTerm, len(s.terms))
	copy(terms, s.terms)
	terms[i] = radTerm{coef: new(big.Rat).Neg(terms[i].coef), rad: terms[i].rad}
	return Scalar{terms: terms}
}

// maxSignDepth bounds the nested squaring comparisons in Sign. Peeling
// terms off a sum is charged nothing; only the A²-versus-b²d step
// consumes depth, since squaring can grow the term count.
const maxSignDepth = 64

// Sign returns −1, 0, or +1 according to the sign of the denoted real
// number. The computation is exact. Sums of arbitrarily many radicals
// are decided; Sign panics only when a sign decision needs more than
// maxSignDepth nested squaring comparisons.
func (s Scalar) Sign() int {
	sign, ok := signDepth(s, maxSignDepth)
	if !ok {
		panic("euclid: Scalar sign undecidable within supported squaring depth")
	}
	return sign
}

func signDepth(s Scalar, depth int) (int, bool) {
	switch len(s.terms) {
	case 0:
		return 0, true
	case 1:
		return s.terms[0].coef.Sign(), true
	}
	// Write s = A + b·√d for the largest radicand d; canonical form
	// guarantees b is the coefficient of a single term.
	last := s.terms[len(s.terms)-1]
	a := Scalar{terms: s.terms[:len(s.terms)-1]}
	sa, ok := signDepth(a, depth)
	if !ok {
		return 0, false
	}
	sb := last.coef.Sign()
	if sa == 0 || sa == sb {
		return sb, true
	}
	// Opposite signs: compare A² against b²·d.
	if depth <= 0 {
		return 0, false
	}
	b2d := NewFromRat(new(big.Rat).Mul(last.coef, last.coef)).
		Mul(NewFromRat(new(big.Rat).SetInt(last.rad)))
	st, ok := signDepth(a.Square().Sub(b2d), depth-1)
	if !ok {
		return 0, false
	}
	return sa * st, true
}

// Cmp compares s and t exactly, returning −1, 0, or +1.
func (s Scalar) Cmp(t Scalar) int { return s.Sub(t).Sign() }

// Equal reports whether s and t denote the same real number,
// independent of how either value was built. The structural comparison
// covers canonical representations; radicands whose square content
// escaped reduction are settled by exact subtraction, where addTerm's
// square-ratio merge cancels equivalent radical classes.
func (s Scalar) Equal(t Scalar) bool {
	if len(s.terms) != len(t.terms) {
		return false
	}
	for i := range s.terms {
		if s.terms[i].rad.Cmp(t.terms[i].rad) != 0 ||
			s.terms[i].coef.Cmp(t.terms[i].coef) != 0 {
			return s.Sub(t).IsZero()
		}
	}
	return true
}

// Abs returns |s|.
func (s Scalar) Abs() Scalar {
	if s.Sign() < 0 {
		return s.Neg()
	}
	return s
}

// Float64 returns a floating-point approximation of s.
// It is intended for display and viewers only; nothing in the library
// computes with it.
func (s Scalar) Float64() float64 {
	var v float64
	for _, tm := range s.terms {
		c, _ := tm.coef.Float64()
		r, _ := new(big.Float).SetInt(tm.rad).Float64()
		v += c * math.Sqrt(r)
	}
	return v
}

// Key returns the canonical string form of s, used as a content address
// for memoization. Equal scalars produce equal keys whenever their
// radicands' square content is within reduceRadicand's trial bound; a
// square factor of a prime beyond the bound can cost a memo hit, never
// a wrong answer, since Equal and Cmp stay exact.
func (s Scalar) Key() string {
	if len(s.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, tm := range s.terms {
		if i > 0 {
			b.WriteByte('+')
		}
		b.WriteString(tm.coef.RatString())
		if tm.rad.Cmp(bigIntOne) != 0 {
			b.WriteByte('r')
			b.WriteString(tm.rad.String())
		}
	}
	return b.String()
}

// String renders s for humans, e.g. "3/2 + 5√3".
func (s Scalar) String() string {
	if len(s.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, tm := range s.terms {
		if i > 0 {
			if tm.coef.Sign() >= 0 {
				b.WriteString(" + ")
			} else {
				b.WriteString(" - ")
			}
		} else if tm.coef.Sign() < 0 {
			b.WriteString("-")
		}
		c := new(big.Rat).Abs(tm.coef)
		if tm.rad.Cmp(bigIntOne) == 0 {
			b.WriteString(c.RatString())
			continue
		}
		if c.Cmp(big.NewRat(1, 1)) != 0 {
			b.WriteString(c.RatString())
		}
		b.WriteString("√")
		b.WriteString(tm.rad.String())
	}
	return b.String()
}

// addTerm inserts coef·√rad into terms, keeping canonical form: the
// radicand is reduced, square-ratio-equivalent radicands are merged, and
// zero coefficients are dropped. The slice is ordered by radicand.
func addTerm(terms []radTerm, coef *big.Rat, rad *big.Int) []radTerm {
	if coef.Sign() == 0 {
		return terms
	}
	mult, red := reduceRadicand(rad)
	c := new(big.Rat).Mul(coef, new(big.Rat).SetInt(mult))

	for i, tm := range terms {
		if tm.rad.Cmp(red) == 0 {
			return mergeAt(terms, i, c)
		}
		// √red is a rational multiple of √tm.rad exactly when the
		// product of the radicands is a perfect square.
		p := new(big.Int).Mul(tm.rad, red)
		sq := new(big.Int).Sqrt(p)
		if new(big.Int).Mul(sq, sq).Cmp(p) == 0 {
			// √red = (sq / tm.rad)·√tm.rad
			factor := new(big.Rat).SetFrac(sq, tm.rad)
			return mergeAt(terms, i, c.Mul(c, factor))
		}
	}

	// New radical class; insert in radicand order.
	at := len(terms)
	for i, tm := range terms {
		if red.Cmp(tm.rad) < 0 {
			at = i
			break
		}
	}
	terms = append(terms, radTerm{})
	copy(terms[at+1:], terms[at:])
	terms[at] = radTerm{coef: c, rad: red}
	return terms
}

// mergeAt adds c to the coefficient of terms[i], dropping the term if
// the sum cancels.
func mergeAt(terms []radTerm, i int, c *big.Rat) []radTerm {
	sum := new(big.Rat).Add(terms[i].coef, c)
	if sum.Sign() == 0 {
		out := make([]radTerm, 0, len(terms)-1)
		out = append(out, terms[:i]...)
		return append(out, terms[i+1:]...)
	}
	out := make([]radTerm, len(terms))
	copy(out, terms)
	out[i] = radTerm{coef: sum, rad: terms[i].rad}
	return out
}

// squareTrialLimit bounds the trial divisors used to pull square
// factors out of a radicand after the small-prime pass. Full square
// content extraction would require factoring the radicand.
const squareTrialLimit = 1 << 12

// reduceRadicand extracts the square content of r, returning (m, d) with
// √r = m·√d. Perfect squares reduce fully; other radicands shed squares
// of all trial divisors up to squareTrialLimit.
func reduceRadicand(r *big.Int) (*big.Int, *big.Int) {
	if r.Cmp(bigIntOne) == 0 {
		return bigIntOne, bigIntOne
	}
	sq := new(big.Int).Sqrt(r)
	if new(big.Int).Mul(sq, sq).Cmp(r) == 0 {
		return sq, bigIntOne
	}
	mult := big.NewInt(1)
	rad := new(big.Int).Set(r)
	for _, p := range smallPrimes {
		pp := big.NewInt(p * p)
		var q, rem big.Int
		for {
			q.QuoRem(rad, pp, &rem)
			if rem.Sign() != 0 {
				break
			}
			rad.Set(&q)
			mult.Mul(mult, big.NewInt(p))
		}
	}
	// Square factors of larger primes, e.g. 5618 = 2·53².
	var pp big.Int
	for c := int64(49); c <= squareTrialLimit; c += 2 {
		pp.SetInt64(c * c)
		if pp.Cmp(rad) > 0 {
			break
		}
		var q, rem big.Int
		for {
			q.QuoRem(rad, &pp, &rem)
			if rem.Sign() != 0 {
				break
			}
			rad.Set(&q)
			mult.Mul(mult, big.NewInt(c))
		}
	}

	// The stripped radicand may have become a perfect square.
	sq = new(big.Int).Sqrt(rad)
	if new(big.Int).Mul(sq, sq).Cmp(rad) == 0 {
		return mult.Mul(mult, sq), bigIntOne
	}
	return mult, rad
}
