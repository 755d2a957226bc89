package euclid

import "errors"

// Sentinel errors returned by constructions and number operations.
// Callers match them with errors.Is; wrapped errors carry the inputs
// that triggered the failure.
var (
	// ErrDegenerateConstruction is returned when the defining points of a
	// line or circle coincide.
	ErrDegenerateConstruction = errors.New("euclid: degenerate construction")

	// ErrNoIntersection is returned when two objects do not meet.
	// Non-intersection is a property of the inputs, never transient.
	ErrNoIntersection = errors.New("euclid: objects do not intersect")

	// ErrCoincidentLines is returned when two lines are geometrically
	// identical and therefore have infinitely many common points.
	ErrCoincidentLines = errors.New("euclid: lines are coincident")

	// ErrCoincidentCircles is the circle analogue of ErrCoincidentLines.
	ErrCoincidentCircles = errors.New("euclid: circles are coincident")

	// ErrDivisionByZero is returned before any construction is attempted
	// when a divisor or modulus denotes zero.
	ErrDivisionByZero = errors.New("euclid: division by zero")

	// ErrNotANumber is returned when a point off the number line, or with
	// a non-integral coordinate, is used where an integer is required.
	ErrNotANumber = errors.New("euclid: point does not denote an integer")

	// ErrInexact is returned when a value cannot be represented exactly
	// in the scalar field (for example a square root that does not
	// denest). The library never falls back to an approximation.
	ErrInexact = errors.New("euclid: value not exactly representable")

	// ErrNegativeSqrt is returned for square roots of negative values.
	ErrNegativeSqrt = errors.New("euclid: square root of negative value")

	// ErrNoInverse is returned by ModInverse when the operands are not
	// coprime.
	ErrNoInverse = errors.New("euclid: no modular inverse")

	// ErrMismatchedPlanes is returned when the operands of a binary
	// operation belong to different planes.
	ErrMismatchedPlanes = errors.New("euclid: operands belong to different planes")
)
