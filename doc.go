// Package euclid computes integer arithmetic by compass-and-straightedge
// construction.
//
// # Overview
//
// euclid represents integers as points on the x-axis of a Euclidean
// plane and implements arithmetic with only the five classical
// construction tools: the line through two points, the circle with a
// given center through a given point, and the three intersection
// operations. Only two coordinates are ever injected directly, the
// origin (0, 0) and the unit (1, 0); every other figure is derived by
// construction. All coordinates are exact symbolic values, so results
// are never approximate.
//
// # Quick Start
//
//	import "github.com/gogeom/euclid"
//
//	pl := euclid.NewPlane()
//
//	a, _ := pl.Int(17)
//	b, _ := pl.Int(25)
//	sum, _ := a.Add(b)
//
//	n, _ := sum.Int64() // 42
//
// # Architecture
//
// The library is organized into:
//   - Scalars: an exact field of rationals extended by square roots
//   - Figures: Point, Line, Circle as immutable value types
//   - Kernel: the five construction operations on a Plane
//   - Compilers: arithmetic, bitwise and number-theoretic operations
//     lowered to construction sequences
//   - cache, trace: memoization and construction recording
//
// # Planes and Memoization
//
// Every construction runs on a Plane, which memoizes by canonical
// content key: constructing the same figure twice returns the cached
// result and performs no geometry. Values from different planes must
// not be mixed; operations return ErrMismatchedPlanes if they are.
//
// # Exactness
//
// Coordinates live in the field of rationals extended by nested square
// roots, held in canonical form. Comparisons and signs are decided
// exactly, never by floating-point approximation. Operations that
// would leave the representable field return ErrInexact.
package euclid

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
