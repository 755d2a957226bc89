package trace

// Kind identifies the figure a command constructs.
type Kind uint8

const (
	// KindPoint marks the construction of a point.
	KindPoint Kind = iota
	// KindLine marks the construction of a line.
	KindLine
	// KindCircle marks the construction of a circle.
	KindCircle
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// InvalidRef marks an unresolvable resource reference.
const InvalidRef = ^uint32(0)

// PointRef is a reference to a pooled point.
type PointRef uint32

// LineRef is a reference to a pooled line.
type LineRef uint32

// CircleRef is a reference to a pooled circle.
type CircleRef uint32

// IsValid reports whether the reference resolves to a pooled point.
func (r PointRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid reports whether the reference resolves to a pooled line.
func (r LineRef) IsValid() bool { return uint32(r) != InvalidRef }

// IsValid reports whether the reference resolves to a pooled circle.
func (r CircleRef) IsValid() bool { return uint32(r) != InvalidRef }

// Command is one step of a recorded construction. The concrete types
// are PointCommand, LineCommand and CircleCommand; each carries a
// reference into the recording's resource pool.
type Command interface {
	// Kind returns the figure kind this command constructs.
	Kind() Kind
}

// PointCommand records the construction of a point.
type PointCommand struct {
	Ref PointRef
}

// Kind returns KindPoint.
func (PointCommand) Kind() Kind { return KindPoint }

// LineCommand records the construction of a line.
type LineCommand struct {
	Ref LineRef
}

// Kind returns KindLine.
func (LineCommand) Kind() Kind { return KindLine }

// CircleCommand records the construction of a circle.
type CircleCommand struct {
	Ref CircleRef
}

// Kind returns KindCircle.
func (CircleCommand) Kind() Kind { return KindCircle }
