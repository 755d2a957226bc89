package trace

import "github.com/gogeom/euclid"

// ResourcePool stores the figures referenced by recording commands.
// Figures are interned by their canonical key, so recording the same
// point twice yields the same reference and a single pool entry.
//
// ResourcePool is not safe for concurrent use. If concurrent access is
// needed, external synchronization must be provided.
type ResourcePool struct {
	points  []euclid.Point
	lines   []euclid.Line
	circles []euclid.Circle

	pointIdx  map[string]PointRef
	lineIdx   map[string]LineRef
	circleIdx map[string]CircleRef
}

// NewResourcePool creates an empty resource pool with pre-allocated
// capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		points:    make([]euclid.Point, 0, 64),
		lines:     make([]euclid.Line, 0, 32),
		circles:   make([]euclid.Circle, 0, 32),
		pointIdx:  make(map[string]PointRef, 64),
		lineIdx:   make(map[string]LineRef, 32),
		circleIdx: make(map[string]CircleRef, 32),
	}
}

// AddPoint interns a point and returns its reference.
func (p *ResourcePool) AddPoint(pt euclid.Point) PointRef {
	key := pt.Key()
	if ref, ok := p.pointIdx[key]; ok {
		return ref
	}
	p.points = append(p.points, pt)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := PointRef(uint32(len(p.points) - 1))
	p.pointIdx[key] = ref
	return ref
}

// GetPoint returns the point for the given reference. The second
// result is false when the reference is out of range.
func (p *ResourcePool) GetPoint(ref PointRef) (euclid.Point, bool) {
	if int(ref) >= len(p.points) {
		return euclid.Point{}, false
	}
	return p.points[ref], true
}

// PointCount returns the number of distinct points in the pool.
func (p *ResourcePool) PointCount() int { return len(p.points) }

// AddLine interns a line and returns its reference.
func (p *ResourcePool) AddLine(l euclid.Line) LineRef {
	key := l.Key()
	if ref, ok := p.lineIdx[key]; ok {
		return ref
	}
	p.lines = append(p.lines, l)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := LineRef(uint32(len(p.lines) - 1))
	p.lineIdx[key] = ref
	return ref
}

// GetLine returns the line for the given reference. The second result
// is false when the reference is out of range.
func (p *ResourcePool) GetLine(ref LineRef) (euclid.Line, bool) {
	if int(ref) >= len(p.lines) {
		return euclid.Line{}, false
	}
	return p.lines[ref], true
}

// LineCount returns the number of distinct lines in the pool.
func (p *ResourcePool) LineCount() int { return len(p.lines) }

// AddCircle interns a circle and returns its reference.
func (p *ResourcePool) AddCircle(c euclid.Circle) CircleRef {
	key := c.Key()
	if ref, ok := p.circleIdx[key]; ok {
		return ref
	}
	p.circles = append(p.circles, c)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := CircleRef(uint32(len(p.circles) - 1))
	p.circleIdx[key] = ref
	return ref
}

// GetCircle returns the circle for the given reference. The second
// result is false when the reference is out of range.
func (p *ResourcePool) GetCircle(ref CircleRef) (euclid.Circle, bool) {
	if int(ref) >= len(p.circles) {
		return euclid.Circle{}, false
	}
	return p.circles[ref], true
}

// CircleCount returns the number of distinct circles in the pool.
func (p *ResourcePool) CircleCount() int { return len(p.circles) }

// Clear removes all figures from the pool. This does not release the
// underlying memory; use NewResourcePool for that.
func (p *ResourcePool) Clear() {
	p.points = p.points[:0]
	p.lines = p.lines[:0]
	p.circles = p.circles[:0]
	clear(p.pointIdx)
	clear(p.lineIdx)
	clear(p.circleIdx)
}
