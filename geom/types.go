// Package geom provides the small set of geometric value types and
// predicates that the trapmap core consumes. It knows nothing about
// trapezoids, search graphs, or arenas; it only answers questions about
// points and segments.
package geom

// Point is a pair of coordinates. Points compare by value, which lets the
// trapmap package deduplicate them by map key.
type Point struct {
	X, Y float64
}

// Segment is an ordered pair of points. Unlike Point, callers are not
// required to orient a Segment any particular way; predicates below work
// from Start/End directly, and the trapmap package is responsible for
// lexicographic ordering where the core's invariants require it.
type Segment struct {
	Start, End Point
}

// Tolerance bounds the imprecision we're willing to tolerate when comparing
// floats. Without it, nearly-horizontal or nearly-vertical segments would
// produce spurious general-position violations.
const Tolerance = 1e-9

func floatEqual(a, b float64) bool {
	d := a - b
	return d < Tolerance && d > -Tolerance
}

// IsHorizontal reports whether the segment's endpoints share a Y value.
func (s Segment) IsHorizontal() bool {
	return floatEqual(s.Start.Y, s.End.Y)
}

// Top returns whichever endpoint has the greater Y value, breaking ties by
// the greater X value so that no two distinct points in a well-formed input
// are ever considered equal in this ordering.
func (s Segment) Top() Point {
	if s.Start.Y > s.End.Y || (floatEqual(s.Start.Y, s.End.Y) && s.Start.X > s.End.X) {
		return s.Start
	}
	return s.End
}

// Bottom returns the endpoint Top does not.
func (s Segment) Bottom() Point {
	top := s.Top()
	if top == s.Start {
		return s.End
	}
	return s.Start
}

// Left returns whichever endpoint is lexicographically first: smaller X,
// then smaller Y to break ties.
func (s Segment) Left() Point {
	if s.Start.X < s.End.X || (floatEqual(s.Start.X, s.End.X) && s.Start.Y < s.End.Y) {
		return s.Start
	}
	return s.End
}

// Right returns the endpoint Left does not.
func (s Segment) Right() Point {
	left := s.Left()
	if left == s.Start {
		return s.End
	}
	return s.Start
}

// Oriented returns the segment with Start/End swapped so that Start is the
// lexicographically-left endpoint, matching the ordering the trapmap core's
// indexed segments use.
func (s Segment) Oriented() Segment {
	left, right := s.Left(), s.Right()
	return Segment{Start: left, End: right}
}
