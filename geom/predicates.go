package geom

import "math"

// IsPointStrictlyLeftOf is the orientation predicate the trapmap core's
// search DAG consumes at Y-nodes (X-nodes compare x-coordinates directly),
// and that its follow-segment walk uses to pick a neighbor. Thinking of the segment
// as directed from its lexicographically-left endpoint to its right
// endpoint, this reports whether p lies strictly on the left side of that
// directed line -- which, for the left-to-right segments this package
// deals in, is the same thing as "strictly above the segment". A
// signed-area (cross product) sign test, tolerant of floating point noise.
func IsPointStrictlyLeftOf(s Segment, p Point) bool {
	oriented := s.Oriented()
	cross := (oriented.End.X-oriented.Start.X)*(p.Y-oriented.Start.Y) -
		(oriented.End.Y-oriented.Start.Y)*(p.X-oriented.Start.X)
	return cross > Tolerance
}

// Slope returns (End.Y-Start.Y)/(End.X-Start.X). It is used only to
// disambiguate two segments that share a left endpoint, at a Y-node the
// search DAG is about to descend through.
func Slope(s Segment) float64 {
	oriented := s.Oriented()
	return (oriented.End.Y - oriented.Start.Y) / (oriented.End.X - oriented.Start.X)
}

// SolveForX returns the x-coordinate of the point on the segment's line at
// the given y. The
// caller must not call this on a horizontal segment, since a horizontal
// line doesn't have a unique x for a given y.
func SolveForX(s Segment, y float64) float64 {
	oriented := s.Oriented()
	dx := oriented.End.X - oriented.Start.X
	dy := oriented.End.Y - oriented.Start.Y
	if dy == 0 {
		return oriented.Start.X
	}
	t := (y - oriented.Start.Y) / dy
	return oriented.Start.X + t*dx
}

// Intersection returns the point where the segment's line crosses the
// vertical line x = x. Used by viz to find where a trapezoid wall meets a
// strip edge; the core computes its own y-at-x arithmetic where it needs it
// so that this function stays a rendering-only dependency.
func Intersection(s Segment, x float64) Point {
	oriented := s.Oriented()
	dx := oriented.End.X - oriented.Start.X
	if dx == 0 {
		return Point{X: x, Y: oriented.Start.Y}
	}
	t := (x - oriented.Start.X) / dx
	return Point{X: x, Y: oriented.Start.Y + t*(oriented.End.Y-oriented.Start.Y)}
}

// Equal reports whether two points are the same within Tolerance.
func Equal(a, b Point) bool {
	return floatEqual(a.X, b.X) && floatEqual(a.Y, b.Y)
}

// IsFinite reports whether a coordinate pair contains no NaN or Inf values.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
