package trapmap

import "github.com/fsanna/trapmap/geom"

// Map is the trapezoidal decomposition: three append-only arenas (points,
// indexed segments, trapezoids) plus the dedup tables that keep AddPoint
// and AddSegment idempotent, and the general-position guard that rejects a
// segment endpoint sharing an x-coordinate with an unrelated point.
type Map struct {
	points  []geom.Point
	pointOf map[geom.Point]Index

	segments  []IndexedSegment
	segmentOf map[IndexedSegment]Index

	xCoords map[float64]Index // x -> the point index that first claimed it

	trapezoids []Trapezoid

	bbMin, bbMax geom.Point
}

// NewMap constructs the bounding rectangle [bbMin, bbMax], inserting its
// two corners as points 0 and 1 and trapezoid 0 spanning the whole box.
func NewMap(bbMin, bbMax geom.Point) *Map {
	m := &Map{
		pointOf:   make(map[geom.Point]Index),
		segmentOf: make(map[IndexedSegment]Index),
		xCoords:   make(map[float64]Index),
	}
	m.bbMin, m.bbMax = bbMin, bbMax
	left := m.internPoint(bbMin)
	right := m.internPoint(bbMax)
	m.trapezoids = []Trapezoid{{
		Top: NONE, Bottom: NONE,
		LeftPoint: left, RightPoint: right,
		Leaf:      0,
		UpperLeft: NONE, UpperRight: NONE, LowerLeft: NONE, LowerRight: NONE,
	}}
	return m
}

// Clear resets the map back to its just-constructed state, keeping the
// same bounding rectangle.
func (m *Map) Clear() {
	m.points = nil
	m.pointOf = make(map[geom.Point]Index)
	m.segments = nil
	m.segmentOf = make(map[IndexedSegment]Index)
	m.xCoords = make(map[float64]Index)
	m.trapezoids = nil
	left := m.internPoint(m.bbMin)
	right := m.internPoint(m.bbMax)
	m.trapezoids = []Trapezoid{{
		Top: NONE, Bottom: NONE,
		LeftPoint: left, RightPoint: right,
		Leaf:      0,
		UpperLeft: NONE, UpperRight: NONE, LowerLeft: NONE, LowerRight: NONE,
	}}
}

// BoundingBox returns the rectangle passed to NewMap.
func (m *Map) BoundingBox() (geom.Point, geom.Point) {
	return m.bbMin, m.bbMax
}

// Point resolves a point index to its coordinates.
func (m *Map) Point(i Index) geom.Point {
	return m.points[i]
}

// Points returns every point in insertion order. The slice is owned by the
// map and must not be mutated.
func (m *Map) Points() []geom.Point {
	return m.points
}

// IndexedSegment resolves a segment index to its endpoint indices.
func (m *Map) IndexedSegment(i Index) IndexedSegment {
	return m.segments[i]
}

// Segment resolves a segment index to a geom.Segment, oriented left-to-right.
func (m *Map) Segment(i Index) geom.Segment {
	is := m.segments[i]
	return geom.Segment{Start: m.points[is.Left], End: m.points[is.Right]}
}

// Segments returns every indexed segment in insertion order. The slice is
// owned by the map and must not be mutated.
func (m *Map) Segments() []IndexedSegment {
	return m.segments
}

// Trapezoid returns a pointer into the arena so callers can mutate a
// trapezoid's fields in place.
func (m *Map) Trapezoid(i Index) *Trapezoid {
	return &m.trapezoids[i]
}

// Trapezoids returns every trapezoid ever allocated, live or retired. The
// slice is owned by the map and must not be mutated.
func (m *Map) Trapezoids() []Trapezoid {
	return m.trapezoids
}

// FindPoint reports the index of an existing point equal to p, if any.
func (m *Map) FindPoint(p geom.Point) (Index, bool) {
	idx, ok := m.pointOf[p]
	return idx, ok
}

// FindSegment reports the index of an existing segment between a and b
// (in either order), if any.
func (m *Map) FindSegment(a, b geom.Point) (Index, bool) {
	ai, aok := m.FindPoint(a)
	bi, bok := m.FindPoint(b)
	if !aok || !bok {
		return NONE, false
	}
	return m.FindIndexedSegment(orientIndices(ai, bi, m.points))
}

// FindIndexedSegment reports the index of an existing segment with these
// exact endpoint indices.
func (m *Map) FindIndexedSegment(is IndexedSegment) (Index, bool) {
	idx, ok := m.segmentOf[is]
	return idx, ok
}

func orientIndices(a, b Index, pts []geom.Point) IndexedSegment {
	pa, pb := pts[a], pts[b]
	if (geom.Segment{Start: pa, End: pb}).Left() == pa {
		return IndexedSegment{Left: a, Right: b}
	}
	return IndexedSegment{Left: b, Right: a}
}

// internPoint returns p's index, allocating a fresh one if p is new. It
// does not apply the general-position guard -- callers that must reject a
// duplicate x-coordinate should call AddPoint instead.
func (m *Map) internPoint(p geom.Point) Index {
	if idx, ok := m.pointOf[p]; ok {
		return idx
	}
	idx := Index(len(m.points))
	m.points = append(m.points, p)
	m.pointOf[p] = idx
	m.xCoords[p.X] = idx
	return idx
}

// AddPoint interns p, enforcing general position: a new point may not share
// an x-coordinate with a different existing point. Returns NONE if p would
// violate that guard; the map is unchanged in that case.
func (m *Map) AddPoint(p geom.Point) Index {
	if existing, ok := m.pointOf[p]; ok {
		return existing
	}
	if claimant, ok := m.xCoords[p.X]; ok && m.points[claimant] != p {
		return NONE
	}
	return m.internPoint(p)
}

// AddSegment orients s by lexicographic order, rejects degenerate or
// duplicate segments and general-position violations, and otherwise
// interns its endpoints and the indexed segment itself. Returns the
// segment's index, or NONE if it was rejected -- in which case the map is
// left unchanged.
func (m *Map) AddSegment(s geom.Segment) Index {
	oriented := s.Oriented()
	if geom.Equal(oriented.Start, oriented.End) {
		return NONE
	}
	if oriented.Start.X == oriented.End.X {
		return NONE
	}

	leftExisting, leftKnown := m.FindPoint(oriented.Start)
	rightExisting, rightKnown := m.FindPoint(oriented.End)

	leftClaimant, leftXClaimed := m.xCoords[oriented.Start.X]
	if leftXClaimed && m.points[leftClaimant] != oriented.Start {
		return NONE
	}
	rightClaimant, rightXClaimed := m.xCoords[oriented.End.X]
	if rightXClaimed && m.points[rightClaimant] != oriented.End {
		return NONE
	}

	left := leftExisting
	if !leftKnown {
		left = m.internPoint(oriented.Start)
	}
	right := rightExisting
	if !rightKnown {
		right = m.internPoint(oriented.End)
	}

	is := IndexedSegment{Left: left, Right: right}
	if _, ok := m.segmentOf[is]; ok {
		return NONE
	}

	idx := Index(len(m.segments))
	m.segments = append(m.segments, is)
	m.segmentOf[is] = idx
	return idx
}

// segmentsShareLeftEndpoint reports whether segA and segB have the same
// left endpoint. NONE (the bounding box's synthetic top/bottom edge) never
// shares an endpoint with a real segment.
func (m *Map) segmentsShareLeftEndpoint(segA, segB Index) bool {
	if segA == NONE || segB == NONE {
		return false
	}
	return m.segments[segA].Left == m.segments[segB].Left
}

// segmentsShareRightEndpoint is segmentsShareLeftEndpoint's mirror.
func (m *Map) segmentsShareRightEndpoint(segA, segB Index) bool {
	if segA == NONE || segB == NONE {
		return false
	}
	return m.segments[segA].Right == m.segments[segB].Right
}

// appendTrapezoid appends t to the arena and returns its index.
func (m *Map) appendTrapezoid(t Trapezoid) Index {
	idx := Index(len(m.trapezoids))
	m.trapezoids = append(m.trapezoids, t)
	return idx
}

// patchNeighborMirror sets trapezoid neighbor's mirrorDir field to `to`, so
// that a trapezoid `to` listing neighbor in the opposite direction is
// pointed back at, maintaining (P3). A NONE neighbor needs no patch.
func (m *Map) patchNeighborMirror(neighbor Index, mirrorDir neighborDir, to Index) {
	if neighbor == NONE {
		return
	}
	m.trapezoids[neighbor].setNeighbor(mirrorDir, to)
}
