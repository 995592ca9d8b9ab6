package trapmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsanna/trapmap/geom"
)

func newTestMap() *Map {
	return NewMap(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10})
}

func TestNewMapHasBoundingTrapezoid(t *testing.T) {
	m := newTestMap()
	require.Len(t, m.Trapezoids(), 1)
	t0 := m.Trapezoid(0)
	assert.Equal(t, NONE, t0.Top)
	assert.Equal(t, NONE, t0.Bottom)
	assert.Equal(t, Index(0), t0.Leaf)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, m.Point(t0.LeftPoint))
	assert.Equal(t, geom.Point{X: 10, Y: 10}, m.Point(t0.RightPoint))
}

func TestAddPointInterning(t *testing.T) {
	m := newTestMap()
	p := geom.Point{X: 5, Y: 5}
	a := m.AddPoint(p)
	b := m.AddPoint(p)
	assert.Equal(t, a, b)
	assert.NotEqual(t, NONE, a)
}

func TestAddPointRejectsSharedXWithDifferentPoint(t *testing.T) {
	m := newTestMap()
	a := m.AddPoint(geom.Point{X: 5, Y: 5})
	require.NotEqual(t, NONE, a)
	b := m.AddPoint(geom.Point{X: 5, Y: 6})
	assert.Equal(t, NONE, b)
}

func TestAddSegmentOrientsAndDeduplicates(t *testing.T) {
	m := newTestMap()
	idx := m.AddSegment(geom.Segment{Start: geom.Point{X: 8, Y: 5}, End: geom.Point{X: 2, Y: 5}})
	require.NotEqual(t, NONE, idx)
	is := m.IndexedSegment(idx)
	assert.Equal(t, geom.Point{X: 2, Y: 5}, m.Point(is.Left))
	assert.Equal(t, geom.Point{X: 8, Y: 5}, m.Point(is.Right))

	again := m.AddSegment(geom.Segment{Start: geom.Point{X: 2, Y: 5}, End: geom.Point{X: 8, Y: 5}})
	assert.Equal(t, NONE, again)
}

func TestAddSegmentRejectsDegenerate(t *testing.T) {
	m := newTestMap()
	p := geom.Point{X: 5, Y: 5}
	idx := m.AddSegment(geom.Segment{Start: p, End: p})
	assert.Equal(t, NONE, idx)
}

func TestAddSegmentRejectsGeneralPositionViolation(t *testing.T) {
	m := newTestMap()
	first := m.AddSegment(geom.Segment{Start: geom.Point{X: 2, Y: 5}, End: geom.Point{X: 8, Y: 5}})
	require.NotEqual(t, NONE, first)

	// A new point at x=2 with a different y would violate general position.
	second := m.AddSegment(geom.Segment{Start: geom.Point{X: 2, Y: 1}, End: geom.Point{X: 8, Y: 1}})
	assert.Equal(t, NONE, second)
	assert.Len(t, m.Segments(), 1)
}

func TestSegmentsShareEndpointHelpers(t *testing.T) {
	m := newTestMap()
	s1 := m.AddSegment(geom.Segment{Start: geom.Point{X: 2, Y: 5}, End: geom.Point{X: 8, Y: 5}})
	s2 := m.AddSegment(geom.Segment{Start: geom.Point{X: 2, Y: 5}, End: geom.Point{X: 6, Y: 8}})
	require.NotEqual(t, NONE, s1)
	require.NotEqual(t, NONE, s2)

	assert.True(t, m.segmentsShareLeftEndpoint(s1, s2))
	assert.False(t, m.segmentsShareRightEndpoint(s1, s2))
	assert.False(t, m.segmentsShareLeftEndpoint(s1, NONE))
	assert.False(t, m.segmentsShareRightEndpoint(NONE, s2))
}

func TestPatchNeighborMirrorIsNoopOnNone(t *testing.T) {
	m := newTestMap()
	m.patchNeighborMirror(NONE, dirUpperLeft, 0) // must not panic
}
