package trapmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsanna/trapmap/geom"
)

func TestQueryOnEmptyMapReturnsBoundingTrapezoid(t *testing.T) {
	m := newTestMap()
	d := NewDAG()
	assert.Equal(t, Index(0), Query(m, d, geom.Point{X: 5, Y: 5}))
}

func TestFollowSegmentSingleTrapezoid(t *testing.T) {
	m := newTestMap()
	d := NewDAG()
	seg := geom.Segment{Start: geom.Point{X: 2, Y: 5}, End: geom.Point{X: 8, Y: 5}}
	run := FollowSegment(m, d, seg)
	assert.Len(t, run, 1)
	assert.Equal(t, Index(0), run[0])
}

func TestFollowSegmentMultipleTrapezoids(t *testing.T) {
	m := newTestMap()
	d := NewDAG()
	require.NoError(t, Insert(m, d, geom.Segment{Start: geom.Point{X: 2, Y: 5}, End: geom.Point{X: 8, Y: 5}}))

	diagonal := geom.Segment{Start: geom.Point{X: 3, Y: 9}, End: geom.Point{X: 7, Y: 1}}
	run := FollowSegment(m, d, diagonal.Oriented())
	require.GreaterOrEqual(t, len(run), 3)

	for i := 1; i < len(run); i++ {
		assert.NotEqual(t, run[i-1], run[i])
	}
}

func TestInsertEndSplitsAtStrictlyInteriorEndpoints(t *testing.T) {
	m := newTestMap()
	d := NewDAG()
	require.NoError(t, Insert(m, d, geom.Segment{Start: geom.Point{X: 2, Y: 5}, End: geom.Point{X: 8, Y: 5}}))

	before := len(m.Trapezoids())
	diagonal := geom.Segment{Start: geom.Point{X: 3, Y: 9}, End: geom.Point{X: 7, Y: 1}}
	require.NoError(t, Insert(m, d, diagonal))
	require.NoError(t, CheckInvariants(m, d))

	// A diagonal crossing the horizontal segment with both endpoints
	// strictly inside the bounding box must add more trapezoids than a
	// same-width single-trapezoid split would.
	assert.Greater(t, len(m.Trapezoids()), before+2)
}

func TestInsertRejectsDegenerateSegment(t *testing.T) {
	m := newTestMap()
	d := NewDAG()
	p := geom.Point{X: 5, Y: 5}
	require.NoError(t, Insert(m, d, geom.Segment{Start: p, End: p}))
	assert.Len(t, m.Trapezoids(), 1)
	assert.Len(t, d.Nodes, 1)
}
