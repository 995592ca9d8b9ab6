package trapmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsanna/trapmap/geom"
)

func TestCheckInvariantsOnFreshMap(t *testing.T) {
	m := newTestMap()
	d := NewDAG()
	assert.NoError(t, CheckInvariants(m, d))
}

func TestCheckInvariantsAfterSeveralInserts(t *testing.T) {
	m := newTestMap()
	d := NewDAG()

	segments := []geom.Segment{
		{Start: geom.Point{X: 2, Y: 5}, End: geom.Point{X: 8, Y: 5}},
		{Start: geom.Point{X: 2, Y: 5}, End: geom.Point{X: 6, Y: 8}},
		{Start: geom.Point{X: 3, Y: 9}, End: geom.Point{X: 7, Y: 1}},
	}
	for _, s := range segments {
		require.NoError(t, Insert(m, d, s))
		require.NoError(t, CheckInvariants(m, d))
	}
}

func TestCheckQueryPropertyHoldsAwayFromSegments(t *testing.T) {
	m := newTestMap()
	d := NewDAG()
	require.NoError(t, Insert(m, d, geom.Segment{Start: geom.Point{X: 2, Y: 5}, End: geom.Point{X: 8, Y: 5}}))

	for _, p := range []geom.Point{{X: 1, Y: 5}, {X: 9, Y: 5}, {X: 5, Y: 8}, {X: 5, Y: 2}} {
		assert.NoError(t, CheckQueryProperty(m, d, p))
	}
}

func TestCheckIdempotenceDetectsDivergence(t *testing.T) {
	before := newTestMap()
	beforeDAG := NewDAG()
	require.NoError(t, Insert(before, beforeDAG, geom.Segment{Start: geom.Point{X: 2, Y: 5}, End: geom.Point{X: 8, Y: 5}}))

	after := newTestMap()
	afterDAG := NewDAG()
	require.NoError(t, Insert(after, afterDAG, geom.Segment{Start: geom.Point{X: 2, Y: 5}, End: geom.Point{X: 8, Y: 5}}))
	require.NoError(t, Insert(after, afterDAG, geom.Segment{Start: geom.Point{X: 3, Y: 9}, End: geom.Point{X: 7, Y: 1}}))

	assert.Error(t, CheckIdempotence(before, beforeDAG, after, afterDAG))
}
