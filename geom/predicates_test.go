package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPointStrictlyLeftOf(t *testing.T) {
	s := Segment{Start: Point{0, 0}, End: Point{10, 0}}
	assert.True(t, IsPointStrictlyLeftOf(s, Point{5, 1}))
	assert.False(t, IsPointStrictlyLeftOf(s, Point{5, -1}))
	assert.False(t, IsPointStrictlyLeftOf(s, Point{5, 0}))
}

func TestIsPointStrictlyLeftOfHandlesReversedSegment(t *testing.T) {
	// Oriented() should make this behave the same as the left-to-right case.
	s := Segment{Start: Point{10, 0}, End: Point{0, 0}}
	assert.True(t, IsPointStrictlyLeftOf(s, Point{5, 1}))
	assert.False(t, IsPointStrictlyLeftOf(s, Point{5, -1}))
}

func TestSlope(t *testing.T) {
	cases := []struct {
		name     string
		s        Segment
		expected float64
	}{
		{"rising", Segment{Point{0, 0}, Point{2, 2}}, 1},
		{"falling", Segment{Point{0, 2}, Point{2, 0}}, -1},
		{"steep", Segment{Point{0, 0}, Point{1, 10}}, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.expected, Slope(c.s), 1e-9)
		})
	}
}

func TestSolveForX(t *testing.T) {
	s := Segment{Start: Point{0, 0}, End: Point{10, 10}}
	assert.InDelta(t, 5, SolveForX(s, 5), 1e-9)
	assert.InDelta(t, 0, SolveForX(s, 0), 1e-9)
	assert.InDelta(t, 10, SolveForX(s, 10), 1e-9)
}

func TestIntersection(t *testing.T) {
	s := Segment{Start: Point{0, 0}, End: Point{10, 10}}
	p := Intersection(s, 5)
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 5, p.Y, 1e-9)
}

func TestSegmentTopBottomLeftRight(t *testing.T) {
	s := Segment{Start: Point{8, 5}, End: Point{2, 9}}
	assert.Equal(t, Point{2, 9}, s.Top())
	assert.Equal(t, Point{8, 5}, s.Bottom())
	assert.Equal(t, Point{2, 9}, s.Left())
	assert.Equal(t, Point{8, 5}, s.Right())
}

func TestSegmentIsHorizontal(t *testing.T) {
	assert.True(t, Segment{Point{0, 3}, Point{5, 3}}.IsHorizontal())
	assert.False(t, Segment{Point{0, 3}, Point{5, 4}}.IsHorizontal())
}
