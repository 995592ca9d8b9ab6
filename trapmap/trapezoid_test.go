package trapmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeighborDirMirror(t *testing.T) {
	cases := []struct {
		dir    neighborDir
		mirror neighborDir
	}{
		{dirUpperLeft, dirUpperRight},
		{dirUpperRight, dirUpperLeft},
		{dirLowerLeft, dirLowerRight},
		{dirLowerRight, dirLowerLeft},
	}
	for _, c := range cases {
		assert.Equal(t, c.mirror, c.dir.mirror())
		assert.Equal(t, c.dir, c.dir.mirror().mirror())
	}
}

func TestTrapezoidNeighborAccessors(t *testing.T) {
	tr := &Trapezoid{UpperLeft: 1, UpperRight: 2, LowerLeft: 3, LowerRight: 4}
	assert.Equal(t, Index(1), tr.neighbor(dirUpperLeft))
	assert.Equal(t, Index(2), tr.neighbor(dirUpperRight))
	assert.Equal(t, Index(3), tr.neighbor(dirLowerLeft))
	assert.Equal(t, Index(4), tr.neighbor(dirLowerRight))

	tr.setNeighbor(dirUpperLeft, 10)
	tr.setNeighbor(dirLowerRight, 40)
	assert.Equal(t, Index(10), tr.UpperLeft)
	assert.Equal(t, Index(40), tr.LowerRight)
}
