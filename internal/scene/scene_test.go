package scene

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsanna/trapmap/geom"
)

func sampleScene() *Scene {
	return &Scene{
		Bounds: Bounds{Min: Point{X: 0, Y: 0}, Max: Point{X: 10, Y: 10}},
		Segments: []SegmentEntry{
			{Start: Point{X: 2, Y: 3}, End: Point{X: 8, Y: 3}},
			{Start: Point{X: 3, Y: 7}, End: Point{X: 7, Y: 7}},
		},
		Queries: []Point{{X: 5, Y: 5}},
	}
}

func TestSceneSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")

	original := sampleScene()
	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original.Bounds, loaded.Bounds)
	assert.Equal(t, original.Segments, loaded.Segments)
	assert.Equal(t, original.Queries, loaded.Queries)
}

func TestSceneBuild(t *testing.T) {
	s := sampleScene()
	m, d, queries, err := s.Build()
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, geom.Point{X: 5, Y: 5}, queries[0])
	assert.NotNil(t, m)
	assert.NotNil(t, d)
	assert.Len(t, m.Segments(), 2)
}

func TestSceneFromMapRoundTrip(t *testing.T) {
	s := sampleScene()
	m, _, _, err := s.Build()
	require.NoError(t, err)

	captured := FromMap(m)
	assert.Equal(t, s.Bounds, captured.Bounds)
	assert.ElementsMatch(t, s.Segments, captured.Segments)
}
