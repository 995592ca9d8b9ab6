// Package scene loads and saves trapezoidal map inputs as TOML "scene"
// files: a bounding box, an ordered list of segments, and optional query
// points to evaluate once the map is built. It supplements the core's
// informal "stream of segments" with a concrete, round-trippable format;
// it never touches the core's arenas directly.
package scene

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/fsanna/trapmap/geom"
	"github.com/fsanna/trapmap/trapmap"
)

// Point mirrors geom.Point with TOML-friendly field names.
type Point struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

func (p Point) toGeom() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

func fromGeom(p geom.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// Bounds is the scene's [bounds] table.
type Bounds struct {
	Min Point `toml:"min"`
	Max Point `toml:"max"`
}

// SegmentEntry is one [[segments]] table.
type SegmentEntry struct {
	Start Point `toml:"start"`
	End   Point `toml:"end"`
}

// Scene is the decoded form of a scene file.
type Scene struct {
	Bounds   Bounds         `toml:"bounds"`
	Segments []SegmentEntry `toml:"segments"`
	Queries  []Point        `toml:"queries"`
}

// Load reads and decodes a scene file from path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene file %s", path)
	}
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parsing scene file %s", path)
	}
	return &s, nil
}

// Save encodes the scene to path, overwriting any existing file.
func (s *Scene) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating scene file %s", path)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}

// FromMap captures a scene's worth of TOML from a live map: its bounding
// box and every segment it currently holds, in arena order. It carries no
// query points, since the map has no notion of "points someone asked
// about" -- callers append those themselves.
func FromMap(m *trapmap.Map) *Scene {
	bbMin, bbMax := m.BoundingBox()
	s := &Scene{Bounds: Bounds{Min: fromGeom(bbMin), Max: fromGeom(bbMax)}}
	points := m.Points()
	for _, seg := range m.Segments() {
		s.Segments = append(s.Segments, SegmentEntry{
			Start: fromGeom(points[seg.Left]),
			End:   fromGeom(points[seg.Right]),
		})
	}
	return s
}

// Build constructs a fresh *trapmap.Map and *trapmap.DAG from the scene,
// inserting every segment in file order, and returns the query points
// (already converted to geom.Point) for the caller to evaluate.
func (s *Scene) Build() (*trapmap.Map, *trapmap.DAG, []geom.Point, error) {
	m := trapmap.NewMap(s.Bounds.Min.toGeom(), s.Bounds.Max.toGeom())
	d := trapmap.NewDAG()
	for i, entry := range s.Segments {
		seg := geom.Segment{Start: entry.Start.toGeom(), End: entry.End.toGeom()}
		if err := trapmap.Insert(m, d, seg); err != nil {
			return nil, nil, nil, errors.Wrapf(err, "inserting segment %d", i)
		}
	}
	queries := make([]geom.Point, len(s.Queries))
	for i, q := range s.Queries {
		queries[i] = q.toGeom()
	}
	return m, d, queries, nil
}
