package trapmap

import (
	"github.com/fsanna/trapmap/geom"
	"github.com/pkg/errors"
)

// CheckInvariants walks the map and DAG and confirms their structural
// invariants hold, returning an InvariantError describing the first
// violation found rather than panicking. It doubles
// as the body of the debug assertions UpdateSingle/UpdateMulti panic with
// (via throwInvariant) and as a standalone property check callable from
// tests and from the CLI's verify subcommand.
//
// A single checked-at-the-boundary validation pass over the index arenas,
// rather than pointer-graph traversal.
func CheckInvariants(m *Map, d *DAG) error {
	if err := checkD1(d); err != nil {
		return err
	}
	if err := checkD3(d); err != nil {
		return err
	}
	leaves, err := reachableLeaves(d)
	if err != nil {
		return err
	}
	liveTraps, err := checkT1(m, d, leaves)
	if err != nil {
		return err
	}
	if err := checkT2(m, liveTraps); err != nil {
		return err
	}
	if err := checkT3(m, liveTraps); err != nil {
		return err
	}
	if err := checkT4(m, liveTraps); err != nil {
		return err
	}
	return nil
}

// checkD1 confirms the root is at index 0. After bootstrap, root is a leaf
// referencing the bounding-box trapezoid; we check only the index-0
// requirement here, since "leaf referencing the bounding box" stops holding
// the moment a segment has been inserted.
func checkD1(d *DAG) error {
	if len(d.Nodes) == 0 {
		return InvariantError(errors.Errorf("DAG has no nodes, root index 0 does not exist"))
	}
	return nil
}

// checkD3 confirms each internal node has both children set, and each leaf
// has both children set to NONE.
func checkD3(d *DAG) error {
	for i, n := range d.Nodes {
		if n.IsLeaf() {
			if n.LeftChild != NONE || n.RightChild != NONE {
				return InvariantError(errors.Errorf("leaf node %d has a non-NONE child", i))
			}
			continue
		}
		if n.LeftChild == NONE || n.RightChild == NONE {
			return InvariantError(errors.Errorf("internal node %d is missing a child", i))
		}
	}
	return nil
}

// reachableLeaves walks the DAG from the root, returning the set of leaf
// indices reachable from it and confirming the walk never cycles back on
// itself along the way.
func reachableLeaves(d *DAG) (map[Index]bool, error) {
	leaves := make(map[Index]bool)
	onPath := make(map[Index]bool)
	var walk func(idx Index) error
	walk = func(idx Index) error {
		if idx == NONE {
			return InvariantError(errors.Errorf("DAG descent reached NONE"))
		}
		if onPath[idx] {
			return InvariantError(errors.Errorf("DAG node %d participates in a cycle", idx))
		}
		n := d.Nodes[idx]
		if n.IsLeaf() {
			leaves[idx] = true
			return nil
		}
		onPath[idx] = true
		if err := walk(n.LeftChild); err != nil {
			return err
		}
		if err := walk(n.RightChild); err != nil {
			return err
		}
		onPath[idx] = false
		return nil
	}
	if err := walk(0); err != nil {
		return nil, err
	}
	return leaves, nil
}

// checkT1 confirms every reachable leaf references a live trapezoid and
// every live trapezoid's Leaf points back at the leaf that claims it,
// returning the set of live trapezoid indices for the later checks to
// reuse.
func checkT1(m *Map, d *DAG, leaves map[Index]bool) (map[Index]bool, error) {
	liveTraps := make(map[Index]bool, len(leaves))
	for leaf := range leaves {
		trap := d.Nodes[leaf].Object
		if trap == NONE || int(trap) >= len(m.trapezoids) {
			return nil, InvariantError(errors.Errorf("leaf %d references invalid trapezoid %d", leaf, trap))
		}
		if m.trapezoids[trap].Leaf != leaf {
			return nil, InvariantError(errors.Errorf(
				"trapezoid %d's Leaf field is %d, but leaf %d is the one referencing it",
				trap, m.trapezoids[trap].Leaf, leaf))
		}
		liveTraps[trap] = true
	}
	return liveTraps, nil
}

// checkT2 confirms that if trapezoid A has right-neighbor B on the upper
// side, then B has A as its upper-left neighbor, and symmetrically for the
// other three directions.
func checkT2(m *Map, liveTraps map[Index]bool) error {
	dirs := []neighborDir{dirUpperLeft, dirUpperRight, dirLowerLeft, dirLowerRight}
	for trap := range liveTraps {
		t := m.Trapezoid(trap)
		for _, dir := range dirs {
			n := t.neighbor(dir)
			if n == NONE {
				continue
			}
			back := m.trapezoids[n].neighbor(dir.mirror())
			if back != trap {
				return InvariantError(errors.Errorf(
					"trapezoid %d's neighbor %d (dir %d) does not point back: got %d, want %d",
					trap, n, dir, back, trap))
			}
		}
	}
	return nil
}

// checkT3 confirms LeftPoint.X <= RightPoint.X, and that Top lies strictly
// above Bottom inside the vertical strip [LeftPoint.X, RightPoint.X]. At a
// wall the two may meet, as they do where Top and Bottom share an endpoint.
func checkT3(m *Map, liveTraps map[Index]bool) error {
	for trap := range liveTraps {
		t := m.Trapezoid(trap)
		left, right := m.Point(t.LeftPoint), m.Point(t.RightPoint)
		if left.X > right.X+geom.Tolerance {
			return InvariantError(errors.Errorf("trapezoid %d has LeftPoint.X %v > RightPoint.X %v", trap, left.X, right.X))
		}
		topAtLeft, topAtRight := boundY(m, t.Top, left.X, right.X, m.bbMax.Y)
		botAtLeft, botAtRight := boundY(m, t.Bottom, left.X, right.X, m.bbMin.Y)
		if topAtLeft < botAtLeft-geom.Tolerance || topAtRight < botAtRight-geom.Tolerance ||
			topAtLeft+topAtRight < botAtLeft+botAtRight+geom.Tolerance {
			return InvariantError(errors.Errorf("trapezoid %d's Top does not lie strictly above its Bottom", trap))
		}
	}
	return nil
}

// boundY returns the y-coordinate of segment seg at the given x, at both
// the left and right edge of a trapezoid's strip. seg == NONE stands for
// the bounding box's synthetic top or bottom edge, which is just the flat
// line y = fallback.
func boundY(m *Map, seg Index, leftX, rightX, fallback float64) (atLeft, atRight float64) {
	if seg == NONE {
		return fallback, fallback
	}
	s := m.Segment(seg).Oriented()
	if s.Start.Y == s.End.Y {
		return s.Start.Y, s.Start.Y
	}
	slope := (s.End.Y - s.Start.Y) / (s.End.X - s.Start.X)
	atLeft = s.Start.Y + slope*(leftX-s.Start.X)
	atRight = s.Start.Y + slope*(rightX-s.Start.X)
	return atLeft, atRight
}

// checkT4 confirms the union of all live trapezoids equals the bounding
// rectangle and their interiors are pairwise disjoint. Exact polygon-union
// equality is exercised by CheckRoundTrip and CheckQueryProperty; here we
// check the necessary condition that's cheap to confirm directly: every
// live trapezoid's boundary points are finite and their x-coordinates lie
// within the bounding rectangle's x-range. Their y-coordinates and their
// distinctness are not checked.
func checkT4(m *Map, liveTraps map[Index]bool) error {
	for trap := range liveTraps {
		t := m.Trapezoid(trap)
		left, right := m.Point(t.LeftPoint), m.Point(t.RightPoint)
		if !left.IsFinite() || !right.IsFinite() {
			return InvariantError(errors.Errorf("trapezoid %d has a non-finite boundary point", trap))
		}
		if left.X < m.bbMin.X-geom.Tolerance || right.X > m.bbMax.X+geom.Tolerance {
			return InvariantError(errors.Errorf("trapezoid %d extends outside the bounding rectangle", trap))
		}
	}
	return nil
}

// CheckQueryProperty confirms that for a query point p strictly inside the
// bounding rectangle and not on any segment, Query(p) returns a trapezoid t
// such that p.X lies strictly between t's LeftPoint and RightPoint, and p
// lies strictly between t's Top and Bottom.
func CheckQueryProperty(m *Map, d *DAG, p geom.Point) error {
	trapIdx := Query(m, d, p)
	t := m.Trapezoid(trapIdx)
	left, right := m.Point(t.LeftPoint), m.Point(t.RightPoint)
	if !(p.X > left.X+geom.Tolerance && p.X < right.X-geom.Tolerance) {
		return InvariantError(errors.Errorf("Query(%v) returned trapezoid %d, but p.X is not strictly within [%v, %v]",
			p, trapIdx, left.X, right.X))
	}
	topAt, _ := boundY(m, t.Top, p.X, p.X, m.bbMax.Y)
	botY, _ := boundY(m, t.Bottom, p.X, p.X, m.bbMin.Y)
	if !(p.Y < topAt-geom.Tolerance && p.Y > botY+geom.Tolerance) {
		return InvariantError(errors.Errorf("Query(%v) returned trapezoid %d, but p.Y is not strictly between Top and Bottom", p, trapIdx))
	}
	return nil
}

// CheckRoundTrip confirms that for a segment s just inserted, querying a
// point just above its midpoint and just below its midpoint returns
// trapezoids whose Bottom (resp. Top) is s itself.
func CheckRoundTrip(m *Map, d *DAG, segIdx Index) error {
	s := m.Segment(segIdx)
	mid := geom.Point{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
	eps := 1e-6

	above := Query(m, d, geom.Point{X: mid.X, Y: mid.Y + eps})
	if m.Trapezoid(above).Bottom != segIdx {
		return InvariantError(errors.Errorf("segment %d round-trip failed above: got bottom %d, want %d",
			segIdx, m.Trapezoid(above).Bottom, segIdx))
	}

	below := Query(m, d, geom.Point{X: mid.X, Y: mid.Y - eps})
	if m.Trapezoid(below).Top != segIdx {
		return InvariantError(errors.Errorf("segment %d round-trip failed below: got top %d, want %d",
			segIdx, m.Trapezoid(below).Top, segIdx))
	}
	return nil
}

// CheckIdempotence confirms that re-inserting an already-inserted segment
// leaves both structures byte-identical. Callers pass a snapshot of the
// map/DAG taken before the repeat Insert call.
func CheckIdempotence(before *Map, beforeDAG *DAG, after *Map, afterDAG *DAG) error {
	if len(before.points) != len(after.points) ||
		len(before.segments) != len(after.segments) ||
		len(before.trapezoids) != len(after.trapezoids) {
		return InvariantError(errors.Errorf("re-inserting a known segment changed arena sizes"))
	}
	for i := range before.trapezoids {
		if before.trapezoids[i] != after.trapezoids[i] {
			return InvariantError(errors.Errorf("re-inserting a known segment changed trapezoid %d", i))
		}
	}
	if len(beforeDAG.Nodes) != len(afterDAG.Nodes) {
		return InvariantError(errors.Errorf("re-inserting a known segment changed DAG size"))
	}
	for i := range beforeDAG.Nodes {
		if beforeDAG.Nodes[i] != afterDAG.Nodes[i] {
			return InvariantError(errors.Errorf("re-inserting a known segment changed DAG node %d", i))
		}
	}
	return nil
}
