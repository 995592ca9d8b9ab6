package trapmap

import "github.com/fsanna/trapmap/geom"

// Query returns the index of the trapezoid containing p.
func Query(m *Map, d *DAG, p geom.Point) Index {
	leaf := d.QueryLeaf(m, p)
	return d.Nodes[leaf].Object
}

// Find is Query's counterpart for a segment about to be inserted: it
// descends exactly as Query would for the segment's left endpoint, except
// that a Y-node sharing that same left endpoint is disambiguated by slope
// rather than by orientation, which would be degenerate right at the
// shared point.
func Find(m *Map, d *DAG, seg geom.Segment) Index {
	leaf := d.FindLeafForSegmentLeft(m, seg)
	return d.Nodes[leaf].Object
}

// FollowSegment returns the ordered, duplicate-free list of trapezoids the
// segment passes through, starting from Find(seg) and walking right
// through UpperRight/LowerRight neighbors until the segment's right
// endpoint is reached.
func FollowSegment(m *Map, d *DAG, seg geom.Segment) []Index {
	oriented := seg.Oriented()
	cur := Find(m, d, oriented)
	run := []Index{cur}
	for {
		t := m.Trapezoid(cur)
		if !(oriented.End.X > m.Point(t.RightPoint).X) {
			return run
		}
		rightPoint := m.Point(t.RightPoint)
		var next Index
		if geom.IsPointStrictlyLeftOf(oriented, rightPoint) {
			next = t.LowerRight
		} else {
			next = t.UpperRight
		}
		if next == NONE {
			throwInvariant("follow-segment walk fell off the map following %v", oriented)
		}
		run = append(run, next)
		cur = next
	}
}

// Insert adds seg to the map: AddSegment interns its endpoints and rejects
// degenerate or duplicate input, FollowSegment finds every trapezoid it
// crosses, and the DAG and map are updated in lockstep (DAG first, per the
// ordering requirement -- the DAG allocates the leaf indices the map's new
// trapezoids record as their back-pointer).
//
// Returns nil both when seg was inserted and when it was silently rejected
// as degenerate/duplicate input; a non-nil error is a recovered panic whose
// value is an error (a throwInvariant call, or a runtime error such as an
// out-of-range index), which is a programming error, not a rejection.
func Insert(m *Map, d *DAG, seg geom.Segment) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if invErr, ok := r.(InvariantError); ok {
				err = invErr
				return
			}
			panic(r)
		}
	}()

	id := m.AddSegment(seg)
	if id == NONE {
		return nil
	}

	oriented := m.Segment(id)
	run := FollowSegment(m, d, oriented)
	lp, rp := m.IndexedSegment(id).Left, m.IndexedSegment(id).Right

	if len(run) == 1 {
		updateSingle(m, d, run[0], lp, rp, id)
	} else {
		updateMulti(m, d, run, lp, rp, id)
	}
	return nil
}

// updateSingle implements the k=1 case of 4.1/4.2: τ is replaced by upper
// and lower (always), plus left and/or right when the segment's endpoints
// fall strictly inside τ.
func updateSingle(m *Map, d *DAG, trapIdx, lp, rp, segIdx Index) {
	old := *m.Trapezoid(trapIdx)
	hasLeft := lp != old.LeftPoint
	hasRight := rp != old.RightPoint
	oldLeaf := old.Leaf

	upperLeaf := d.newLeaf(NONE)
	lowerLeaf := d.newLeaf(NONE)

	upperIdx := trapIdx
	m.trapezoids[upperIdx] = Trapezoid{
		Top: old.Top, Bottom: segIdx,
		LeftPoint: lp, RightPoint: rp,
		Leaf:      upperLeaf,
		UpperLeft: NONE, UpperRight: NONE, LowerLeft: NONE, LowerRight: NONE,
	}
	d.setLeafObject(upperLeaf, upperIdx)

	lowerIdx := m.appendTrapezoid(Trapezoid{
		Top: segIdx, Bottom: old.Bottom,
		LeftPoint: lp, RightPoint: rp,
		Leaf:      lowerLeaf,
		UpperLeft: NONE, UpperRight: NONE, LowerLeft: NONE, LowerRight: NONE,
	})
	d.setLeafObject(lowerLeaf, lowerIdx)

	var leftIdx, rightIdx Index = NONE, NONE
	var leftLeaf, rightLeaf Index = NONE, NONE

	if hasLeft {
		leftLeaf = d.newLeaf(NONE)
		leftIdx = m.appendTrapezoid(Trapezoid{
			Top: old.Top, Bottom: old.Bottom,
			LeftPoint: old.LeftPoint, RightPoint: lp,
			Leaf:       leftLeaf,
			UpperLeft:  old.UpperLeft,
			LowerLeft:  old.LowerLeft,
			UpperRight: upperIdx,
			LowerRight: lowerIdx,
		})
		d.setLeafObject(leftLeaf, leftIdx)
		m.patchNeighborMirror(old.UpperLeft, dirUpperRight, leftIdx)
		m.patchNeighborMirror(old.LowerLeft, dirLowerRight, leftIdx)
		m.trapezoids[upperIdx].UpperLeft = leftIdx
		m.trapezoids[lowerIdx].LowerLeft = leftIdx
	} else if !m.segmentsShareLeftEndpoint(old.Top, old.Bottom) {
		m.trapezoids[upperIdx].UpperLeft = old.UpperLeft
		m.patchNeighborMirror(old.UpperLeft, dirUpperRight, upperIdx)
		m.trapezoids[lowerIdx].LowerLeft = old.LowerLeft
		m.patchNeighborMirror(old.LowerLeft, dirLowerRight, lowerIdx)
	}

	if hasRight {
		rightLeaf = d.newLeaf(NONE)
		rightIdx = m.appendTrapezoid(Trapezoid{
			Top: old.Top, Bottom: old.Bottom,
			LeftPoint: rp, RightPoint: old.RightPoint,
			Leaf:       rightLeaf,
			UpperRight: old.UpperRight,
			LowerRight: old.LowerRight,
			UpperLeft:  upperIdx,
			LowerLeft:  lowerIdx,
		})
		d.setLeafObject(rightLeaf, rightIdx)
		m.patchNeighborMirror(old.UpperRight, dirUpperLeft, rightIdx)
		m.patchNeighborMirror(old.LowerRight, dirLowerLeft, rightIdx)
		m.trapezoids[upperIdx].UpperRight = rightIdx
		m.trapezoids[lowerIdx].LowerRight = rightIdx
	} else if !m.segmentsShareRightEndpoint(old.Top, old.Bottom) {
		m.trapezoids[upperIdx].UpperRight = old.UpperRight
		m.patchNeighborMirror(old.UpperRight, dirUpperLeft, upperIdx)
		m.trapezoids[lowerIdx].LowerRight = old.LowerRight
		m.patchNeighborMirror(old.LowerRight, dirLowerLeft, lowerIdx)
	}

	switch {
	case hasLeft && hasRight:
		innerY := d.newInternal(yNode(segIdx, upperLeaf, lowerLeaf))
		innerX := d.newInternal(xNode(rp, innerY, rightLeaf))
		d.Nodes[oldLeaf] = xNode(lp, leftLeaf, innerX)
	case hasLeft && !hasRight:
		innerY := d.newInternal(yNode(segIdx, upperLeaf, lowerLeaf))
		d.Nodes[oldLeaf] = xNode(lp, leftLeaf, innerY)
	case !hasLeft && hasRight:
		innerY := d.newInternal(yNode(segIdx, upperLeaf, lowerLeaf))
		d.Nodes[oldLeaf] = xNode(rp, innerY, rightLeaf)
	default:
		d.Nodes[oldLeaf] = yNode(segIdx, upperLeaf, lowerLeaf)
	}
}

// splitRecord captures a run member's old fields before they're overwritten,
// since updateMulti needs to read several trapezoids' pre-insertion state
// while it mutates others in place.
type splitRecord struct {
	origTrap   Index
	oldLeaf    Index
	Top, Bottom,
	LeftPoint, RightPoint,
	UpperLeft, UpperRight,
	LowerLeft, LowerRight Index
}

func snapshot(m *Map, trapIdx Index) splitRecord {
	t := m.Trapezoid(trapIdx)
	return splitRecord{
		origTrap: trapIdx, oldLeaf: t.Leaf,
		Top: t.Top, Bottom: t.Bottom,
		LeftPoint: t.LeftPoint, RightPoint: t.RightPoint,
		UpperLeft: t.UpperLeft, UpperRight: t.UpperRight,
		LowerLeft: t.LowerLeft, LowerRight: t.LowerRight,
	}
}

// splitAtPoint introduces a new vertical wall at pt inside trapIdx, ahead of
// the multi-trapezoid merge walk proper. The outer sliver (the part cut off
// by pt, away from the run) is a fresh trapezoid; the remainder keeps
// trapIdx's own index, per the state machine's "index reused for the inner
// remainder". sliverOnLeft selects which side the sliver is cut from.
func splitAtPoint(m *Map, trapIdx, pt Index, sliverOnLeft bool) (sliverIdx Index) {
	old := *m.Trapezoid(trapIdx)
	if sliverOnLeft {
		sliverIdx = m.appendTrapezoid(Trapezoid{
			Top: old.Top, Bottom: old.Bottom,
			LeftPoint: old.LeftPoint, RightPoint: pt,
			Leaf:       NONE, // patched by the caller once the DAG knows where this leaf lives
			UpperLeft:  old.UpperLeft, LowerLeft: old.LowerLeft,
			UpperRight: trapIdx, LowerRight: trapIdx,
		})
		m.patchNeighborMirror(old.UpperLeft, dirUpperRight, sliverIdx)
		m.patchNeighborMirror(old.LowerLeft, dirLowerRight, sliverIdx)
		m.trapezoids[trapIdx] = Trapezoid{
			Top: old.Top, Bottom: old.Bottom,
			LeftPoint: pt, RightPoint: old.RightPoint,
			Leaf:       old.Leaf,
			UpperLeft:  sliverIdx, LowerLeft: sliverIdx,
			UpperRight: old.UpperRight, LowerRight: old.LowerRight,
		}
	} else {
		sliverIdx = m.appendTrapezoid(Trapezoid{
			Top: old.Top, Bottom: old.Bottom,
			LeftPoint: pt, RightPoint: old.RightPoint,
			Leaf:       NONE, // patched by the caller once the DAG knows where this leaf lives
			UpperRight: old.UpperRight, LowerRight: old.LowerRight,
			UpperLeft: trapIdx, LowerLeft: trapIdx,
		})
		m.patchNeighborMirror(old.UpperRight, dirUpperLeft, sliverIdx)
		m.patchNeighborMirror(old.LowerRight, dirLowerLeft, sliverIdx)
		m.trapezoids[trapIdx] = Trapezoid{
			Top: old.Top, Bottom: old.Bottom,
			LeftPoint: old.LeftPoint, RightPoint: pt,
			Leaf:       old.Leaf,
			UpperRight: sliverIdx, LowerRight: sliverIdx,
			UpperLeft: old.UpperLeft, LowerLeft: old.LowerLeft,
		}
	}
	return sliverIdx
}

// updateMulti implements the k>1 case of 4.1/4.2: end-splits for endpoints
// that fall strictly inside the first/last trapezoid of the run, then a
// left-to-right walk that converts each run member's leaf into a Y-node and
// maintains two running trapezoids (above and below the new segment),
// opening a fresh one whenever the old top/bottom bound it is tracking
// changes.
func updateMulti(m *Map, d *DAG, run []Index, lp, rp, segIdx Index) {
	first, last := run[0], run[len(run)-1]

	if lp != m.Trapezoid(first).LeftPoint {
		sliverIdx := splitAtPoint(m, first, lp, true)
		sliverLeaf := d.newLeaf(sliverIdx)
		m.trapezoids[sliverIdx].Leaf = sliverLeaf
		remainderLeaf := d.newLeaf(first)
		remainderOldLeaf := m.trapezoids[first].Leaf
		m.trapezoids[first].Leaf = remainderLeaf
		d.Nodes[remainderOldLeaf] = xNode(lp, sliverLeaf, remainderLeaf)
	}
	if rp != m.Trapezoid(last).RightPoint {
		sliverIdx := splitAtPoint(m, last, rp, false)
		sliverLeaf := d.newLeaf(sliverIdx)
		m.trapezoids[sliverIdx].Leaf = sliverLeaf
		remainderLeaf := d.newLeaf(last)
		remainderOldLeaf := m.trapezoids[last].Leaf
		m.trapezoids[last].Leaf = remainderLeaf
		d.Nodes[remainderOldLeaf] = xNode(rp, remainderLeaf, sliverLeaf)
	}

	records := make([]splitRecord, len(run))
	for i, trapIdx := range run {
		records[i] = snapshot(m, trapIdx)
	}
	// The first/last records' LeftPoint/RightPoint now reflect the
	// end-split remainder, since snapshot reads post-split state.

	var aboveOpen, belowOpen bool
	var aboveTrap, belowTrap Index = NONE, NONE
	var aboveLeaf, belowLeaf Index = NONE, NONE
	var aboveTopKey, belowBottomKey Index = NONE, NONE

	for i, rec := range records {
		if !aboveOpen || rec.Top != aboveTopKey {
			if aboveOpen {
				m.trapezoids[aboveTrap].RightPoint = rec.LeftPoint
				m.trapezoids[aboveTrap].UpperRight = rec.UpperLeft
				m.patchNeighborMirror(rec.UpperLeft, dirUpperRight, aboveTrap)
			}
			aboveTrap = rec.origTrap
			aboveLeaf = d.newLeaf(aboveTrap)
			m.trapezoids[aboveTrap] = Trapezoid{
				Top: rec.Top, Bottom: segIdx,
				LeftPoint: rec.LeftPoint, RightPoint: rec.RightPoint,
				Leaf:       aboveLeaf,
				UpperLeft:  rec.UpperLeft, UpperRight: rec.UpperRight,
				LowerLeft: NONE, LowerRight: NONE,
			}
			m.patchNeighborMirror(rec.UpperLeft, dirUpperRight, aboveTrap)
			aboveTopKey = rec.Top
			aboveOpen = true
		}

		if !belowOpen || rec.Bottom != belowBottomKey {
			if belowOpen {
				m.trapezoids[belowTrap].RightPoint = rec.LeftPoint
				m.trapezoids[belowTrap].LowerRight = rec.LowerLeft
				m.patchNeighborMirror(rec.LowerLeft, dirLowerRight, belowTrap)
			}
			belowLeaf = d.newLeaf(NONE)
			belowTrap = m.appendTrapezoid(Trapezoid{
				Top: segIdx, Bottom: rec.Bottom,
				LeftPoint: rec.LeftPoint, RightPoint: rec.RightPoint,
				Leaf:       belowLeaf,
				LowerLeft:  rec.LowerLeft, LowerRight: rec.LowerRight,
				UpperLeft: NONE, UpperRight: NONE,
			})
			d.setLeafObject(belowLeaf, belowTrap)
			m.patchNeighborMirror(rec.LowerLeft, dirLowerRight, belowTrap)
			belowBottomKey = rec.Bottom
			belowOpen = true
		}

		d.Nodes[rec.oldLeaf] = yNode(segIdx, aboveLeaf, belowLeaf)

		if i == len(records)-1 {
			m.trapezoids[aboveTrap].RightPoint = rec.RightPoint
			m.trapezoids[aboveTrap].UpperRight = rec.UpperRight
			m.patchNeighborMirror(rec.UpperRight, dirUpperLeft, aboveTrap)

			m.trapezoids[belowTrap].RightPoint = rec.RightPoint
			m.trapezoids[belowTrap].LowerRight = rec.LowerRight
			m.patchNeighborMirror(rec.LowerRight, dirLowerLeft, belowTrap)
		}
	}

	// Any end-split sliver is wired entirely by the generic mirror-patching
	// above: to the per-position loop it's indistinguishable from any other
	// pre-existing neighbor, since splitAtPoint recorded it in the run's own
	// UpperLeft/LowerLeft (first position) or UpperRight/LowerRight (last
	// position) fields before this loop ran.
}
