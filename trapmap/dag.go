package trapmap

import "github.com/fsanna/trapmap/geom"

// DAG is the search structure: a directed acyclic graph of X-nodes,
// Y-nodes, and leaves, stored as an append-only arena of Node values and
// addressed by index. Node 0 is always the root.
type DAG struct {
	Nodes []Node
}

// NewDAG returns a DAG whose sole node is a leaf referencing trapezoid 0 --
// the bounding box, before any segment has been inserted.
func NewDAG() *DAG {
	return &DAG{Nodes: []Node{leafNode(0)}}
}

// Clear resets the DAG back to its just-constructed state.
func (d *DAG) Clear() {
	d.Nodes = d.Nodes[:0]
	d.Nodes = append(d.Nodes, leafNode(0))
}

// newLeaf appends a fresh leaf node with the given trapezoid object and
// returns its index.
func (d *DAG) newLeaf(trapezoid Index) Index {
	idx := Index(len(d.Nodes))
	d.Nodes = append(d.Nodes, leafNode(trapezoid))
	return idx
}

// newInternal appends a fresh X- or Y-node and returns its index.
func (d *DAG) newInternal(n Node) Index {
	idx := Index(len(d.Nodes))
	d.Nodes = append(d.Nodes, n)
	return idx
}

// setLeafObject patches the trapezoid a leaf references. Used once the map
// has actually created the trapezoid the leaf was pre-allocated for.
func (d *DAG) setLeafObject(leaf, trapezoid Index) {
	d.Nodes[leaf].Object = trapezoid
}

// QueryLeaf descends from root to the leaf containing p, per (D) the
// standard X-node/Y-node traversal rules.
func (d *DAG) QueryLeaf(m *Map, p geom.Point) Index {
	return d.queryLeafFrom(m, 0, p)
}

func (d *DAG) queryLeafFrom(m *Map, root Index, p geom.Point) Index {
	cur := root
	for {
		n := d.Nodes[cur]
		switch n.Kind {
		case NodeLeaf:
			return cur
		case NodeX:
			if m.Point(n.Object).X > p.X {
				cur = n.LeftChild
			} else {
				cur = n.RightChild
			}
		case NodeY:
			seg := m.Segment(n.Object)
			if geom.IsPointStrictlyLeftOf(seg, p) {
				cur = n.LeftChild
			} else {
				cur = n.RightChild
			}
		default:
			throwInvariant("node %d has unknown kind %d", cur, n.Kind)
		}
		if cur == NONE {
			throwInvariant("descent fell off the DAG looking for %v", p)
		}
	}
}

// FindLeafForSegmentLeft descends exactly as QueryLeaf does, using the new
// segment's left endpoint as the query point, except that at a Y-node whose
// segment shares that same left endpoint the tie is broken by slope rather
// than by orientation (which would be degenerate at the shared point).
func (d *DAG) FindLeafForSegmentLeft(m *Map, seg geom.Segment) Index {
	left := seg.Oriented().Start
	cur := Index(0)
	for {
		n := d.Nodes[cur]
		switch n.Kind {
		case NodeLeaf:
			return cur
		case NodeX:
			if m.Point(n.Object).X > left.X {
				cur = n.LeftChild
			} else {
				cur = n.RightChild
			}
		case NodeY:
			existing := m.Segment(n.Object)
			existingLeft := existing.Oriented().Start
			if geom.Equal(existingLeft, left) {
				if geom.Slope(seg) > geom.Slope(existing) {
					cur = n.LeftChild
				} else {
					cur = n.RightChild
				}
			} else if geom.IsPointStrictlyLeftOf(existing, left) {
				cur = n.LeftChild
			} else {
				cur = n.RightChild
			}
		default:
			throwInvariant("node %d has unknown kind %d", cur, n.Kind)
		}
		if cur == NONE {
			throwInvariant("descent fell off the DAG looking for segment left endpoint %v", left)
		}
	}
}
