package trapmap

// NodeKind tags the variant a Node currently holds. A Node is one slot in
// the search DAG's arena; which fields of Object/LeftChild/RightChild are
// meaningful depends entirely on Kind.
type NodeKind uint8

const (
	// NodeX tests a point's x-coordinate against Object (a point index).
	NodeX NodeKind = iota
	// NodeY tests a point's side of Object (a segment index).
	NodeY
	// NodeLeaf holds Object (a trapezoid index) and no children.
	NodeLeaf
)

func (k NodeKind) String() string {
	switch k {
	case NodeX:
		return "X"
	case NodeY:
		return "Y"
	case NodeLeaf:
		return "Leaf"
	default:
		return "?"
	}
}

// Node is one slot of the search DAG. For an X-node, LeftChild is the
// subtree for points strictly left of the point at Object and RightChild is
// the subtree for points right-or-equal. For a Y-node, LeftChild is the
// subtree for points strictly above the segment at Object and RightChild is
// for points on or below it. A leaf has both children NONE.
type Node struct {
	Kind       NodeKind
	Object     Index
	LeftChild  Index
	RightChild Index
}

func leafNode(trapezoid Index) Node {
	return Node{Kind: NodeLeaf, Object: trapezoid, LeftChild: NONE, RightChild: NONE}
}

func xNode(point Index, left, right Index) Node {
	return Node{Kind: NodeX, Object: point, LeftChild: left, RightChild: right}
}

func yNode(segment Index, above, below Index) Node {
	return Node{Kind: NodeY, Object: segment, LeftChild: above, RightChild: below}
}

// IsLeaf reports whether this node is a leaf, i.e. addresses a trapezoid
// rather than testing a point or segment.
func (n Node) IsLeaf() bool {
	return n.Kind == NodeLeaf
}
