package trapmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeafNodeHasNoChildren(t *testing.T) {
	n := leafNode(7)
	assert.True(t, n.IsLeaf())
	assert.Equal(t, Index(7), n.Object)
	assert.Equal(t, NONE, n.LeftChild)
	assert.Equal(t, NONE, n.RightChild)
}

func TestXNodeHoldsPointAndChildren(t *testing.T) {
	n := xNode(3, 1, 2)
	assert.False(t, n.IsLeaf())
	assert.Equal(t, NodeX, n.Kind)
	assert.Equal(t, Index(3), n.Object)
	assert.Equal(t, Index(1), n.LeftChild)
	assert.Equal(t, Index(2), n.RightChild)
}

func TestYNodeHoldsSegmentAndChildren(t *testing.T) {
	n := yNode(5, 10, 20)
	assert.False(t, n.IsLeaf())
	assert.Equal(t, NodeY, n.Kind)
	assert.Equal(t, Index(5), n.Object)
	assert.Equal(t, Index(10), n.LeftChild)
	assert.Equal(t, Index(20), n.RightChild)
}

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "X", NodeX.String())
	assert.Equal(t, "Y", NodeY.String())
	assert.Equal(t, "Leaf", NodeLeaf.String())
}
