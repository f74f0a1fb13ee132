package bvh

// Bvh node definition. Nodes are stored as a contiguous list; a node is
// either an inner node referencing two children or a leaf referencing a
// contiguous run of the tree's item list.
type Node[V any] struct {
	// The bound enclosing every item below this node.
	Bound V

	// Indices of the left and right child nodes. Unused by leaves.
	Left, Right uint32

	// For leaves: index of the first item in Tree.Items and the number of
	// items in the leaf.
	First, Count uint32

	leaf bool
}

// IsLeaf returns true if the node references items rather than children.
func (n *Node[V]) IsLeaf() bool {
	return n.leaf
}

// Set the child node indices and mark the node as an inner node.
func (n *Node[V]) SetChildNodes(left, right uint32) {
	n.Left = left
	n.Right = right
	n.leaf = false
}

// Set the item range and mark the node as a leaf.
func (n *Node[V]) SetItems(first, count uint32) {
	n.First = first
	n.Count = count
	n.leaf = true
}
