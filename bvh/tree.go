package bvh

import (
	"fmt"

	"github.com/Dezzmeister/ncollide/bounding"
	"github.com/Dezzmeister/ncollide/types"
)

// Tree is a bounding volume hierarchy produced by Build. Node 0 is the root
// and every node is stored before its children.
type Tree[V Bound[V]] struct {
	Nodes []Node[V]

	// Item indices referenced by leaf nodes.
	Items []int

	// The item bounds, indexed by item.
	Bounds []V

	Stats Stats
}

// Root returns the root node or nil for an empty tree.
func (t *Tree[V]) Root() *Node[V] {
	if len(t.Nodes) == 0 {
		return nil
	}
	return &t.Nodes[0]
}

// Visit walks the tree depth-first, descending only into nodes whose bound
// is accepted, and calls visit for every accepted item. Traversal stops as
// soon as visit returns false.
func (t *Tree[V]) Visit(accept func(bound V) bool, visit func(item int) bool) {
	if len(t.Nodes) == 0 {
		return
	}

	stack := []uint32{0}
	for len(stack) > 0 {
		node := &t.Nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]

		if !accept(node.Bound) {
			continue
		}

		if !node.IsLeaf() {
			stack = append(stack, node.Right, node.Left)
			continue
		}

		for _, item := range t.Items[node.First : node.First+node.Count] {
			if accept(t.Bounds[item]) && !visit(item) {
				return
			}
		}
	}
}

// Query visits every item whose bound intersects q.
func (t *Tree[V]) Query(q V, visit func(item int) bool) {
	t.Visit(q.Intersects, visit)
}

// Containing visits every item whose bound contains q. Subtrees are pruned
// with the intersection test, which never rejects a containing bound.
func (t *Tree[V]) Containing(q V, visit func(item int) bool) {
	t.Visit(q.Intersects, func(item int) bool {
		if !t.Bounds[item].Contains(q) {
			return true
		}
		return visit(item)
	})
}

// Refit replaces the item bounds and recomputes every node bound bottom-up
// while keeping the tree topology.
func (t *Tree[V]) Refit(bounds []V) error {
	if len(bounds) != len(t.Bounds) {
		return fmt.Errorf("%w: tree has %d items; got %d bounds", ErrItemCountMismatch, len(t.Bounds), len(bounds))
	}
	copy(t.Bounds, bounds)

	// Children are always stored after their parent.
	for idx := len(t.Nodes) - 1; idx >= 0; idx-- {
		node := &t.Nodes[idx]
		if !node.IsLeaf() {
			node.Bound = t.Nodes[node.Left].Bound.Merged(t.Nodes[node.Right].Bound)
			continue
		}

		items := t.Items[node.First : node.First+node.Count]
		node.Bound = t.Bounds[items[0]]
		for _, item := range items[1:] {
			node.Bound = node.Bound.Merged(t.Bounds[item])
		}
	}
	return nil
}

// Validate checks that every node bound contains its children and items.
func (t *Tree[V]) Validate() error {
	for idx := range t.Nodes {
		node := &t.Nodes[idx]
		if !node.IsLeaf() {
			for _, child := range []uint32{node.Left, node.Right} {
				if int(child) <= idx || int(child) >= len(t.Nodes) {
					return fmt.Errorf("%w: node %d references child %d", ErrInvalidHierarchy, idx, child)
				}
				if !node.Bound.Contains(t.Nodes[child].Bound) {
					return fmt.Errorf("%w: node %d does not contain child %d", ErrInvalidHierarchy, idx, child)
				}
			}
			continue
		}

		for _, item := range t.Items[node.First : node.First+node.Count] {
			if !node.Bound.Contains(t.Bounds[item]) {
				return fmt.Errorf("%w: leaf %d does not contain item %d", ErrInvalidHierarchy, idx, item)
			}
		}
	}
	return nil
}

// Silhouette visits the items of a normal cone hierarchy whose normals may
// be perpendicular to the unit view direction, i.e. every item that can
// contribute a silhouette edge when looking along view.
func Silhouette(t *Tree[bounding.SpatializedNormalCone], view types.Vec3, visit func(item int) bool) {
	t.Visit(func(bound bounding.SpatializedNormalCone) bool {
		return bound.Normals.MayBePerpendicularTo(view)
	}, visit)
}

// SilhouetteWithin is Silhouette restricted to items whose spatial bound
// intersects region.
func SilhouetteWithin(t *Tree[bounding.SpatializedNormalCone], view types.Vec3, region bounding.AABB, visit func(item int) bool) {
	t.Visit(func(bound bounding.SpatializedNormalCone) bool {
		return bound.AABB.Intersects(region) && bound.Normals.MayBePerpendicularTo(view)
	}, visit)
}
