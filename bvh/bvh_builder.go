package bvh

import (
	"math"
	"time"

	"github.com/Dezzmeister/ncollide/bounding"
	"github.com/Dezzmeister/ncollide/log"
	"github.com/Dezzmeister/ncollide/types"
)

type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis

	// The BVH builder will not attempt to calculate split candidates
	// if the spread of item centers along an axis is less than this threshold.
	minSideLength float32 = 1e-3

	// If the split step (calculated as side length / (1024 / (depth+1)))
	// is less than this threshold the BVH builder will not evaluate
	// split candidates.
	minSplitStep float32 = 1e-5
)

// The Bound interface is implemented by every bounding volume that can be
// partitioned by the bvh builder.
type Bound[V any] interface {
	bounding.Volume[V]

	// SurfaceArea measures the spatial extent of the bound for scoring splits.
	SurfaceArea() float32
}

// A callback that is called whenever the BVH builder creates a new leaf.
// The items argument lists the indices of the bounds stored in the leaf.
type LeafCallback[V any] func(leaf *Node[V], items []int)

// A split scoring strategy.
type ScoreStrategy[V any] interface {
	// Calculate a score for splitting workList at splitPoint along a particular Axis.
	ScoreSplit(workList []V, splitAxis Axis, splitPoint float32) (leftCount, rightCount int, score float32)

	// Calculate a score for all items in workList.
	ScorePartition(workList []V) (score float32)
}

type splitScore struct {
	axis       Axis
	splitPoint float32

	leftCount, rightCount int
	score                 float32
}

// Stats summarizes the shape of a built tree.
type Stats struct {
	Items    int
	Nodes    int
	Leafs    int
	MaxDepth int
}

type workItem[V any] struct {
	index int
	bound V
}

type builder[V Bound[V]] struct {
	logger log.Logger

	// Bvh nodes stored as a contiguous list
	nodes []Node[V]

	// Item indices; items belonging to a leaf are packed sequentially.
	items []int

	// A callback invoked whenever a leaf is created.
	leafCb LeafCallback[V]

	// The minimum number of items that are required for creating a leaf.
	minLeafItems int

	// A channel for receiving score results.
	scoreChan chan splitScore

	// The split scoring strategy to use.
	scoreStrategy ScoreStrategy[V]

	stats Stats
}

// Construct a BVH from a set of bounds.
//
// Parent bounds are computed bottom-up by merging the bounds of their two
// children, so every node contains the nodes and items below it.
//
// The minLeafItems param should be used to specified the minimum number of
// items that can form a leaf. The BVH builder will automatically generate leafs
// if the incoming work length is <= minLeafItems. The leafCb may be nil.
func Build[V Bound[V]](workList []V, minLeafItems int, leafCb LeafCallback[V], scoreStrategy ScoreStrategy[V]) *Tree[V] {
	b := &builder[V]{
		logger:        log.New("bvh"),
		nodes:         make([]Node[V], 0),
		items:         make([]int, 0, len(workList)),
		leafCb:        leafCb,
		minLeafItems:  minLeafItems,
		scoreChan:     make(chan splitScore, 0),
		scoreStrategy: scoreStrategy,
		stats: Stats{
			Items: len(workList),
		},
	}

	tree := &Tree[V]{
		Bounds: append([]V(nil), workList...),
	}
	if len(workList) == 0 {
		return tree
	}

	items := make([]workItem[V], len(workList))
	for idx, bound := range workList {
		items[idx] = workItem[V]{index: idx, bound: bound}
	}

	start := time.Now()
	b.partition(items, 0)
	b.logger.Debugf(
		"BVH tree build time: %d ms, items: %d, maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		b.stats.Items, b.stats.MaxDepth, b.stats.Nodes, b.stats.Leafs,
	)

	tree.Nodes = b.nodes
	tree.Items = b.items
	tree.Stats = b.stats
	return tree
}

// Partition worklist and return node index.
func (b *builder[V]) partition(workList []workItem[V], depth int) uint32 {
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}

	// Do we have enough items for partitioning? If not create a leaf
	if len(workList) <= b.minLeafItems {
		return b.createLeaf(workList)
	}

	bounds := make([]V, len(workList))
	cmin := types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	cmax := types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for idx, item := range workList {
		bounds[idx] = item.bound
		center := item.bound.Center()
		cmin = types.MinVec3(cmin, center)
		cmax = types.MaxVec3(cmax, center)
	}

	// Calc current node score
	var bestScore float32 = b.scoreStrategy.ScorePartition(bounds)
	var bestSplit *splitScore = nil

	// Try partioning along each axis and select the split with best score
	pendingScores := 0

	// Run axis split tests in parallel
	side := cmax.Sub(cmin)
	for axis := XAxis; axis <= ZAxis; axis++ {
		// Skip axis if the item centers are too close together
		if side[axis] < minSideLength {
			continue
		}

		// Split steps grow coarser the deeper we go
		splitStep := side[axis] / (1024.0 / float32(depth+1))
		if splitStep < minSplitStep {
			continue
		}

		for splitPoint := cmin[axis] + splitStep; splitPoint < cmax[axis]; splitPoint += splitStep {
			pendingScores++
			go func(axis Axis, splitPoint float32) {
				lCount, rCount, score := b.scoreStrategy.ScoreSplit(bounds, axis, splitPoint)
				b.scoreChan <- splitScore{
					axis:       axis,
					splitPoint: splitPoint,

					leftCount:  lCount,
					rightCount: rCount,
					score:      score,
				}
			}(axis, splitPoint)
		}
	}

	// Process all scores and pick the best split
	for ; pendingScores > 0; pendingScores-- {
		candidate := <-b.scoreChan
		if candidate.score < bestScore {
			bestScore = candidate.score
			bestSplit = &candidate
		}
	}

	// If we can't find a split that improves the current node score create a leaf
	if bestSplit == nil {
		return b.createLeaf(workList)
	}

	// split work list into two sets
	leftWorkList := make([]workItem[V], 0, bestSplit.leftCount)
	rightWorkList := make([]workItem[V], 0, bestSplit.rightCount)
	for _, item := range workList {
		center := item.bound.Center()
		if center[bestSplit.axis] < bestSplit.splitPoint {
			leftWorkList = append(leftWorkList, item)
		} else {
			rightWorkList = append(rightWorkList, item)
		}
	}

	// Add node to list
	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, Node[V]{})
	b.stats.Nodes++

	// Partition children and update node indices
	leftNodeIndex := b.partition(leftWorkList, depth+1)
	rightNodeIndex := b.partition(rightWorkList, depth+1)
	node := &b.nodes[nodeIndex]
	node.SetChildNodes(leftNodeIndex, rightNodeIndex)
	node.Bound = b.nodes[leftNodeIndex].Bound.Merged(b.nodes[rightNodeIndex].Bound)

	return uint32(nodeIndex)
}

// Setup a leaf node containing all items in the work list.
// Returns the index to the node in the bvh node array.
func (b *builder[V]) createLeaf(workList []workItem[V]) uint32 {
	node := Node[V]{Bound: workList[0].bound}
	node.SetItems(uint32(len(b.items)), uint32(len(workList)))

	for idx, item := range workList {
		if idx > 0 {
			node.Bound = node.Bound.Merged(item.bound)
		}
		b.items = append(b.items, item.index)
	}

	if b.leafCb != nil {
		b.leafCb(&node, b.items[node.First:])
	}

	// append node to list
	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, node)

	// update stats
	b.stats.Nodes++
	b.stats.Leafs++

	return uint32(nodeIndex)
}

// A score implementation that uses surface area heuristic for calculating split scores.
type surfaceAreaHeuristic[V Bound[V]] struct{}

// SurfaceAreaHeuristic returns a split scoring strategy based on the
// surface area heuristic (SAH).
func SurfaceAreaHeuristic[V Bound[V]]() ScoreStrategy[V] {
	return surfaceAreaHeuristic[V]{}
}

// Score a BVH split based on the surface area heuristic. The SAH calculates
// the split score using the formula (lower score is better):
//
// left count * left bound area + rightCount * right bound area.
//
// SAH avoids splits that generate empty partitions by assigning the worst
// possible score (MaxFloat32) when it enounters such cases.
func (h surfaceAreaHeuristic[V]) ScoreSplit(workList []V, axis Axis, splitPoint float32) (leftCount, rightCount int, score float32) {
	var left, right V

	for _, item := range workList {
		center := item.Center()
		if center[axis] < splitPoint {
			if leftCount == 0 {
				left = item
			} else {
				left = left.Merged(item)
			}
			leftCount++
		} else {
			if rightCount == 0 {
				right = item
			} else {
				right = right.Merged(item)
			}
			rightCount++
		}
	}

	// Make sure that we don't generate empty partitions
	if leftCount == 0 || rightCount == 0 {
		return leftCount, rightCount, math.MaxFloat32
	}

	score = float32(leftCount)*left.SurfaceArea() + float32(rightCount)*right.SurfaceArea()
	return leftCount, rightCount, score
}

// Calculate score for a partitioned workList using formula:
// count * bound area
//
// If the workList is empty, then this method returns the worst possible
// score (MaxFloat32).
func (h surfaceAreaHeuristic[V]) ScorePartition(workList []V) (score float32) {
	if len(workList) == 0 {
		return math.MaxFloat32
	}

	return float32(len(workList)) * bounding.MergeAll(workList[0], workList[1:]...).SurfaceArea()
}
