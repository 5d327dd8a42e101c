package geometry

import (
	"math"
	"sort"

	"github.com/trevday/rust-raytracer/pkg/core"
)

// bvhNode is one entry of the BVH's flat, pre-order depth-first array.
// An interior node's left child is implicit at index+1; its right child
// is at index+RightOffset. A leaf node carries its own small shape list
// (and RightOffset is unused, left zero) instead of children.
type bvhNode struct {
	Box         core.AABB
	CutAxis     core.Axis
	RightOffset int
	Shapes      []core.Shape // non-nil only for leaves
}

// BVH is a Surface Area Heuristic bounding volume hierarchy stored as a
// flat, pre-order depth-first array of nodes, per 4.G. Grounded on
// original_source/aggregate.rs's new_bvh/new_bvh_helper and its
// iterative hit routine; this replaces the teacher's pointer-tree,
// fixed-leaf-threshold, median-split pkg/geometry/bvh.go, which neither
// computes a SAH cost nor exposes a reusable traversal workspace.
type BVH struct {
	Nodes []bvhNode
}

// leafMaxShapes is the cutoff at or below which recursion always emits a leaf
// rather than evaluating a split, per 4.G step 2.
const leafMaxShapes = 2

// NewBVH builds a BVH over shapes using the Surface Area Heuristic.
// The input slice is not mutated; a copy is sorted internally.
func NewBVH(shapes []core.Shape) *BVH {
	nodes := make([]bvhNode, 0, 2*len(shapes)+1)
	if len(shapes) > 0 {
		cp := make([]core.Shape, len(shapes))
		copy(cp, shapes)
		buildBVH(&nodes, cp)
	}
	return &BVH{Nodes: nodes}
}

func buildBVH(nodes *[]bvhNode, shapes []core.Shape) {
	totalBounds := core.EmptyAABB()
	for _, sh := range shapes {
		totalBounds = totalBounds.Union(sh.BoundingBox())
	}

	if len(shapes) <= leafMaxShapes {
		*nodes = append(*nodes, bvhNode{Box: totalBounds, Shapes: shapes})
		return
	}

	centroidBounds := core.EmptyAABB()
	for _, sh := range shapes {
		centroidBounds = centroidBounds.UnionPoint(sh.BoundingBox().Center())
	}
	axis := centroidBounds.LongestAxis()
	if centroidBounds.Max.Component(axis) == centroidBounds.Min.Component(axis) {
		*nodes = append(*nodes, bvhNode{Box: totalBounds, Shapes: shapes})
		return
	}

	sort.Slice(shapes, func(i, j int) bool {
		ci := shapes[i].BoundingBox().Center().Component(axis)
		cj := shapes[j].BoundingBox().Center().Component(axis)
		return ci < cj
	})

	// Suffix-union bounds (right side), computed once in O(n), then
	// walked forward while accumulating the prefix (left side) union
	// incrementally so each split's SAH cost is O(1) to evaluate.
	reverseBounds := make([]core.AABB, len(shapes))
	reverseBounds[len(shapes)-1] = shapes[len(shapes)-1].BoundingBox()
	for i := len(shapes) - 2; i >= 0; i-- {
		reverseBounds[i] = shapes[i].BoundingBox().Union(reverseBounds[i+1])
	}

	forwardBounds := core.EmptyAABB()
	minCost := float32(math.MaxFloat32)
	minCostIndex := 0
	totalArea := totalBounds.SurfaceArea()
	for i := 0; i < len(shapes)-1; i++ {
		forwardBounds = forwardBounds.Union(shapes[i].BoundingBox())
		cost := 1 +
			(forwardBounds.SurfaceArea()/totalArea)*float32(i+1) +
			(reverseBounds[i+1].SurfaceArea()/totalArea)*float32(len(shapes)-(i+1))
		if cost < minCost {
			minCost = cost
			minCostIndex = i
		}
	}

	if minCost >= float32(len(shapes)) {
		*nodes = append(*nodes, bvhNode{Box: totalBounds, Shapes: shapes})
		return
	}

	nodeIdx := len(*nodes)
	*nodes = append(*nodes, bvhNode{}) // placeholder, patched below
	buildBVH(nodes, shapes[:minCostIndex+1])
	(*nodes)[nodeIdx] = bvhNode{
		Box:         totalBounds,
		CutAxis:     axis,
		RightOffset: len(*nodes) - nodeIdx,
	}
	buildBVH(nodes, shapes[minCostIndex+1:])
}

func (b *BVH) BoundingBox() core.AABB {
	if len(b.Nodes) == 0 {
		return core.EmptyAABB()
	}
	return b.Nodes[0].Box
}

// NodeCount returns the size of the flat node array, used to size a
// per-worker traversal Workspace.
func (b *BVH) NodeCount() int { return len(b.Nodes) }

// NewWorkspace allocates a traversal Workspace pre-sized to this BVH's
// node count, per 4.G's "reusable traversal workspace". One per worker
// goroutine; never shared.
func (b *BVH) NewWorkspace() *core.Workspace {
	return core.NewWorkspace(len(b.Nodes))
}

// HitClosest iteratively traverses the flat node array using ws as the
// explore stack, pushing the near child last so it is popped first and its hits prune
// deeper traversal sooner. Grounded on original_source/aggregate.rs's
// BVH::hit.
func (b *BVH) HitClosest(ray core.Ray, tMin, tMax float32, ws *core.Workspace, s core.Sampler) (core.HitRecord, bool) {
	if len(b.Nodes) == 0 {
		return core.HitRecord{}, false
	}

	ws.Reset()
	ws.Push(0)

	var best core.HitRecord
	hitAnything := false
	closest := tMax

	for !ws.Empty() {
		idx := ws.Pop()
		node := &b.Nodes[idx]
		if !node.Box.Hit(ray, tMin, closest) {
			continue
		}

		if node.Shapes != nil {
			if rec, ok := hitClosestScan(node.Shapes, ray, tMin, closest, s); ok {
				closest = rec.T
				best = rec
				hitAnything = true
			}
			continue
		}

		left := idx + 1
		right := idx + node.RightOffset
		if ray.Direction.Component(node.CutAxis) < 0 {
			ws.Push(left)
			ws.Push(right)
		} else {
			ws.Push(right)
			ws.Push(left)
		}
	}

	return best, hitAnything
}
