package geometry

import "github.com/trevday/rust-raytracer/pkg/core"

// List is the simplest core.Aggregate: an unordered linear scan over its
// shapes, keeping only the closest hit found so far. It's also reused by
// BVH as the leaf-level scan once traversal has narrowed down to a small
// shape range, per the teacher's pkg/geometry/hittable_list.go.
type List struct {
	Shapes []core.Shape
	box    core.AABB
}

func NewList(shapes []core.Shape) *List {
	box := core.EmptyAABB()
	for _, sh := range shapes {
		box = box.Union(sh.BoundingBox())
	}
	return &List{Shapes: shapes, box: box}
}

func (l *List) BoundingBox() core.AABB { return l.box }

func (l *List) HitClosest(ray core.Ray, tMin, tMax float32, ws *core.Workspace, s core.Sampler) (core.HitRecord, bool) {
	return hitClosestScan(l.Shapes, ray, tMin, tMax, s)
}

// hitClosestScan is the shared linear-scan closest-hit routine used by
// List and by BVH leaf nodes: for each shape, tighten tMax to the
// closest root found so only nearer hits can subsequently match.
func hitClosestScan(shapes []core.Shape, ray core.Ray, tMin, tMax float32, s core.Sampler) (core.HitRecord, bool) {
	var best core.HitRecord
	hitAnything := false
	closest := tMax
	for _, sh := range shapes {
		if t, ok := sh.Hit(ray, tMin, closest, s); ok {
			closest = t
			best = sh.HitProperties(ray, t)
			hitAnything = true
		}
	}
	return best, hitAnything
}
