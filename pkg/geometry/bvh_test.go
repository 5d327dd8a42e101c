package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trevday/rust-raytracer/pkg/core"
	"github.com/trevday/rust-raytracer/pkg/material"
	"github.com/trevday/rust-raytracer/pkg/texture"
)

func sphereGrid(n int) []core.Shape {
	mat := material.NewLambertian(texture.NewConstant(core.NewVector3(0.5, 0.5, 0.5)))
	shapes := make([]core.Shape, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			center := core.NewPoint3(float32(i)*2, float32(j)*2, 0)
			shapes = append(shapes, NewSphere(center, 0.4, mat))
		}
	}
	return shapes
}

func TestBVH_EveryShapeInExactlyOneLeaf(t *testing.T) {
	shapes := sphereGrid(5)
	bvh := NewBVH(shapes)

	total := 0
	for _, n := range bvh.Nodes {
		if n.Shapes != nil {
			total += len(n.Shapes)
			assert.LessOrEqual(t, len(n.Shapes), leafMaxShapes)
		}
	}
	assert.Equal(t, len(shapes), total)
}

func TestBVH_InteriorBoxContainsChildren(t *testing.T) {
	shapes := sphereGrid(5)
	bvh := NewBVH(shapes)

	for i, n := range bvh.Nodes {
		if n.Shapes != nil {
			continue
		}
		left := bvh.Nodes[i+1].Box
		right := bvh.Nodes[i+n.RightOffset].Box
		assert.True(t, containsBox(n.Box, left))
		assert.True(t, containsBox(n.Box, right))
	}
}

func containsBox(outer, inner core.AABB) bool {
	eps := float32(1e-4)
	return inner.Min.X >= outer.Min.X-eps && inner.Min.Y >= outer.Min.Y-eps && inner.Min.Z >= outer.Min.Z-eps &&
		inner.Max.X <= outer.Max.X+eps && inner.Max.Y <= outer.Max.Y+eps && inner.Max.Z <= outer.Max.Z+eps
}

func TestBVH_ClosestHitAgreesWithList(t *testing.T) {
	shapes := sphereGrid(6)
	list := NewList(shapes)
	bvh := NewBVH(shapes)
	ws := bvh.NewWorkspace()
	sampler := core.NewRNGSampler(7)

	rays := []core.Ray{
		core.NewRay(core.NewPoint3(2, 2, -10), core.NewVector3(0, 0, 1)),
		core.NewRay(core.NewPoint3(-5, -5, -10), core.NewVector3(0.1, 0.1, 1)),
		core.NewRay(core.NewPoint3(50, 50, 50), core.NewVector3(1, 1, 1)),
	}
	for _, ray := range rays {
		listHit, listOK := list.HitClosest(ray, core.T_MIN, core.T_MAX, nil, sampler)
		bvhHit, bvhOK := bvh.HitClosest(ray, core.T_MIN, core.T_MAX, ws, sampler)
		require.Equal(t, listOK, bvhOK)
		if listOK {
			assert.InDelta(t, listHit.T, bvhHit.T, 1e-3)
		}
	}
}

func TestBVH_EmptyShapeListHasNoNodes(t *testing.T) {
	bvh := NewBVH(nil)
	assert.Equal(t, 0, bvh.NodeCount())
	_, ok := bvh.HitClosest(core.NewRay(core.NewPoint3(0, 0, 0), core.NewVector3(0, 0, 1)), core.T_MIN, core.T_MAX, bvh.NewWorkspace(), nil)
	assert.False(t, ok)
}
