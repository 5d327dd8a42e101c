package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABB_UnionIdempotentCommutative(t *testing.T) {
	a := NewAABBFromPoints(NewPoint3(0, 0, 0), NewPoint3(1, 1, 1))
	b := NewAABBFromPoints(NewPoint3(-1, 0, 0), NewPoint3(2, 2, 2))

	assert.Equal(t, a, a.Union(a))
	assert.Equal(t, a.Union(b), b.Union(a))
}

func TestAABB_Hit_AxisAlignedThroughOffCenterBox(t *testing.T) {
	box := NewAABBFromPoints(NewPoint3(1, -1, -1), NewPoint3(3, 1, 1))
	ray := NewRay(NewPoint3(2, 0, -5), NewVector3(0, 0, 1))
	assert.True(t, box.Hit(ray, 0.001, 1e30))
}

func TestAABB_Hit_MissesWhenParallelAndOutsideSlab(t *testing.T) {
	box := NewAABBFromPoints(NewPoint3(-1, -1, -1), NewPoint3(1, 1, 1))
	ray := NewRay(NewPoint3(5, 5, -5), NewVector3(0, 0, 1))
	assert.False(t, box.Hit(ray, 0.001, 1e30))
}

func TestAABB_Hit_ConsistentWithSlabBounds(t *testing.T) {
	box := NewAABBFromPoints(NewPoint3(0, 0, 0), NewPoint3(1, 1, 1))
	ray := NewRay(NewPoint3(0.5, 0.5, -5), NewVector3(0, 0, 1))
	assert.True(t, box.Hit(ray, 0.001, 1e30))
	assert.False(t, box.Hit(ray, 10, 1e30))
}

func TestAABB_SurfaceArea(t *testing.T) {
	box := NewAABBFromPoints(NewPoint3(0, 0, 0), NewPoint3(2, 2, 2))
	assert.InDelta(t, 24, box.SurfaceArea(), 1e-5)
}
