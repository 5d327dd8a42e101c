package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trevday/rust-raytracer/pkg/core"
)

func TestCamera_ZeroApertureProducesDeterministicRay(t *testing.T) {
	cam := NewCamera(
		core.NewPoint3(0, 0, 0),
		core.NewPoint3(0, 0, -1),
		core.NewVector3(0, 1, 0),
		90, 1, 0, 1,
	)
	sampler := core.NewRNGSampler(1)

	r1 := cam.GetRay(0.5, 0.5, sampler)
	r2 := cam.GetRay(0.5, 0.5, sampler)
	// Zero aperture means the lens-disk sample never perturbs origin.
	assert.Equal(t, r1.Origin, r2.Origin)
	assert.Equal(t, core.NewPoint3(0, 0, 0), r1.Origin)
}

func TestCamera_CenterRayPointsTowardLookAt(t *testing.T) {
	cam := NewCamera(
		core.NewPoint3(0, 0, 0),
		core.NewPoint3(0, 0, -1),
		core.NewVector3(0, 1, 0),
		90, 1, 0, 1,
	)
	sampler := core.NewRNGSampler(1)
	r := cam.GetRay(0.5, 0.5, sampler)
	dir := r.Direction.Normalize()
	assert.InDelta(t, 0, dir.X, 1e-4)
	assert.InDelta(t, 0, dir.Y, 1e-4)
	assert.Less(t, dir.Z, float32(0))
}

func TestCamera_NonZeroApertureJittersOrigin(t *testing.T) {
	cam := NewCamera(
		core.NewPoint3(0, 0, 0),
		core.NewPoint3(0, 0, -1),
		core.NewVector3(0, 1, 0),
		90, 1, 2.0, 1,
	)
	sampler := core.NewRNGSampler(42)
	r1 := cam.GetRay(0.5, 0.5, sampler)
	r2 := cam.GetRay(0.5, 0.5, sampler)
	assert.NotEqual(t, r1.Origin, r2.Origin)
}
