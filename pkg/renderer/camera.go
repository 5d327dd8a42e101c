// Package renderer implements the thin-lens Camera (4.I) and the
// parallel ticket-queue scheduler with its pixel accumulator and
// progress reporting (4.J and section 5).
package renderer

import (
	"math"

	"github.com/trevday/rust-raytracer/pkg/core"
)

// Camera is a thin-lens perspective camera: rays originate from a point
// sampled on a lens disk and aim at a point on the focal plane, so
// non-zero Aperture produces depth-of-field blur. Grounded on
// original_source/camera.rs; the teacher's pkg/renderer/camera.go is a
// fixed pinhole camera with no aperture/focus-distance and is not
// carried forward, since spec 4.I requires both.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vector3
	vertical        core.Vector3
	u, v            core.Vector3
	lensRadius      float32
}

// NewCamera builds a thin-lens camera. VerticalFOV is in degrees.
func NewCamera(pos, lookAt core.Point3, up core.Vector3, verticalFOV, aspect, aperture, focusDistance float32) *Camera {
	theta := verticalFOV * (core.Pi / 180)
	halfHeight := tan32(theta / 2)
	halfWidth := aspect * halfHeight

	w := pos.Sub(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	lowerLeftCorner := pos.
		Add(u.Scale(-halfWidth * focusDistance)).
		Add(v.Scale(-halfHeight * focusDistance)).
		Add(w.Scale(-focusDistance))

	return &Camera{
		origin:          pos,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Scale(2 * halfWidth * focusDistance),
		vertical:        v.Scale(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		lensRadius:      aperture / 2,
	}
}

// GetRay generates a ray through screen coordinates (s, t) in [0, 1],
// offset by a point sampled on the aperture disk.
func (c *Camera) GetRay(s, t float32, sampler core.Sampler) core.Ray {
	lensPoint := core.RandomInUnitDisk(sampler).Scale(c.lensRadius)
	offset := c.u.Scale(lensPoint.X).Add(c.v.Scale(lensPoint.Y))

	origin := c.origin.Add(offset)
	target := c.lowerLeftCorner.Add(c.horizontal.Scale(s)).Add(c.vertical.Scale(t))
	return core.NewRay(origin, target.Sub(origin))
}

func tan32(x float32) float32 { return float32(math.Tan(float64(x))) }
