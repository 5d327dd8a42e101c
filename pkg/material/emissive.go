package material

import "github.com/trevday/rust-raytracer/pkg/core"

// DiffuseLight emits a texture-driven color and never scatters.
// Grounded on the teacher's pkg/material/emissive.go.
type DiffuseLight struct {
	Emission core.Texture
}

func NewDiffuseLight(emission core.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

func (d *DiffuseLight) Emit(ray core.Ray, hit core.HitRecord) (core.Vector3, bool) {
	if !hit.FrontFace {
		return core.Vector3{}, false
	}
	return d.Emission.Value(hit.U, hit.V, hit.Point), true
}

func (d *DiffuseLight) IsImportant() bool { return true }

func (d *DiffuseLight) Scatter(ray core.Ray, hit core.HitRecord, s core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}
