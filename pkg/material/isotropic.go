package material

import "github.com/trevday/rust-raytracer/pkg/core"

// Isotropic is a volume phase function: scatters uniformly over the
// unit sphere regardless of incoming direction, used by ConstantMedium.
// Grounded on original_source/material.rs's Isotropic variant, which the
// teacher repo has no equivalent of.
type Isotropic struct {
	Albedo core.Texture
}

func NewIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (i *Isotropic) Emit(ray core.Ray, hit core.HitRecord) (core.Vector3, bool) {
	return core.Vector3{}, false
}

func (i *Isotropic) IsImportant() bool { return false }

func (i *Isotropic) Scatter(ray core.Ray, hit core.HitRecord, s core.Sampler) (core.ScatterResult, bool) {
	direction := core.RandomUnitVector(s)
	return core.ScatterResult{
		Specular:    true,
		SpecularRay: core.NewRay(hit.Point, direction),
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
