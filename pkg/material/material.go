// Package material implements the Lambertian, Metal, Dielectric,
// DiffuseLight and Isotropic material variants defined by
// core.Material. Grounded on the teacher's pkg/material/*.go for the
// Go interface shape, simplified to drop the separate EvaluateBRDF/PDF
// split the teacher added for bidirectional transport (out of scope
// here), and on original_source/material.rs for Isotropic, which the
// teacher has no equivalent of.
package material

import (
	"github.com/trevday/rust-raytracer/pkg/core"
	"github.com/trevday/rust-raytracer/pkg/pdf"
)

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// applyBump perturbs the shading normal using finite differences of a
// bump texture's scalar value at (u, v, p), (u+delta, v, p+delta*DPDU)
// and (u, v+delta, p+delta*DPDV) in the hit's tangent frame, per the
// Lambertian bump-mapping contract.
func applyBump(bump core.Texture, hit core.HitRecord) core.Vector3 {
	if bump == nil {
		return hit.Normal
	}
	const delta = 0.005
	base := bumpScalar(bump, hit.U, hit.V, hit.Point)
	du := bumpScalar(bump, hit.U+delta, hit.V, hit.Point.Add(hit.DPDU.Scale(delta))) - base
	dv := bumpScalar(bump, hit.U, hit.V+delta, hit.Point.Add(hit.DPDV.Scale(delta))) - base

	perturbed := hit.Normal.Sub(hit.DPDU.Scale(du / delta)).Sub(hit.DPDV.Scale(dv / delta))
	if perturbed.IsZero() {
		return hit.Normal
	}
	return perturbed.Normalize()
}

func bumpScalar(t core.Texture, u, v float32, p core.Point3) float32 {
	return t.Value(clamp01(u), clamp01(v), p).Luminance()
}

// Lambertian is a diffuse material: cosine-weighted scattering PDF
// around the (optionally bump-perturbed) normal, with attenuation from
// Albedo. The 1/pi normalization lives in the cosine PDF's Value, not
// baked into Albedo, so attenuation is just the raw albedo color.
type Lambertian struct {
	Albedo core.Texture
	Bump   core.Texture // optional; nil disables bump mapping
}

func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (l *Lambertian) Emit(ray core.Ray, hit core.HitRecord) (core.Vector3, bool) {
	return core.Vector3{}, false
}

func (l *Lambertian) IsImportant() bool { return false }

func (l *Lambertian) Scatter(ray core.Ray, hit core.HitRecord, s core.Sampler) (core.ScatterResult, bool) {
	normal := applyBump(l.Bump, hit)
	return core.ScatterResult{
		Specular:    false,
		PDF:         pdf.NewCosine(normal),
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
