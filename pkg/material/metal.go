package material

import "github.com/trevday/rust-raytracer/pkg/core"

// Metal is a perfect mirror reflection about the normal, jittered by
// Roughness * (random point in the unit sphere), as in the teacher's
// pkg/material/metal.go. Attenuation is Albedo directly (no 1/pi
// factor, since reflection isn't area-integrated the way Lambertian's
// PDF-based scattering is).
type Metal struct {
	Albedo    core.Vector3
	Roughness float32 // 0 = perfect mirror, up to 1 = heavily jittered
	Bump      core.Texture
}

func NewMetal(albedo core.Vector3, roughness float32) *Metal {
	if roughness < 0 {
		roughness = 0
	}
	if roughness > 1 {
		roughness = 1
	}
	return &Metal{Albedo: albedo, Roughness: roughness}
}

func (m *Metal) Emit(ray core.Ray, hit core.HitRecord) (core.Vector3, bool) {
	return core.Vector3{}, false
}

// IsImportant: a metal with nonzero roughness still behaves enough like
// a delta distribution that it's worth importance-sampling as a
// specular-style bounce rather than leaving it to chance.
func (m *Metal) IsImportant() bool { return true }

func (m *Metal) Scatter(ray core.Ray, hit core.HitRecord, s core.Sampler) (core.ScatterResult, bool) {
	normal := applyBump(m.Bump, hit)
	reflected := ray.Direction.Normalize().ReflectAbout(normal)
	if m.Roughness > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(s).Scale(m.Roughness))
	}
	if reflected.Dot(normal) <= 0 {
		return core.ScatterResult{}, false // absorbed below the surface
	}
	return core.ScatterResult{
		Specular:    true,
		SpecularRay: core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}
