package material

import (
	"math"

	"github.com/trevday/rust-raytracer/pkg/core"
)

// Dielectric is a smooth refractive (glass) material: Schlick-Fresnel
// reflectance decides between reflection and refraction, and
// attenuation is always (1,1,1). Grounded on the teacher's
// pkg/material/dielectric.go for the reflect/refract/Schlick structure.
type Dielectric struct {
	RefractiveIndex float32
}

func NewDielectric(ior float32) *Dielectric {
	return &Dielectric{RefractiveIndex: ior}
}

func (d *Dielectric) Emit(ray core.Ray, hit core.HitRecord) (core.Vector3, bool) {
	return core.Vector3{}, false
}

func (d *Dielectric) IsImportant() bool { return true }

func (d *Dielectric) Scatter(ray core.Ray, hit core.HitRecord, s core.Sampler) (core.ScatterResult, bool) {
	var etaRatio float32
	if hit.FrontFace {
		etaRatio = 1 / d.RefractiveIndex
	} else {
		etaRatio = d.RefractiveIndex
	}

	unitDir := ray.Direction.Normalize()
	cosTheta := minf32(-unitDir.Dot(hit.Normal), 1)
	sinTheta := sqrtf(1 - cosTheta*cosTheta)

	cannotRefract := etaRatio*sinTheta > 1
	var direction core.Vector3
	if cannotRefract || reflectance(cosTheta, etaRatio) > s.Get1D() {
		direction = unitDir.ReflectAbout(hit.Normal)
	} else {
		refracted, ok := unitDir.Refract(hit.Normal, etaRatio)
		if !ok {
			direction = unitDir.ReflectAbout(hit.Normal)
		} else {
			direction = refracted
		}
	}

	return core.ScatterResult{
		Specular:    true,
		SpecularRay: core.NewRay(hit.Point, direction),
		Attenuation: core.NewVector3(1, 1, 1),
	}, true
}

// reflectance is the Schlick approximation to the Fresnel reflectance.
func reflectance(cosine, refIdx float32) float32 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*pow5(1-cosine)
}

func pow5(x float32) float32 { x2 := x * x; return x2 * x2 * x }

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func sqrtf(x float32) float32 {
	if x < 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}
