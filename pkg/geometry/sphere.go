package geometry

import (
	"math"

	"github.com/trevday/rust-raytracer/pkg/core"
)

// Sphere is a unit sphere of the given local radius placed in the scene
// by an object-to-world transform (identity for an untransformed
// sphere). Intersection is solved in local space per 4.E: for a local
// ray with origin o and direction d, a = d.d, b = 2*o.d,
// c = o.o - r^2; the world-space t parameter is preserved across the
// affine remap as long as the local direction is not renormalized.
// Grounded on the teacher's pkg/geometry/sphere.go for the half-b
// quadratic and UV parameterization, generalized with a transform per
// the data model ("carries object-to-world and its inverse") and with
// cone-sampling importance sampling added (the teacher has no
// importance-sampling support on Sphere; that comes from
// original_source/shape.rs instead).
type Sphere struct {
	ObjectToWorld core.Matrix4
	WorldToObject core.Matrix4
	Radius        float32
	Mat           core.Material

	// worldCenter/worldRadius are precomputed for importance sampling,
	// where exact object-space math isn't needed.
	worldCenter core.Point3
	worldRadius float32
}

// NewSphere builds a sphere directly in world space (identity transform).
func NewSphere(center core.Point3, radius float32, mat core.Material) *Sphere {
	return NewTransformedSphere(core.Translation(center.AsVector()), radius, mat)
}

// NewTransformedSphere builds a sphere whose local frame (unit sphere of
// the given radius, centered at the local origin) is placed by objectToWorld.
func NewTransformedSphere(objectToWorld core.Matrix4, radius float32, mat core.Material) *Sphere {
	inv, err := objectToWorld.Inverse()
	if err != nil {
		// A non-invertible placement transform is a load-time configuration
		// error; callers validate transforms before construction, so this
		// is a programmer error if reached.
		panic(err)
	}
	worldCenter := objectToWorld.MulPoint(core.NewPoint3(0, 0, 0))
	edge := objectToWorld.MulVector(core.NewVector3(radius, 0, 0)).Length()
	return &Sphere{
		ObjectToWorld: objectToWorld,
		WorldToObject: inv,
		Radius:        radius,
		Mat:           mat,
		worldCenter:   worldCenter,
		worldRadius:   edge,
	}
}

func (s *Sphere) Material() core.Material { return s.Mat }

func (s *Sphere) Hit(ray core.Ray, tMin, tMax float32, _ core.Sampler) (float32, bool) {
	o := s.WorldToObject.MulPoint(ray.Origin)
	d := s.WorldToObject.MulVector(ray.Direction)

	oc := o.AsVector()
	a := d.Dot(d)
	halfB := oc.Dot(d)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}
	sqrtD := sqrtf(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return 0, false
		}
	}
	return root, true
}

func (s *Sphere) HitProperties(ray core.Ray, t float32) core.HitRecord {
	localOrigin := s.WorldToObject.MulPoint(ray.Origin)
	localDir := s.WorldToObject.MulVector(ray.Direction)
	localHit := localOrigin.Add(localDir.Scale(t))

	localNormal := localHit.AsVector().Scale(1 / s.Radius)
	worldNormalUnnorm := s.WorldToObject.Transpose().MulVector(localNormal)

	u := 1 - (atan2f(localHit.Z, localHit.X)+core.Pi)/(2*core.Pi)
	v := (asinf(clampf(localHit.Y/s.Radius, -1, 1)) + core.Pi/2) / core.Pi

	// u = 1 - (phi+pi)/(2pi) with phi = atan2(z, x), so dphi/du = -2pi;
	// v = (theta+pi/2)/pi with theta = asin(y/r), so dtheta/dv = pi.
	dpdu := core.NewVector3(2*core.Pi*localHit.Z, 0, -2*core.Pi*localHit.X)
	var dpdv core.Vector3 // left zero at the poles, where phi is undefined
	if rho := sqrtf(localHit.X*localHit.X + localHit.Z*localHit.Z); rho > 0 {
		cosPhi, sinPhi := localHit.X/rho, localHit.Z/rho
		dpdv = core.NewVector3(-localHit.Y*cosPhi, rho, -localHit.Y*sinPhi).Scale(core.Pi)
	}

	rec := core.HitRecord{
		T:     t,
		Point: ray.At(t),
		U:     clampf(u, 0, 1),
		V:     clampf(v, 0, 1),
		DPDU:  s.ObjectToWorld.MulVector(dpdu),
		DPDV:  s.ObjectToWorld.MulVector(dpdv),
		Material: s.Mat,
	}
	rec.SetFaceNormal(ray, worldNormalUnnorm.Normalize())
	return rec
}

func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVector3(s.worldRadius, s.worldRadius, s.worldRadius)
	return core.AABB{Min: s.worldCenter.Add(r.Negate()), Max: s.worldCenter.Add(r)}
}

// PDFValue is the cone-sampling solid-angle density; 0 if origin is
// inside the sphere (no well-defined cone) or the ray misses it.
func (s *Sphere) PDFValue(origin core.Point3, direction core.Vector3) float32 {
	distSq := origin.DistanceSquared(s.worldCenter)
	if distSq <= s.worldRadius*s.worldRadius {
		return 0
	}
	ray := core.NewRay(origin, direction)
	if _, ok := s.Hit(ray, core.T_MIN, 1e30, nil); !ok {
		return 0
	}
	return core.SphereConePDF(s.worldRadius, distSq)
}

func (s *Sphere) RandomDirTowards(origin core.Point3, samp core.Sampler) core.Vector3 {
	toCenter := s.worldCenter.Sub(origin)
	distSq := toCenter.LengthSquared()
	basis := core.NewONBFromW(toCenter)
	local := core.RandomToSphereCone(s.worldRadius, distSq, samp)
	return basis.Local(local)
}

func sqrtf(x float32) float32 {
	if x < 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}
func atan2f(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }
func asinf(x float32) float32     { return float32(math.Asin(float64(x))) }
func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
