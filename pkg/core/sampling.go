package core

import "math"

const Pi = float32(math.Pi)

// RandomInUnitDisk returns a point uniformly distributed in the unit
// disk (z = 0), used by the thin-lens camera for aperture sampling.
func RandomInUnitDisk(s Sampler) Vector3 {
	for {
		u, v := s.Get2D()
		p := Vector3{2*u - 1, 2*v - 1, 0}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomCosineDirection returns a cosine-weighted direction around the
// given unit normal, used by Lambertian's scattering PDF.
func RandomCosineDirection(normal Vector3, s Sampler) Vector3 {
	u, v := s.Get2D()
	r1, r2 := u, v
	phi := 2 * Pi * r1
	sqrtR2 := sqrt32(r2)
	x := cos32(phi) * sqrtR2
	y := sin32(phi) * sqrtR2
	z := sqrt32(1 - r2)

	basis := NewONBFromW(normal)
	return basis.Local(Vector3{x, y, z})
}

func CosineDirectionPDF(normal, direction Vector3) float32 {
	cosTheta := direction.Normalize().Dot(normal)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / Pi
}

// RandomInUnitSphere returns a uniformly distributed point within the
// unit ball, used by Metal's fuzz jitter.
func RandomInUnitSphere(s Sampler) Vector3 {
	for {
		u, v := s.Get2D()
		w := s.Get1D()
		p := Vector3{2*u - 1, 2*v - 1, 2*w - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed direction on the unit
// sphere, used by Isotropic scattering.
func RandomUnitVector(s Sampler) Vector3 {
	u, v := s.Get2D()
	z := 1 - 2*u
	r := sqrt32(maxf(0, 1-z*z))
	phi := 2 * Pi * v
	return Vector3{r * cos32(phi), r * sin32(phi), z}
}

// RandomToSphereCone samples a direction within the cone subtending a
// sphere of the given radius as seen from a point at distanceSquared
// from its center, in the local frame where the cone axis is +Z.
func RandomToSphereCone(radius, distanceSquared float32, s Sampler) Vector3 {
	u, v := s.Get2D()
	cosThetaMax := sqrt32(maxf(0, 1-radius*radius/distanceSquared))
	z := 1 + v*(cosThetaMax-1)
	sinTheta := sqrt32(maxf(0, 1-z*z))
	phi := 2 * Pi * u
	return Vector3{cos32(phi) * sinTheta, sin32(phi) * sinTheta, z}
}

// SphereConePDF is the solid-angle density of the cone constructed by
// RandomToSphereCone.
func SphereConePDF(radius, distanceSquared float32) float32 {
	if distanceSquared <= radius*radius {
		return 0
	}
	cosThetaMax := sqrt32(maxf(0, 1-radius*radius/distanceSquared))
	solidAngle := 2 * Pi * (1 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}
	return 1 / solidAngle
}
