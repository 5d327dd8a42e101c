package texture

import "github.com/trevday/rust-raytracer/pkg/core"

// Noise maps raw Perlin noise (rescaled to [0, 1]) to grayscale.
type Noise struct {
	perlin *core.Perlin
	Scale  float32
}

func NewNoise(seed int64, scale float32) *Noise {
	return &Noise{perlin: core.NewPerlin(seed), Scale: scale}
}

func (n *Noise) Value(u, v float32, p core.Point3) core.Vector3 {
	scaled := core.NewPoint3(p.X*n.Scale, p.Y*n.Scale, p.Z*n.Scale)
	grey := 0.5 * (1 + n.perlin.Noise(scaled))
	return core.NewVector3(grey, grey, grey)
}

// Turbulence maps fractal-sum Perlin turbulence through a sine-marbling
// function, the classic "marble" procedural pattern.
type Turbulence struct {
	perlin *core.Perlin
	Scale  float32
	Depth  int
	Omega  float32
}

func NewTurbulence(seed int64, scale float32, depth int, omega float32) *Turbulence {
	return &Turbulence{perlin: core.NewPerlin(seed), Scale: scale, Depth: depth, Omega: omega}
}

func (t *Turbulence) Value(u, v float32, p core.Point3) core.Vector3 {
	scaled := core.NewPoint3(p.X*t.Scale, p.Y*t.Scale, p.Z*t.Scale)
	turb := t.perlin.Turb(scaled, t.Depth, t.Omega)
	grey := 0.5 * (1 + sinSign(p.Z*t.Scale+10*turb))
	return core.NewVector3(grey, grey, grey)
}
