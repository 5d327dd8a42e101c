// Package texture implements the Constant, Checker, Image, Noise and
// Turbulence texture variants, each mapping (u, v, p) to a color.
// Grounded on original_source/texture.rs for the variant set, and on the
// teacher's pkg/material/image_texture.go and color_source.go for Go
// method-receiver style.
package texture

import (
	"math"

	"github.com/trevday/rust-raytracer/pkg/core"
)

// Constant returns the same color everywhere, independent of uv or p.
type Constant struct {
	Color core.Vector3
}

func NewConstant(c core.Vector3) *Constant { return &Constant{Color: c} }

func (c *Constant) Value(u, v float32, p core.Point3) core.Vector3 { return c.Color }

// Checker alternates between two child textures in a 3D grid; Repeat
// scales p before taking its sines, so a larger Repeat gives a finer
// (more frequent) checker pattern, per original_source/texture.rs.
type Checker struct {
	Repeat     float32
	Odd, Even  core.Texture
}

func NewChecker(repeat float32, odd, even core.Texture) *Checker {
	return &Checker{Repeat: repeat, Odd: odd, Even: even}
}

func (c *Checker) Value(u, v float32, p core.Point3) core.Vector3 {
	sines := sinSign(p.X*c.Repeat) * sinSign(p.Y*c.Repeat) * sinSign(p.Z*c.Repeat)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

func sinSign(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Test paints (u, v, 1-u-v clamped to 0) as a color, useful for
// eyeballing a mesh's or sphere's uv parameterization directly.
// Grounded on original_source/texture.rs's Test variant.
type Test struct{}

func NewTest() *Test { return &Test{} }

func (t *Test) Value(u, v float32, p core.Point3) core.Vector3 {
	w := 1 - u - v
	if w < 0 {
		w = 0
	}
	return core.NewVector3(u, v, w)
}

// BumpValue returns a scalar suitable for bump-mapping finite
// differences: the luminance of whatever color the texture evaluates
// to at (u, v, p). Any Texture can serve as a bump map this way; there
// is no separate bump-only variant.
func BumpValue(t core.Texture, u, v float32, p core.Point3) float32 {
	return t.Value(u, v, p).Luminance()
}
