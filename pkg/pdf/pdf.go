// Package pdf implements the Cosine, Shape and Mixture PDF variants and
// the pair combinator used for multiple importance sampling. Grounded on
// original_source/pdf.rs, not on the teacher's pkg/lights weighted-
// sampler (which solves a wider BDPT light-selection problem this
// renderer doesn't need).
package pdf

import "github.com/trevday/rust-raytracer/pkg/core"

// Cosine is a cosine-weighted hemisphere distribution about a normal.
type Cosine struct {
	Normal core.Vector3
}

func NewCosine(normal core.Vector3) *Cosine { return &Cosine{Normal: normal} }

func (c *Cosine) Value(direction core.Vector3) float32 {
	return core.CosineDirectionPDF(c.Normal, direction)
}

func (c *Cosine) Generate(s core.Sampler) core.Vector3 {
	return core.RandomCosineDirection(c.Normal, s)
}

// Shape delegates to a shape's own pdf_value/random_dir_towards contract,
// representing "sample a direction toward this shape from Origin".
type Shape struct {
	Origin core.Point3
	Target core.Shape
}

func NewShape(origin core.Point3, target core.Shape) *Shape {
	return &Shape{Origin: origin, Target: target}
}

func (p *Shape) Value(direction core.Vector3) float32 {
	return p.Target.PDFValue(p.Origin, direction)
}

func (p *Shape) Generate(s core.Sampler) core.Vector3 {
	return p.Target.RandomDirTowards(p.Origin, s)
}

// Mixture averages an arbitrary number of member PDFs for Value, and
// picks one uniformly at random to delegate to for Generate. An empty
// Mixture is invalid; callers must check Empty() before use (the
// integrator falls back to the material PDF alone when there are no
// important shapes in the scene, rather than ever constructing one).
type Mixture struct {
	Members []core.PDF
}

func NewMixture(members ...core.PDF) *Mixture {
	return &Mixture{Members: members}
}

func (m *Mixture) Empty() bool { return len(m.Members) == 0 }

func (m *Mixture) Value(direction core.Vector3) float32 {
	if len(m.Members) == 0 {
		return 0
	}
	var sum float32
	for _, member := range m.Members {
		sum += member.Value(direction)
	}
	return sum / float32(len(m.Members))
}

func (m *Mixture) Generate(s core.Sampler) core.Vector3 {
	idx := int(s.Get1D() * float32(len(m.Members)))
	if idx >= len(m.Members) {
		idx = len(m.Members) - 1
	}
	return m.Members[idx].Generate(s)
}

// PairValue is 0.5*(a.Value(direction) + b.Value(direction)), the MIS
// denominator when combining two sampling strategies.
func PairValue(a, b core.PDF, direction core.Vector3) float32 {
	return 0.5 * (a.Value(direction) + b.Value(direction))
}

// PairGenerate flips a fair coin to pick which of a, b supplies the
// sample. It consumes one Get1D draw from s.
func PairGenerate(a, b core.PDF, s core.Sampler) core.Vector3 {
	if s.Get1D() < 0.5 {
		return a.Generate(s)
	}
	return b.Generate(s)
}
