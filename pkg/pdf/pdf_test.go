package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trevday/rust-raytracer/pkg/core"
)

type constPDF struct {
	v   float32
	dir core.Vector3
}

func (c constPDF) Value(core.Vector3) float32 { return c.v }
func (c constPDF) Generate(core.Sampler) core.Vector3 { return c.dir }

func TestMixture_EmptyIsInvalid(t *testing.T) {
	m := NewMixture()
	assert.True(t, m.Empty())
	assert.Equal(t, float32(0), m.Value(core.NewVector3(0, 1, 0)))
}

func TestMixture_ValueIsAverage(t *testing.T) {
	m := NewMixture(constPDF{v: 0.2}, constPDF{v: 0.6})
	got := m.Value(core.NewVector3(0, 1, 0))
	assert.InDelta(t, 0.4, got, 1e-6)
}

func TestPairValue_IsAverageOfTwo(t *testing.T) {
	a := constPDF{v: 0.3}
	b := constPDF{v: 0.7}
	got := PairValue(a, b, core.NewVector3(0, 1, 0))
	assert.InDelta(t, 0.5, got, 1e-6)
}

func TestCosine_GenerateIsConsistentWithValue(t *testing.T) {
	normal := core.NewVector3(0, 0, 1)
	c := NewCosine(normal)
	rng := core.NewRNGSampler(3)
	dir := c.Generate(rng)
	require.Greater(t, c.Value(dir), float32(0))
}
