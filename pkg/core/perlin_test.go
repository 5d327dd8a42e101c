package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerlin_NoiseIsBoundedAndDeterministic(t *testing.T) {
	p := NewPerlin(1)
	p1 := NewPoint3(1.5, 2.25, -0.75)
	a := p.Noise(p1)
	b := p.Noise(p1)
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a, float32(-1.5))
	assert.LessOrEqual(t, a, float32(1.5))
}

func TestPerlin_TurbIsNonNegative(t *testing.T) {
	p := NewPerlin(2)
	for _, pt := range []Point3{{0, 0, 0}, {3.2, -1.1, 5.5}} {
		v := p.Turb(pt, 7, 0.5)
		assert.GreaterOrEqual(t, v, float32(0))
	}
}
