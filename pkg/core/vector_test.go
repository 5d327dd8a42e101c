package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3_DotCross(t *testing.T) {
	a := NewVector3(1, 0, 0)
	b := NewVector3(0, 1, 0)
	assert.InDelta(t, 0, a.Dot(b), 1e-6)
	assert.Equal(t, NewVector3(0, 0, 1), a.Cross(b))
}

func TestVector3_Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	n := v.Normalize()
	assert.InDelta(t, 1, n.Length(), 1e-5)
}

func TestVector3_ReflectAbout(t *testing.T) {
	v := NewVector3(1, -1, 0)
	n := NewVector3(0, 1, 0)
	r := v.ReflectAbout(n)
	assert.InDelta(t, 1, r.X, 1e-6)
	assert.InDelta(t, 1, r.Y, 1e-6)
}

func TestVector3_GammaRoundTrip(t *testing.T) {
	// Gamma round-trip invariant: (c^2)^0.5 == c within 8-bit quantization.
	c := NewVector3(0.5, 0.25, 0.81)
	squared := c.MulVec(c)
	got := squared.GammaCorrect()
	assert.InDelta(t, c.X, got.X, 1e-4)
	assert.InDelta(t, c.Y, got.Y, 1e-4)
	assert.InDelta(t, c.Z, got.Z, 1e-4)
}

func TestPoint3_SubAdd(t *testing.T) {
	p1 := NewPoint3(1, 2, 3)
	p2 := NewPoint3(0, 0, 0)
	v := p1.Sub(p2)
	assert.Equal(t, NewVector3(1, 2, 3), v)
	assert.Equal(t, p1, p2.Add(v))
}
