package core

import "math/rand"

// Sampler is a source of random numbers for a single worker. Every
// Scatter/PDF.Generate call threads one through explicitly rather than
// reaching for a package-level RNG, so that no two goroutines ever touch
// the same random state.
type Sampler interface {
	Get1D() float32
	Get2D() (float32, float32)
}

// RNGSampler wraps a *rand.Rand. Each worker owns exactly one; it is
// never shared across goroutines.
type RNGSampler struct {
	rng *rand.Rand
}

func NewRNGSampler(seed int64) *RNGSampler {
	return &RNGSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *RNGSampler) Get1D() float32 {
	return s.rng.Float32()
}

func (s *RNGSampler) Get2D() (float32, float32) {
	return s.rng.Float32(), s.rng.Float32()
}
