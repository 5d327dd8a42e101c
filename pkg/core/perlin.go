package core

import "math/rand"

const perlinPointCount = 256

// Perlin is a classic gradient-noise generator with a 256-entry
// permutation table per axis and trilinearly-interpolated, Hermite-
// smoothed gradient dot products. Used by the Noise and Turbulence
// textures.
type Perlin struct {
	ranVec          [perlinPointCount]Vector3
	permX, permY, permZ [perlinPointCount]int
}

func NewPerlin(seed int64) *Perlin {
	rng := rand.New(rand.NewSource(seed))
	p := &Perlin{}
	for i := 0; i < perlinPointCount; i++ {
		u, v, w := rng.Float32(), rng.Float32(), rng.Float32()
		p.ranVec[i] = Vector3{2*u - 1, 2*v - 1, 2*w - 1}.Normalize()
	}
	p.permX = generatePerm(rng)
	p.permY = generatePerm(rng)
	p.permZ = generatePerm(rng)
	return p
}

func generatePerm(rng *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// Noise evaluates smoothed gradient noise at p, roughly in [-1, 1].
func (p *Perlin) Noise(pt Point3) float32 {
	u := pt.X - floor32(pt.X)
	v := pt.Y - floor32(pt.Y)
	w := pt.Z - floor32(pt.Z)

	i := int(floor32(pt.X))
	j := int(floor32(pt.Y))
	k := int(floor32(pt.Z))

	var c [2][2][2]Vector3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.ranVec[idx]
			}
		}
	}
	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]Vector3, u, v, w float32) float32 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)
	var accum float32
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := Vector3{u - float32(i), v - float32(j), w - float32(k)}
				fi, fj, fk := float32(i), float32(j), float32(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turb sums depth noise octaves, each at double the previous frequency
// and omega times the previous weight (fractal Brownian motion), and
// returns the absolute value of the sum. Used by the Turbulence texture.
func (p *Perlin) Turb(pt Point3, depth int, omega float32) float32 {
	var accum float32
	temp := pt
	weight := float32(1)
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= omega
		temp = Point3{temp.X * 2, temp.Y * 2, temp.Z * 2}
	}
	return abs32(accum)
}

func floor32(x float32) float32 {
	i := int(x)
	if x < 0 && float32(i) != x {
		i--
	}
	return float32(i)
}
