package core

// AABB is an axis-aligned bounding box with Min <= Max componentwise
// once populated.
type AABB struct {
	Min, Max Point3
}

// EmptyAABB returns an inverted box (Min > Max) suitable as the zero
// element of repeated Union calls.
func EmptyAABB() AABB {
	const inf = float32(1e30)
	return AABB{
		Min: Point3{inf, inf, inf},
		Max: Point3{-inf, -inf, -inf},
	}
}

func NewAABBFromPoints(pts ...Point3) AABB {
	box := EmptyAABB()
	for _, p := range pts {
		box = box.UnionPoint(p)
	}
	return box
}

// Union returns the smallest box containing both inputs. Idempotent,
// commutative and associative since it's a componentwise min/max.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

func (b AABB) UnionPoint(p Point3) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

func (b AABB) Center() Point3 {
	return Point3{
		(b.Min.X + b.Max.X) / 2,
		(b.Min.Y + b.Max.Y) / 2,
		(b.Min.Z + b.Max.Z) / 2,
	}
}

func (b AABB) Size() Vector3 { return b.Max.Sub(b.Min) }

func (b AABB) SurfaceArea() float32 {
	d := b.Size()
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

func (b AABB) LongestAxis() Axis {
	d := b.Size()
	if d.X > d.Y && d.X > d.Z {
		return AxisX
	}
	if d.Y > d.Z {
		return AxisY
	}
	return AxisZ
}

// Hit implements the canonical per-axis slab test: for each axis compute
// t0 = (min-orig)*invDir, t1 = (max-orig)*invDir, swap if invDir < 0, then
// tighten the running [tMin, tMax] interval; reject once it collapses.
// This is written against the canonical form deliberately, since one
// variant of this test seen during research returned tMax in place of t1
// when t0 > tMin -- a bug this implementation avoids by branching only on
// the invDir sign. An axis whose direction component is exactly zero has
// no slab interval; the ray hits only if its origin lies within that
// axis's [min, max].
func (b AABB) Hit(r Ray, tMin, tMax float32) bool {
	origin := r.Origin
	dir := r.Direction
	mins := [3]float32{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float32{b.Max.X, b.Max.Y, b.Max.Z}
	orig := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{dir.X, dir.Y, dir.Z}

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if orig[axis] < mins[axis] || orig[axis] > maxs[axis] {
				return false
			}
			continue
		}
		invD := 1 / d[axis]
		t0 := (mins[axis] - orig[axis]) * invD
		t1 := (maxs[axis] - orig[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

func (b AABB) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}
