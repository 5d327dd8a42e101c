package geometry

import "github.com/trevday/rust-raytracer/pkg/core"

// TriangleMesh is shared and immutable once built: it owns the
// world-space vertex array, an optional per-vertex texture-coordinate
// array, a backface-cull flag and a material handle. Triangle is a
// lightweight index-based handle into it, so many Triangles share one
// mesh's vertex data rather than each copying its own three vertices --
// a deliberate divergence from the teacher's pkg/geometry/triangle_mesh.go
// (which builds fully independent, vertex-copying Triangle shapes),
// grounded instead on original_source/shape.rs's Mesh/Triangle split
// (there expressed with Rust Arc; here with a plain shared pointer,
// since Go's GC makes reference counting unnecessary).
type TriangleMesh struct {
	Vertices      []core.Point3
	UVs           []core.Vector3 // optional; empty if the mesh has no texture coordinates (Z unused)
	CullBackface  bool
	Mat           core.Material
}

func NewTriangleMesh(vertices []core.Point3, uvs []core.Vector3, mat core.Material, cullBackface bool) *TriangleMesh {
	return &TriangleMesh{Vertices: vertices, UVs: uvs, Mat: mat, CullBackface: cullBackface}
}

func (m *TriangleMesh) hasUVs() bool { return len(m.UVs) == len(m.Vertices) && len(m.UVs) > 0 }

// Triangle references a shared TriangleMesh by the indices of its three
// vertices; it owns no vertex data itself.
type Triangle struct {
	Mesh       *TriangleMesh
	I0, I1, I2 int
}

func NewTriangle(mesh *TriangleMesh, i0, i1, i2 int) *Triangle {
	return &Triangle{Mesh: mesh, I0: i0, I1: i1, I2: i2}
}

func (t *Triangle) Material() core.Material { return t.Mesh.Mat }

func (t *Triangle) verts() (core.Point3, core.Point3, core.Point3) {
	return t.Mesh.Vertices[t.I0], t.Mesh.Vertices[t.I1], t.Mesh.Vertices[t.I2]
}

// Hit implements Moeller-Trumbore intersection. With backface culling
// enabled, determinants <= epsilon are rejected (the ray must approach
// from the side the winding order faces); otherwise only |det| <= epsilon
// is rejected (the ray is parallel to the triangle's plane).
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float32, _ core.Sampler) (float32, bool) {
	const epsilon = 1e-8
	v0, v1, v2 := t.verts()
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	if t.Mesh.CullBackface {
		if det <= epsilon {
			return 0, false
		}
	} else if det > -epsilon && det < epsilon {
		return 0, false
	}

	invDet := 1 / det
	s := ray.Origin.Sub(v0)
	u := invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	tParam := invDet * edge2.Dot(q)
	if tParam <= tMin || tParam >= tMax {
		return 0, false
	}
	return tParam, true
}

func (t *Triangle) HitProperties(ray core.Ray, tParam float32) core.HitRecord {
	v0, v1, v2 := t.verts()
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	invDet := 1 / det
	s := ray.Origin.Sub(v0)
	baryU := invDet * s.Dot(h)
	q := s.Cross(edge1)
	baryV := invDet * ray.Direction.Dot(q)
	baryW := 1 - baryU - baryV

	geoNormal := edge1.Cross(edge2).Normalize()
	if det < 0 {
		geoNormal = geoNormal.Negate()
	}

	var u, v float32
	var dpdu, dpdv core.Vector3
	if t.Mesh.hasUVs() {
		uv0, uv1, uv2 := t.Mesh.UVs[t.I0], t.Mesh.UVs[t.I1], t.Mesh.UVs[t.I2]
		uvPoint := uv0.Scale(baryW).Add(uv1.Scale(baryU)).Add(uv2.Scale(baryV))
		u, v = uvPoint.X, uvPoint.Y

		du1, dv1 := uv1.X-uv0.X, uv1.Y-uv0.Y
		du2, dv2 := uv2.X-uv0.X, uv2.Y-uv0.Y
		determinant := du1*dv2 - dv1*du2
		if absf(determinant) < 1e-10 {
			dpdu, dpdv = arbitraryTangents(geoNormal)
		} else {
			invD := 1 / determinant
			dpdu = edge1.Scale(dv2 * invD).Sub(edge2.Scale(dv1 * invD))
			dpdv = edge2.Scale(du1 * invD).Sub(edge1.Scale(du2 * invD))
		}
	} else {
		u, v = baryU, baryV
		dpdu, dpdv = arbitraryTangents(geoNormal)
	}

	rec := core.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		U:        clampf(u, 0, 1),
		V:        clampf(v, 0, 1),
		DPDU:     dpdu,
		DPDV:     dpdv,
		Material: t.Mesh.Mat,
	}
	rec.SetFaceNormal(ray, geoNormal)
	return rec
}

func arbitraryTangents(normal core.Vector3) (core.Vector3, core.Vector3) {
	basis := core.NewONBFromW(normal)
	return basis.U, basis.V
}

func (t *Triangle) BoundingBox() core.AABB {
	v0, v1, v2 := t.verts()
	return core.NewAABBFromPoints(v0, v1, v2)
}

func (t *Triangle) area() float32 {
	v0, v1, v2 := t.verts()
	return v1.Sub(v0).Cross(v2.Sub(v0)).Length() / 2
}

// PDFValue is dist^2 / (cosTheta * area), the density of uniform-area
// sampling converted to solid angle.
func (t *Triangle) PDFValue(origin core.Point3, direction core.Vector3) float32 {
	tHit, ok := t.Hit(core.NewRay(origin, direction), core.T_MIN, 1e30, nil)
	if !ok {
		return 0
	}
	rec := t.HitProperties(core.NewRay(origin, direction), tHit)
	distSq := tHit * tHit * direction.LengthSquared()
	cosine := absf(direction.Normalize().Dot(rec.Normal))
	if cosine < 1e-8 {
		return 0
	}
	area := t.area()
	if area <= 0 {
		return 0
	}
	return distSq / (cosine * area)
}

// RandomDirTowards uniformly samples a point on the triangle by
// barycentric (1-sqrt(r1), sqrt(r1)*(1-r2), r2*sqrt(r1)) and returns the
// direction from origin to that point.
func (t *Triangle) RandomDirTowards(origin core.Point3, s core.Sampler) core.Vector3 {
	v0, v1, v2 := t.verts()
	r1, r2 := s.Get2D()
	sqrtR1 := sqrtf(r1)
	a := 1 - sqrtR1
	b := sqrtR1 * (1 - r2)
	c := r2 * sqrtR1
	point := core.Point3{
		X: a*v0.X + b*v1.X + c*v2.X,
		Y: a*v0.Y + b*v1.Y + c*v2.Y,
		Z: a*v0.Z + b*v1.Z + c*v2.Z,
	}
	return point.Sub(origin)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
