package core

// HitRecord is the output of a successful intersection: the distance
// along the ray, the world-space hit point and unit normal, clamped
// texture coordinates, and the tangent partial derivatives of position
// with respect to u and v (used for bump mapping and anisotropic
// effects). FrontFace records which side of the surface the ray hit,
// set by SetFaceNormal so Normal always points against the incoming ray.
type HitRecord struct {
	T         float32
	Point     Point3
	Normal    Vector3
	U, V      float32
	DPDU, DPDV Vector3
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal against the ray direction and records
// which face was hit, given the shape's geometric (outward) normal.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vector3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is a polymorphic primitive: ray intersection, hit-property
// derivation, bounds, its material, and the importance-sampling
// contract (pdf_value / random direction toward an origin) used to
// build the scene's Mixture PDF. All methods are pure and reentrant.
type Shape interface {
	// Hit returns the nearest root strictly inside (tMin, tMax), if any.
	// Takes a Sampler because ConstantMedium's intersection is itself a
	// stochastic free-flight sample; shapes that don't need randomness
	// simply ignore it.
	Hit(ray Ray, tMin, tMax float32, s Sampler) (t float32, ok bool)

	// HitProperties derives the full HitRecord at a t returned by Hit.
	HitProperties(ray Ray, t float32) HitRecord

	BoundingBox() AABB

	Material() Material

	// PDFValue is the solid-angle density of sampling `direction` from
	// `origin` toward this shape, consistent with RandomDirTowards.
	PDFValue(origin Point3, direction Vector3) float32

	// RandomDirTowards samples a direction from origin toward the shape.
	RandomDirTowards(origin Point3, s Sampler) Vector3
}

// IsImportant reports whether a shape should be targeted by explicit
// light/specular importance sampling: true iff its material emits or
// demands specular-style handling.
func IsImportant(sh Shape) bool {
	return sh.Material().IsImportant()
}

// Aggregate is a container over shapes providing scene-wide closest-hit,
// implemented by List (linear scan) and BVH (SAH tree). Unlike Shape, it
// returns a full HitRecord in one call rather than splitting Hit/
// HitProperties, since it already knows internally which child shape
// matched; only leaf-level primitives (Sphere, Triangle, ConstantMedium)
// need the two-phase contract. Traversal state (the Workspace) is
// supplied by the caller so no aggregate holds mutable per-call state.
type Aggregate interface {
	HitClosest(ray Ray, tMin, tMax float32, ws *Workspace, s Sampler) (HitRecord, bool)
	BoundingBox() AABB
}

// Workspace is per-worker scratch for BVH traversal: a stack of node
// indices pre-sized to the tree's length. Never shared across goroutines.
type Workspace struct {
	stack []int
}

func NewWorkspace(capacity int) *Workspace {
	return &Workspace{stack: make([]int, 0, capacity)}
}

func (w *Workspace) Push(i int) { w.stack = append(w.stack, i) }
func (w *Workspace) Pop() int {
	n := len(w.stack) - 1
	v := w.stack[n]
	w.stack = w.stack[:n]
	return v
}
func (w *Workspace) Empty() bool { return len(w.stack) == 0 }
func (w *Workspace) Reset()      { w.stack = w.stack[:0] }

// Texture maps a (u, v, point) to a color.
type Texture interface {
	Value(u, v float32, p Point3) Vector3
}

// PDF is a probability density over directions: Value evaluates the
// density of a (not necessarily normalized) direction, Generate draws
// a new sample.
type PDF interface {
	Value(direction Vector3) float32
	Generate(s Sampler) Vector3
}

// ScatterResult is a material's response to an incoming ray at a hit.
// Exactly one of (Specular, PDF) is meaningful, selected by IsSpecular.
type ScatterResult struct {
	Specular    bool
	SpecularRay Ray
	PDF         PDF
	Attenuation Vector3
}

func (s ScatterResult) IsSpecular() bool { return s.Specular }

// Material is a polymorphic surface or volume response: emission plus
// either a specular bounce or a PDF-driven scattering distribution.
// IsImportant is true iff this material should be targeted by explicit
// importance sampling (it emits, or its reflectance is effectively a
// delta distribution that only a scatter sample can ever hit).
type Material interface {
	Emit(ray Ray, hit HitRecord) (Vector3, bool)
	Scatter(ray Ray, hit HitRecord, s Sampler) (ScatterResult, bool)
	IsImportant() bool
}
