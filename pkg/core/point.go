package core

// Point3 models a position in 3-space. Points and vectors are kept as
// distinct types so the type checker enforces Point - Point = Vector and
// Point + Vector = Point, unlike a single undifferentiated 3-tuple.
type Point3 struct {
	X, Y, Z float32
}

func NewPoint3(x, y, z float32) Point3 { return Point3{x, y, z} }

func (p Point3) Sub(o Point3) Vector3      { return Vector3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Point3) Add(v Vector3) Point3      { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }
func (p Point3) AsVector() Vector3         { return Vector3{p.X, p.Y, p.Z} }
func (p Point3) DistanceSquared(o Point3) float32 { return p.Sub(o).LengthSquared() }
func (p Point3) Distance(o Point3) float32        { return p.Sub(o).Length() }

func (p Point3) Min(o Point3) Point3 {
	return Point3{minf(p.X, o.X), minf(p.Y, o.Y), minf(p.Z, o.Z)}
}

func (p Point3) Max(o Point3) Point3 {
	return Point3{maxf(p.X, o.X), maxf(p.Y, o.Y), maxf(p.Z, o.Z)}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Axis indexes an X/Y/Z component.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (p Point3) Component(a Axis) float32 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

func (v Vector3) Component(a Axis) float32 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}
