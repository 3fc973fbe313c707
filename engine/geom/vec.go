package geom

import "math"

// Vec3 is a point or direction in model, world or camera space.
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a homogeneous coordinate. W carries the perspective divisor.
type Vec4 struct {
	X, Y, Z, W float64
}

// Point2d is a screen-space position in pixels.
type Point2d struct {
	X, Y float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3    { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalized returns v scaled to unit length.
//
// A zero-length vector has no direction; it normalizes to the zero vector
// instead of producing NaN components.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Vec4 lifts v into homogeneous space with the given w.
func (v Vec3) Vec4(w float64) Vec4 { return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w} }

// Point2d drops the Z component.
func (v Vec3) Point2d() Point2d { return Point2d{X: v.X, Y: v.Y} }

func (v Vec4) Mul(s float64) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Vec3 drops W without dividing.
func (v Vec4) Vec3() Vec3 { return Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// MulMat returns the row-vector product v × m.
func (v Vec4) MulMat(m Mat4) Vec4 {
	col := func(c int) float64 {
		return v.X*m[0][c] + v.Y*m[1][c] + v.Z*m[2][c] + v.W*m[3][c]
	}
	return Vec4{X: col(0), Y: col(1), Z: col(2), W: col(3)}
}

// PerspectiveDivide divides x, y and z by w. A zero w passes the
// coordinates through unchanged.
func (v Vec4) PerspectiveDivide() Vec3 {
	if v.W == 0 {
		return v.Vec3()
	}
	return Vec3{X: v.X / v.W, Y: v.Y / v.W, Z: v.Z / v.W}
}

// ApproxEqual reports whether every component of a and b differs by at most tol.
func ApproxEqual(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
