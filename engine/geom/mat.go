package geom

import "math"

// Mat4 is a row-major 4x4 matrix: m[row][col].
type Mat4 [4][4]float64

func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c][r] = m[r][c]
		}
	}
	return out
}

// RotateZ returns the rotation about the Z axis by theta radians.
func RotateZ(theta float64) Mat4 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// RotateX returns the rotation about the X axis by theta radians.
func RotateX(theta float64) Mat4 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// ProjectionParams describes the perspective projection.
//
// ZFar and ZNear keep their historical roles: ZFar holds the small plane
// distance (0.1 by default) and ZNear the large one (1000). Only the numeric
// roles matter for the output.
type ProjectionParams struct {
	FOVDegrees float64
	Aspect     float64 // window height / window width
	ZFar       float64
	ZNear      float64
}

// Projection builds the perspective matrix
//
//	[ aspect*f, 0, 0,         0 ]
//	[ 0,        f, 0,         0 ]
//	[ 0,        0, q,         1 ]
//	[ 0,        0, -ZNear*q,  0 ]
//
// with f = 1/tan(fov/2) and q = ZFar/(ZFar-ZNear).
func Projection(p ProjectionParams) Mat4 {
	f := 1 / math.Tan(p.FOVDegrees*0.5*math.Pi/180)
	q := p.ZFar / (p.ZFar - p.ZNear)
	return Mat4{
		{p.Aspect * f, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, q, 1},
		{0, 0, -p.ZNear * q, 0},
	}
}

// ApproxEqualMat reports whether every element of a and b differs by at most tol.
func ApproxEqualMat(a, b Mat4, tol float64) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(a[r][c]-b[r][c]) > tol {
				return false
			}
		}
	}
	return true
}
