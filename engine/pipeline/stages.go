package pipeline

import (
	"math"

	"prism/engine/geom"
	"prism/engine/mesh"
)

// Rotate rotates about Z and then about X by theta radians. The vertex is
// multiplied by each matrix in turn; the matrices are never pre-composed.
func Rotate(theta float64) mesh.VertexFunc {
	rz := geom.RotateZ(theta)
	rx := geom.RotateX(theta)
	return func(v geom.Vec3) geom.Vec3 {
		return v.Vec4(1).MulMat(rz).MulMat(rx).Vec3()
	}
}

// Translate offsets a vertex by d.
func Translate(d geom.Vec3) mesh.VertexFunc {
	return func(v geom.Vec3) geom.Vec3 { return v.Add(d) }
}

// Project maps a camera-space vertex through m and applies the perspective
// divide. A zero w leaves the projected coordinates undivided.
func Project(m geom.Mat4) mesh.VertexFunc {
	return func(v geom.Vec3) geom.Vec3 {
		return v.Vec4(1).MulMat(m).PerspectiveDivide()
	}
}

// ViewportMap maps normalized device coordinates in [-1,1] to pixels. The same
// width scales both axes.
func ViewportMap(width float64) mesh.VertexFunc {
	return func(v geom.Vec3) geom.Vec3 {
		return v.Add(geom.V3(1, 1, 1)).Mul(0.5).Mul(width)
	}
}

// Chain applies fs left to right.
func Chain(fs ...mesh.VertexFunc) mesh.VertexFunc {
	return func(v geom.Vec3) geom.Vec3 {
		for _, f := range fs {
			v = f(v)
		}
		return v
	}
}

// CullNormal is the unit normal normalize((A−B)×(A−C)) of a transformed triangle.
func CullNormal(t mesh.Triangle) geom.Vec3 {
	return t.A.Sub(t.B).Cross(t.A.Sub(t.C)).Normalized()
}

// FacesCamera reports whether a triangle with normal n and first vertex a
// faces a camera at cam.
func FacesCamera(n, a, cam geom.Vec3) bool {
	return n.Dot(a.Sub(cam)) < 0
}

// LightDirection is the normalized directional light (lightX, 0, -1).
func LightDirection(lightX float64) geom.Vec3 {
	return geom.V3(lightX, 0, -1).Normalized()
}

// Shade converts a lighting dot product into a grey level. Products outside
// [0,1] saturate and NaN maps to 0.
func Shade(dot float64) uint8 {
	v := dot * 255
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
