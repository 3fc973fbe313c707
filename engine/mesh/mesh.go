// Package mesh holds triangle meshes: the procedural cube, and a reader and
// writer for the line-oriented vertex/face text format.
package mesh

import "prism/engine/geom"

// VertexFunc maps one vertex to another.
type VertexFunc func(geom.Vec3) geom.Vec3

// Triangle is an ordered vertex triple. The winding A→B→C defines the outward
// normal (B−A)×(C−A).
type Triangle struct {
	A, B, C geom.Vec3
}

// Tri builds a triangle from three vertices.
func Tri(a, b, c geom.Vec3) Triangle { return Triangle{A: a, B: b, C: c} }

// Map applies f to each vertex and returns the new triangle.
func (t Triangle) Map(f VertexFunc) Triangle {
	return Triangle{A: f(t.A), B: f(t.B), C: f(t.C)}
}

// Normal returns the unit outward normal (B−A)×(C−A). Degenerate triangles
// yield the zero vector.
func (t Triangle) Normal() geom.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalized()
}

// MidZ is the mean Z of the three vertices.
func (t Triangle) MidZ() float64 {
	return (t.A.Z + t.B.Z + t.C.Z) / 3
}

// Vertices returns the vertices in winding order.
func (t Triangle) Vertices() [3]geom.Vec3 { return [3]geom.Vec3{t.A, t.B, t.C} }

// Mesh is an ordered list of triangles. Meshes are built once and treated as
// read-only; per-frame work operates on copies.
type Mesh []Triangle

// Clone returns an independent copy of m.
func (m Mesh) Clone() Mesh {
	if m == nil {
		return nil
	}
	out := make(Mesh, len(m))
	copy(out, m)
	return out
}
