package mesh

import "prism/engine/geom"

// Cube returns the unit cube spanning [0,1]³ as 12 triangles, two per face,
// wound so every normal points outward.
func Cube() Mesh {
	v := geom.V3
	return Mesh{
		// south
		Tri(v(0, 0, 0), v(0, 1, 0), v(1, 1, 0)),
		Tri(v(0, 0, 0), v(1, 1, 0), v(1, 0, 0)),
		// east
		Tri(v(1, 0, 0), v(1, 1, 0), v(1, 1, 1)),
		Tri(v(1, 0, 0), v(1, 1, 1), v(1, 0, 1)),
		// north
		Tri(v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)),
		Tri(v(1, 0, 1), v(0, 1, 1), v(0, 0, 1)),
		// west
		Tri(v(0, 0, 1), v(0, 1, 1), v(0, 1, 0)),
		Tri(v(0, 0, 1), v(0, 1, 0), v(0, 0, 0)),
		// top
		Tri(v(0, 1, 0), v(0, 1, 1), v(1, 1, 1)),
		Tri(v(0, 1, 0), v(1, 1, 1), v(1, 1, 0)),
		// bottom
		Tri(v(1, 0, 1), v(0, 0, 1), v(0, 0, 0)),
		Tri(v(1, 0, 1), v(0, 0, 0), v(1, 0, 0)),
	}
}
