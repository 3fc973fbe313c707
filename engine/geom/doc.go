// Package geom provides the float64 vector and matrix algebra used by the prism
// pipeline.
//
// All types are immutable values: every operation returns a new instance.
//
// Matrices are row-major and act on row vectors from the right:
//
//	result[col] = Σ_row v[row] * m[row][col]
//
// Compose transforms by chaining vector-times-matrix calls in order
// (v.MulMat(a).MulMat(b)), not by multiplying the matrices first.
package geom
