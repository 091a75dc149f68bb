// SPDX-License-Identifier: MIT

package vec

import "github.com/katalvlaran/lvgeom/internal/scalar"

// Vec4 is a 4-component vector.
type Vec4[T Float] [4]T

// New4 returns the vector (x, y, z, w).
func New4[T Float](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// One4 returns (1, 1, 1, 1).
func One4[T Float]() Vec4[T] { return Vec4[T]{1, 1, 1, 1} }

// X returns v[0].
func (v Vec4[T]) X() T { return v[0] }

// Y returns v[1].
func (v Vec4[T]) Y() T { return v[1] }

// Z returns v[2].
func (v Vec4[T]) Z() T { return v[2] }

// W returns v[3].
func (v Vec4[T]) W() T { return v[3] }

// Add returns v + w.
func (v Vec4[T]) Add(w Vec4[T]) (u Vec4[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// Sub returns v - w.
func (v Vec4[T]) Sub(w Vec4[T]) (u Vec4[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// Scale returns s ⋅ v.
func (v Vec4[T]) Scale(s T) (u Vec4[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// Div returns v / s.
func (v Vec4[T]) Div(s T) (u Vec4[T]) {
	for i := range u {
		u[i] = v[i] / s
	}
	return
}

// Dot returns v ⋅ w.
func (v Vec4[T]) Dot(w Vec4[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenSq returns the squared length of v.
func (v Vec4[T]) LenSq() T { return v.Dot(v) }

// Len returns the length of v.
func (v Vec4[T]) Len() T { return scalar.Sqrt(v.Dot(v)) }

// Norm returns v scaled to unit length.
func (v Vec4[T]) Norm() Vec4[T] { return v.Div(v.Len()) }

// Normalize scales v to unit length in place.
func (v *Vec4[T]) Normalize() { *v = v.Norm() }

// Equal reports whether every component of v equals the one in w.
func (v Vec4[T]) Equal(w Vec4[T]) bool { return v == w }
