// SPDX-License-Identifier: MIT

package vec

import "github.com/katalvlaran/lvgeom/internal/scalar"

// Vec2 is a 2-component vector.
type Vec2[T Float] [2]T

// New2 returns the vector (x, y).
func New2[T Float](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// One2 returns (1, 1).
func One2[T Float]() Vec2[T] { return Vec2[T]{1, 1} }

// X returns v[0].
func (v Vec2[T]) X() T { return v[0] }

// Y returns v[1].
func (v Vec2[T]) Y() T { return v[1] }

// Add returns v + w.
func (v Vec2[T]) Add(w Vec2[T]) (u Vec2[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// Sub returns v - w.
func (v Vec2[T]) Sub(w Vec2[T]) (u Vec2[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// Scale returns s ⋅ v.
func (v Vec2[T]) Scale(s T) (u Vec2[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// Div returns v / s.
func (v Vec2[T]) Div(s T) (u Vec2[T]) {
	for i := range u {
		u[i] = v[i] / s
	}
	return
}

// Dot returns v ⋅ w.
func (v Vec2[T]) Dot(w Vec2[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenSq returns the squared length of v.
func (v Vec2[T]) LenSq() T { return v.Dot(v) }

// Len returns the length of v.
func (v Vec2[T]) Len() T { return scalar.Sqrt(v.Dot(v)) }

// Norm returns v scaled to unit length.
func (v Vec2[T]) Norm() Vec2[T] { return v.Div(v.Len()) }

// Normalize scales v to unit length in place.
func (v *Vec2[T]) Normalize() { *v = v.Norm() }

// Equal reports whether every component of v equals the one in w.
func (v Vec2[T]) Equal(w Vec2[T]) bool { return v == w }
