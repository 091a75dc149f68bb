// SPDX-License-Identifier: MIT

package vec

import "github.com/katalvlaran/lvgeom/internal/scalar"

// Vec3 is a 3-component vector.
type Vec3[T Float] [3]T

// New3 returns the vector (x, y, z).
func New3[T Float](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// One3 returns (1, 1, 1).
func One3[T Float]() Vec3[T] { return Vec3[T]{1, 1, 1} }

// X returns v[0].
func (v Vec3[T]) X() T { return v[0] }

// Y returns v[1].
func (v Vec3[T]) Y() T { return v[1] }

// Z returns v[2].
func (v Vec3[T]) Z() T { return v[2] }

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) (u Vec3[T]) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) (u Vec3[T]) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// Scale returns s ⋅ v.
func (v Vec3[T]) Scale(s T) (u Vec3[T]) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// Div returns v / s.
func (v Vec3[T]) Div(s T) (u Vec3[T]) {
	for i := range u {
		u[i] = v[i] / s
	}
	return
}

// Dot returns v ⋅ w.
func (v Vec3[T]) Dot(w Vec3[T]) (d T) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenSq returns the squared length of v.
func (v Vec3[T]) LenSq() T { return v.Dot(v) }

// Len returns the length of v.
func (v Vec3[T]) Len() T { return scalar.Sqrt(v.Dot(v)) }

// Norm returns v scaled to unit length.
func (v Vec3[T]) Norm() Vec3[T] { return v.Div(v.Len()) }

// Normalize scales v to unit length in place.
func (v *Vec3[T]) Normalize() { *v = v.Norm() }

// Equal reports whether every component of v equals the one in w.
func (v Vec3[T]) Equal(w Vec3[T]) bool { return v == w }

// Cross returns v × w, following the right-hand rule.
func (v Vec3[T]) Cross(w Vec3[T]) (u Vec3[T]) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// Perpendicular returns a vector orthogonal to v.
// The result is not normalized, and is zero only when v is.
func (v Vec3[T]) Perpendicular() Vec3[T] {
	if scalar.Abs(v[0]) > scalar.Abs(v[2]) {
		return Vec3[T]{-v[1], v[0], 0}
	}
	return Vec3[T]{0, -v[2], v[1]}
}
