// SPDX-License-Identifier: MIT

// Package scalar holds the element-type constraint shared by the vector types
// and the few scalar helpers that must pick a float32 or float64 code path.
package scalar

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the set of element types a vector may be instantiated with.
type Float interface {
	constraints.Float
}

// Size returns the width of T in bytes (4 or 8).
func Size[T Float]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// Sqrt returns the square root of x.
// 4-byte types stay in float32 arithmetic instead of widening to float64.
func Sqrt[T Float](x T) T {
	if Size[T]() == 4 {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

// Abs returns |x|, split on width like Sqrt.
func Abs[T Float](x T) T {
	if Size[T]() == 4 {
		return T(math32.Abs(float32(x)))
	}
	return T(math.Abs(float64(x)))
}
