// SPDX-License-Identifier: MIT

// Package vec implements fixed-size floating-point vectors of 2, 3 and 4
// components.
//
// Each vector is an array type, so the dimension is part of the type: Vec2
// and Vec3 never mix, and an array literal of the wrong length does not
// compile. Element types are float32, float64 or any type derived from them.
//
//	v := vec.New3(1.0, 0, 0)
//	w := vec.New3(0.0, 1, 0)
//	n := v.Cross(w) // [0 0 1]
//
// All operations return new values; only the methods named Normalize and
// Unmarshal* modify their receiver. Arithmetic follows IEEE-754 with no
// checks: dividing by zero or normalizing a zero vector yields Inf or NaN
// components. Equality is exact; callers wanting a tolerance compare
// components themselves.
package vec

import "github.com/katalvlaran/lvgeom/internal/scalar"

// Float is the element type constraint for all vectors.
type Float = scalar.Float

// names are the component keys accepted in YAML mappings.
var names = [4]string{"x", "y", "z", "w"}
