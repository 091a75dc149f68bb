// SPDX-License-Identifier: MIT

// Package rotor provides Rotor3, a rotor in three-dimensional space.
//
// A rotor is a scalar part S plus a bivector with components in the xy, yz
// and zx planes. It is equivalent to a quaternion with w = S, i = YZ, j = ZX
// and k = XY; the XY plane is the one whose normal is the z axis.
//
// Rotations apply by the sandwich product r v r†:
//
//	r := rotor.FromAxisAngle(vec.New3(0.0, 0.0, 1.0), math.Pi/2)
//	v := r.Rotate(vec.New3(1.0, 0.0, 0.0)) // ≈ (0, 1, 0)
//
// Composition:
//
//	r.Mul(q)  // product r·q: q applies first, as with matrices
//	r.Then(q) // r applies first, then q
//
// Rotors built from an axis and an angle or from two vectors are unit rotors.
// Rotate with a non-unit rotor scales the result by |r|²; call Normalize to
// restore unit length after accumulating products.
package rotor
