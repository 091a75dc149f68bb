// SPDX-License-Identifier: MIT

// Package mat implements square float64 matrices of order 2, 3 and 4.
//
// Storage is row-major, as in most mathematical texts: m[r][c] is the
// element in row r and column c, and a literal lists rows top to bottom.
//
//	m := mat.New3([3][3]float64{
//		{1, 2, 3},
//		{0, 1, 4},
//		{5, 6, 0},
//	})
//	m.Det()            // 1
//	inv, err := m.Inverse()
//
// Matrices are values; every operation returns a new matrix except Set and
// the Unmarshal methods. Indexing the array directly is checked by the
// compiler for constant indices; At and Set check runtime indices and return
// an error wrapping ErrOutOfRange instead of panicking.
//
// Scalar division follows IEEE-754. Inverse is the one operation with an
// explicit failure: it returns ErrSingular when the determinant is exactly
// zero. Nearly singular matrices are inverted without complaint and the
// result may be numerically poor.
package mat
