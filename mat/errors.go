// SPDX-License-Identifier: MIT
// Package mat: sentinel error set.
// Exported operations return these sentinels wrapped with the receiver type
// and operation; callers match them with errors.Is. Arithmetic never returns
// an error: division by zero follows IEEE-754.

package mat

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Sentinels carry the "mat: " prefix. Exported operations wrap them once,
// through matErrorf, as "mat: <Type>.<Op>: <detail>: <sentinel>", e.g.
//
//	mat: Mat3.Inverse: mat: singular matrix
//
// vec and rotor use the same "<pkg>: <Type>.<Op>: " form.

var (
	// ErrOutOfRange indicates that a row or column index is outside [0, N).
	// At and Set return this instead of panicking.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("mat: singular matrix")
)

// Operation names used when wrapping errors.
const (
	opAt              = "At"
	opSet             = "Set"
	opInverse         = "Inverse"
	opUnmarshalBinary = "UnmarshalBinary"
	opUnmarshalYAML   = "UnmarshalYAML"
)

// matErrorf wraps err with the package, matrix type and operation.
// Call only with err != nil.
func matErrorf(typ, op string, err error) error {
	return fmt.Errorf("mat: %s.%s: %w", typ, op, err)
}

// checkIndex validates (row, col) for a matrix of order n.
func checkIndex(n, row, col int) error {
	if row < 0 || row >= n || col < 0 || col >= n {
		return fmt.Errorf("(%d,%d) outside %dx%d: %w", row, col, n, n, ErrOutOfRange)
	}
	return nil
}
