// SPDX-License-Identifier: MIT

package mat

import "github.com/katalvlaran/lvgeom/vec"

// Mat2 is a row-major 2x2 matrix of float64.
type Mat2 [2][2]float64

// Identity2 returns the 2x2 identity matrix.
func Identity2() Mat2 { return Mat2{{1}, {1: 1}} }

// Zero2 returns the 2x2 zero matrix.
func Zero2() Mat2 { return Mat2{} }

// New2 returns the matrix with the given rows.
func New2(rows [2][2]float64) Mat2 { return Mat2(rows) }

// FromCols2 returns the matrix with the given columns.
func FromCols2(cols [2][2]float64) Mat2 { return Mat2(cols).Transpose() }

// At returns m[row][col].
func (m Mat2) At(row, col int) (float64, error) {
	if err := checkIndex(2, row, col); err != nil {
		return 0, matErrorf("Mat2", opAt, err)
	}
	return m[row][col], nil
}

// Set assigns m[row][col] = v.
func (m *Mat2) Set(row, col int, v float64) error {
	if err := checkIndex(2, row, col); err != nil {
		return matErrorf("Mat2", opSet, err)
	}
	m[row][col] = v
	return nil
}

// Add returns m + n.
func (m Mat2) Add(n Mat2) (r Mat2) {
	for i := range r {
		for j := range r {
			r[i][j] = m[i][j] + n[i][j]
		}
	}
	return
}

// Sub returns m - n.
func (m Mat2) Sub(n Mat2) (r Mat2) {
	for i := range r {
		for j := range r {
			r[i][j] = m[i][j] - n[i][j]
		}
	}
	return
}

// Scale returns s ⋅ m.
func (m Mat2) Scale(s float64) (r Mat2) {
	for i := range r {
		for j := range r {
			r[i][j] = s * m[i][j]
		}
	}
	return
}

// Div returns m / s.
func (m Mat2) Div(s float64) (r Mat2) {
	for i := range r {
		for j := range r {
			r[i][j] = m[i][j] / s
		}
	}
	return
}

// Mul returns m ⋅ n.
func (m Mat2) Mul(n Mat2) (r Mat2) {
	for i := range r {
		for j := range r {
			for k := range r {
				r[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return
}

// MulVec returns m ⋅ v.
func (m Mat2) MulVec(v vec.Vec2[float64]) (u vec.Vec2[float64]) {
	for i := range m {
		for j := range m {
			u[i] += m[i][j] * v[j]
		}
	}
	return
}

// Transpose returns the transpose of m.
func (m Mat2) Transpose() (t Mat2) {
	for i := range m {
		for j := range m {
			t[i][j] = m[j][i]
		}
	}
	return
}

// RowMajor returns the rows of m.
func (m Mat2) RowMajor() [2][2]float64 { return m }

// ColMajor returns the columns of m.
func (m Mat2) ColMajor() [2][2]float64 { return m.Transpose() }

// Det returns the determinant of m.
func (m Mat2) Det() float64 { return m[0][0]*m[1][1] - m[0][1]*m[1][0] }

// Inverse returns the inverse of m: swap the diagonal, negate the
// off-diagonal and divide by the determinant.
// It fails with ErrSingular if the determinant is exactly zero.
//
// Complexity: O(1).
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Det()
	if det == 0 {
		return Mat2{}, matErrorf("Mat2", opInverse, ErrSingular)
	}
	idet := 1 / det
	return Mat2{
		{m[1][1] * idet, -m[0][1] * idet},
		{-m[1][0] * idet, m[0][0] * idet},
	}, nil
}

// Equal reports whether m and n are identical element by element.
func (m Mat2) Equal(n Mat2) bool { return m == n }

// String formats m one row per line.
func (m Mat2) String() string { return format(m[0][:], m[1][:]) }
