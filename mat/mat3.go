// SPDX-License-Identifier: MIT

package mat

import "github.com/katalvlaran/lvgeom/vec"

// Mat3 is a row-major 3x3 matrix of float64.
type Mat3 [3][3]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 { return Mat3{{1}, {1: 1}, {2: 1}} }

// Zero3 returns the 3x3 zero matrix.
func Zero3() Mat3 { return Mat3{} }

// New3 returns the matrix with the given rows.
func New3(rows [3][3]float64) Mat3 { return Mat3(rows) }

// FromCols3 returns the matrix with the given columns.
func FromCols3(cols [3][3]float64) Mat3 { return Mat3(cols).Transpose() }

// At returns m[row][col].
func (m Mat3) At(row, col int) (float64, error) {
	if err := checkIndex(3, row, col); err != nil {
		return 0, matErrorf("Mat3", opAt, err)
	}
	return m[row][col], nil
}

// Set assigns m[row][col] = v.
func (m *Mat3) Set(row, col int, v float64) error {
	if err := checkIndex(3, row, col); err != nil {
		return matErrorf("Mat3", opSet, err)
	}
	m[row][col] = v
	return nil
}

// Add returns m + n.
func (m Mat3) Add(n Mat3) (r Mat3) {
	for i := range r {
		for j := range r {
			r[i][j] = m[i][j] + n[i][j]
		}
	}
	return
}

// Sub returns m - n.
func (m Mat3) Sub(n Mat3) (r Mat3) {
	for i := range r {
		for j := range r {
			r[i][j] = m[i][j] - n[i][j]
		}
	}
	return
}

// Scale returns s ⋅ m.
func (m Mat3) Scale(s float64) (r Mat3) {
	for i := range r {
		for j := range r {
			r[i][j] = s * m[i][j]
		}
	}
	return
}

// Div returns m / s.
func (m Mat3) Div(s float64) (r Mat3) {
	for i := range r {
		for j := range r {
			r[i][j] = m[i][j] / s
		}
	}
	return
}

// Mul returns m ⋅ n.
func (m Mat3) Mul(n Mat3) (r Mat3) {
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
func (m Mat3) MulVec(v vec.Vec3[float64]) (u vec.Vec3[float64]) {
	for i := range m {
		for j := range m {
			u[i] += m[i][j] * v[j]
		}
	}
	return
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() (t Mat3) {
	for i := range m {
		for j := range m {
			t[i][j] = m[j][i]
		}
	}
	return
}

// RowMajor returns the rows of m.
func (m Mat3) RowMajor() [3][3]float64 { return m }

// ColMajor returns the columns of m.
func (m Mat3) ColMajor() [3][3]float64 { return m.Transpose() }

// Det returns the determinant of m by cofactor expansion along row 0.
// Cofactor signs alternate +, -, + across the row.
//
// Complexity: O(1), 9 multiplications.
func (m Mat3) Det() float64 {
	s0 := m[1][1]*m[2][2] - m[1][2]*m[2][1] // minor of m[0][0]
	s1 := m[1][0]*m[2][2] - m[1][2]*m[2][0] // minor of m[0][1]
	s2 := m[1][0]*m[2][1] - m[1][1]*m[2][0] // minor of m[0][2]
	return m[0][0]*s0 - m[0][1]*s1 + m[0][2]*s2
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// Blueprint:
//
//	Stage 1 (Minors): the three 2x2 minors of row 0, shared with Det.
//	Stage 2 (Validate): det == 0 exactly → ErrSingular; no epsilon test,
//	                    so nearly singular input is inverted as is.
//	Stage 3 (Execute): r[i][j] = (-1)^(i+j) · minor(j, i) / det, the
//	                   transposed cofactor matrix scaled by 1/det.
//
// Complexity: O(1), one division.
func (m Mat3) Inverse() (Mat3, error) {
	// Stage 1: row-0 minors
	s0 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	s1 := m[1][0]*m[2][2] - m[1][2]*m[2][0]
	s2 := m[1][0]*m[2][1] - m[1][1]*m[2][0]

	// Stage 2: singular check
	det := m[0][0]*s0 - m[0][1]*s1 + m[0][2]*s2
	if det == 0 {
		return Mat3{}, matErrorf("Mat3", opInverse, ErrSingular)
	}

	// Stage 3: adjugate (row i of r is column i of the cofactors) times 1/det
	idet := 1 / det
	var r Mat3
	r[0][0] = s0 * idet
	r[0][1] = -(m[0][1]*m[2][2] - m[0][2]*m[2][1]) * idet
	r[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * idet
	r[1][0] = -s1 * idet
	r[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * idet
	r[1][2] = -(m[0][0]*m[1][2] - m[0][2]*m[1][0]) * idet
	r[2][0] = s2 * idet
	r[2][1] = -(m[0][0]*m[2][1] - m[0][1]*m[2][0]) * idet
	r[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * idet
	return r, nil
}

// Equal reports whether m and n are identical element by element.
func (m Mat3) Equal(n Mat3) bool { return m == n }

// String formats m one row per line.
func (m Mat3) String() string { return format(m[0][:], m[1][:], m[2][:]) }
