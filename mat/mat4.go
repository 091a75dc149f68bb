// SPDX-License-Identifier: MIT

package mat

import "github.com/katalvlaran/lvgeom/vec"

// Mat4 is a row-major 4x4 matrix of float64.
type Mat4 [4][4]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 { return Mat4{{1}, {1: 1}, {2: 1}, {3: 1}} }

// Zero4 returns the 4x4 zero matrix.
func Zero4() Mat4 { return Mat4{} }

// New4 returns the matrix with the given rows.
func New4(rows [4][4]float64) Mat4 { return Mat4(rows) }

// FromCols4 returns the matrix with the given columns.
func FromCols4(cols [4][4]float64) Mat4 { return Mat4(cols).Transpose() }

// At returns m[row][col].
func (m Mat4) At(row, col int) (float64, error) {
	if err := checkIndex(4, row, col); err != nil {
		return 0, matErrorf("Mat4", opAt, err)
	}
	return m[row][col], nil
}

// Set assigns m[row][col] = v.
func (m *Mat4) Set(row, col int, v float64) error {
	if err := checkIndex(4, row, col); err != nil {
		return matErrorf("Mat4", opSet, err)
	}
	m[row][col] = v
	return nil
}

// Add returns m + n.
func (m Mat4) Add(n Mat4) (r Mat4) {
	for i := range r {
		for j := range r {
			r[i][j] = m[i][j] + n[i][j]
		}
	}
	return
}

// Sub returns m - n.
func (m Mat4) Sub(n Mat4) (r Mat4) {
	for i := range r {
		for j := range r {
			r[i][j] = m[i][j] - n[i][j]
		}
	}
	return
}

// Scale returns s ⋅ m.
func (m Mat4) Scale(s float64) (r Mat4) {
	for i := range r {
		for j := range r {
			r[i][j] = s * m[i][j]
		}
	}
	return
}

// Div returns m / s.
func (m Mat4) Div(s float64) (r Mat4) {
	for i := range r {
		for j := range r {
			r[i][j] = m[i][j] / s
		}
	}
	return
}

// Mul returns m ⋅ n.
func (m Mat4) Mul(n Mat4) (r Mat4) {
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
func (m Mat4) MulVec(v vec.Vec4[float64]) (u vec.Vec4[float64]) {
	for i := range m {
		for j := range m {
			u[i] += m[i][j] * v[j]
		}
	}
	return
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() (t Mat4) {
	for i := range m {
		for j := range m {
			t[i][j] = m[j][i]
		}
	}
	return
}

// RowMajor returns the rows of m.
func (m Mat4) RowMajor() [4][4]float64 { return m }

// ColMajor returns the columns of m.
func (m Mat4) ColMajor() [4][4]float64 { return m.Transpose() }

// minors returns the six 2x2 minors of rows 0-1 (s) and of rows 2-3 (c).
// Index k walks the column pairs in the same order for both:
//
//	k:    0      1      2      3      4      5
//	cols: (0,1)  (0,2)  (0,3)  (1,2)  (1,3)  (2,3)
//
// s[k] pairs with the complementary c[5-k] in the Laplace expansion.
func (m *Mat4) minors() (s, c [6]float64) {
	s[0] = m[0][0]*m[1][1] - m[0][1]*m[1][0]
	s[1] = m[0][0]*m[1][2] - m[0][2]*m[1][0]
	s[2] = m[0][0]*m[1][3] - m[0][3]*m[1][0]
	s[3] = m[0][1]*m[1][2] - m[0][2]*m[1][1]
	s[4] = m[0][1]*m[1][3] - m[0][3]*m[1][1]
	s[5] = m[0][2]*m[1][3] - m[0][3]*m[1][2]
	c[0] = m[2][0]*m[3][1] - m[2][1]*m[3][0]
	c[1] = m[2][0]*m[3][2] - m[2][2]*m[3][0]
	c[2] = m[2][0]*m[3][3] - m[2][3]*m[3][0]
	c[3] = m[2][1]*m[3][2] - m[2][2]*m[3][1]
	c[4] = m[2][1]*m[3][3] - m[2][3]*m[3][1]
	c[5] = m[2][2]*m[3][3] - m[2][3]*m[3][2]
	return
}

// det4 is the Laplace expansion over the first two rows. The sign of each
// term is the parity of the column permutation it represents.
func det4(s, c *[6]float64) float64 {
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Det returns the determinant of m by Laplace expansion over the 2x2
// minors of the top and bottom row pairs.
//
// Complexity: O(1), 30 multiplications against 40 for a plain cofactor
// expansion along one row.
func (m Mat4) Det() float64 {
	s, c := m.minors()
	return det4(&s, &c)
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// Blueprint:
//
//	Stage 1 (Minors): s and c, the 12 2x2 minors of the row pairs.
//	Stage 2 (Validate): det == 0 exactly → ErrSingular. Near-singular input
//	                    is not flagged; the result loses precision instead.
//	Stage 3 (Execute): each adjugate entry is a 3x3 cofactor written as three
//	                   terms, one element of m times one precomputed minor.
//	                   Columns 0-1 of the inverse draw on c, columns 2-3 on s.
//	Stage 4 (Scale): multiply by 1/det once instead of dividing 16 times.
//
// Complexity: O(1), one division.
func (m Mat4) Inverse() (Mat4, error) {
	// Stage 1: shared minors
	s, c := m.minors()

	// Stage 2: singular check
	det := det4(&s, &c)
	if det == 0 {
		return Mat4{}, matErrorf("Mat4", opInverse, ErrSingular)
	}

	// Stages 3-4: transposed cofactors scaled by 1/det
	idet := 1 / det
	var r Mat4
	r[0][0] = (c[5]*m[1][1] - c[4]*m[1][2] + c[3]*m[1][3]) * idet
	r[0][1] = (-c[5]*m[0][1] + c[4]*m[0][2] - c[3]*m[0][3]) * idet
	r[0][2] = (s[5]*m[3][1] - s[4]*m[3][2] + s[3]*m[3][3]) * idet
	r[0][3] = (-s[5]*m[2][1] + s[4]*m[2][2] - s[3]*m[2][3]) * idet
	r[1][0] = (-c[5]*m[1][0] + c[2]*m[1][2] - c[1]*m[1][3]) * idet
	r[1][1] = (c[5]*m[0][0] - c[2]*m[0][2] + c[1]*m[0][3]) * idet
	r[1][2] = (-s[5]*m[3][0] + s[2]*m[3][2] - s[1]*m[3][3]) * idet
	r[1][3] = (s[5]*m[2][0] - s[2]*m[2][2] + s[1]*m[2][3]) * idet
	r[2][0] = (c[4]*m[1][0] - c[2]*m[1][1] + c[0]*m[1][3]) * idet
	r[2][1] = (-c[4]*m[0][0] + c[2]*m[0][1] - c[0]*m[0][3]) * idet
	r[2][2] = (s[4]*m[3][0] - s[2]*m[3][1] + s[0]*m[3][3]) * idet
	r[2][3] = (-s[4]*m[2][0] + s[2]*m[2][1] - s[0]*m[2][3]) * idet
	r[3][0] = (-c[3]*m[1][0] + c[1]*m[1][1] - c[0]*m[1][2]) * idet
	r[3][1] = (c[3]*m[0][0] - c[1]*m[0][1] + c[0]*m[0][2]) * idet
	r[3][2] = (-s[3]*m[3][0] + s[1]*m[3][1] - s[0]*m[3][2]) * idet
	r[3][3] = (s[3]*m[2][0] - s[1]*m[2][1] + s[0]*m[2][2]) * idet
	return r, nil
}

// Equal reports whether m and n are identical element by element.
func (m Mat4) Equal(n Mat4) bool { return m == n }

// String formats m one row per line.
func (m Mat4) String() string { return format(m[0][:], m[1][:], m[2][:], m[3][:]) }
