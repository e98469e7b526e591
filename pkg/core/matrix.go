package core

import (
	"fmt"
	"math"
)

// Matrix is a 4x4 row-major matrix. It is a value type; all operations
// return new matrices.
//
// Composition reads right to left: A.Multiply(B).MultiplyTuple(p) applies B first.
type Matrix [4][4]float64

// Identity returns the identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple returns m * t
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Submatrix returns the 3x3 matrix left after removing the given row and column
func (m Matrix) Submatrix(row, col int) [][]float64 {
	return submatrix(m.rows(), row, col)
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return determinant(m.Submatrix(row, col))
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along the first row
func (m Matrix) Determinant() float64 {
	return determinant(m.rows())
}

// IsInvertible reports whether the determinant is non-zero
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse via the adjugate, or ErrSingularMatrix
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrSingularMatrix
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed on write
			result[col][row] = m.Cofactor(row, col) / det
		}
	}
	return result, nil
}

// ApproxEqual compares all entries within Epsilon
func (m Matrix) ApproxEqual(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m[row][col]-other[row][col]) >= Epsilon {
				return false
			}
		}
	}
	return true
}

// String formats the matrix one row per line
func (m Matrix) String() string {
	return fmt.Sprintf("|%9.5f %9.5f %9.5f %9.5f|\n|%9.5f %9.5f %9.5f %9.5f|\n|%9.5f %9.5f %9.5f %9.5f|\n|%9.5f %9.5f %9.5f %9.5f|",
		m[0][0], m[0][1], m[0][2], m[0][3],
		m[1][0], m[1][1], m[1][2], m[1][3],
		m[2][0], m[2][1], m[2][2], m[2][3],
		m[3][0], m[3][1], m[3][2], m[3][3])
}

func (m Matrix) rows() [][]float64 {
	rows := make([][]float64, 4)
	for i := range m {
		rows[i] = m[i][:]
	}
	return rows
}

func submatrix(rows [][]float64, row, col int) [][]float64 {
	result := make([][]float64, 0, len(rows)-1)
	for r := range rows {
		if r == row {
			continue
		}
		line := make([]float64, 0, len(rows)-1)
		for c := range rows[r] {
			if c == col {
				continue
			}
			line = append(line, rows[r][c])
		}
		result = append(result, line)
	}
	return result
}

func determinant(rows [][]float64) float64 {
	if len(rows) == 2 {
		return rows[0][0]*rows[1][1] - rows[0][1]*rows[1][0]
	}

	det := 0.0
	for col := range rows[0] {
		cofactor := determinant(submatrix(rows, 0, col))
		if col%2 == 1 {
			cofactor = -cofactor
		}
		det += rows[0][col] * cofactor
	}
	return det
}
