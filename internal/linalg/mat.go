// Package linalg provides the small dense linear algebra needed to derive
// colour-space matrices: vectors, row-major matrices, permutations, LU
// decomposition with partial pivoting and matrix inversion.
//
// All arithmetic is float64. Matrices are plain [][]float64 so literal
// constants can be written inline; every operation validates shape and
// returns a wrapped sentinel error rather than panicking.
package linalg

import "fmt"

// Vec is a dense vector.
type Vec []float64

// Mat is a dense row-major matrix. A valid Mat has at least one row and
// every row has the same non-zero length.
type Mat [][]float64

// NewMat allocates a zeroed rows×cols matrix.
func NewMat(rows, cols int) (Mat, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewMat %dx%d: %w", rows, cols, ErrBadShape)
	}
	data := make([]float64, rows*cols)
	m := make(Mat, rows)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (Mat, error) {
	m, err := NewMat(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m Mat) Rows() int { return len(m) }

// Cols returns the number of columns, or 0 for an empty matrix.
func (m Mat) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy of m.
func (m Mat) Clone() Mat {
	if len(m) == 0 {
		return nil
	}
	out, _ := NewMat(m.Rows(), m.Cols())
	for i := range m {
		copy(out[i], m[i])
	}
	return out
}

// Col returns a copy of column j.
func (m Mat) Col(j int) Vec {
	out := make(Vec, len(m))
	for i := range m {
		out[i] = m[i][j]
	}
	return out
}

// validate checks that m is non-empty and rectangular.
func (m Mat) validate() error {
	if len(m) == 0 || len(m[0]) == 0 {
		return ErrBadShape
	}
	cols := len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrBadShape)
		}
	}
	return nil
}

// validateSquare checks that m is a valid square matrix.
func (m Mat) validateSquare() error {
	if err := m.validate(); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}
	return nil
}
