package linalg

import "fmt"

// Dot returns the sum of elementwise products of a and b.
func Dot(a, b Vec) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("Dot: lengths %d and %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// MulMatVec returns m·v, one dot product per row.
func MulMatVec(m Mat, v Vec) (Vec, error) {
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("MulMatVec: %w", err)
	}
	if m.Cols() != len(v) {
		return nil, fmt.Errorf("MulMatVec: %dx%d times %d: %w", m.Rows(), m.Cols(), len(v), ErrDimensionMismatch)
	}
	out := make(Vec, m.Rows())
	for i, row := range m {
		// lengths already checked
		out[i], _ = Dot(row, v)
	}
	return out, nil
}

// MulMatMat returns the matrix product a·b.
// Fails with ErrDimensionMismatch when a.Cols() != b.Rows().
func MulMatMat(a, b Mat) (Mat, error) {
	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("MulMatMat: left: %w", err)
	}
	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("MulMatMat: right: %w", err)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("MulMatMat: %dx%d times %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	out, err := NewMat(a.Rows(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("MulMatMat: %w", err)
	}
	inner := a.Cols()
	for i := range out {
		for j := range out[i] {
			var sum float64
			for k := 0; k < inner; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out, nil
}

// Transpose returns mᵗ.
func Transpose(m Mat) (Mat, error) {
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	out, err := NewMat(m.Cols(), m.Rows())
	if err != nil {
		return nil, fmt.Errorf("Transpose: %w", err)
	}
	for i := range m {
		for j := range m[i] {
			out[j][i] = m[i][j]
		}
	}
	return out, nil
}

// ScaleCols returns a copy of m with column j multiplied by s[j].
func ScaleCols(m Mat, s Vec) (Mat, error) {
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("ScaleCols: %w", err)
	}
	if m.Cols() != len(s) {
		return nil, fmt.Errorf("ScaleCols: %d columns, %d factors: %w", m.Cols(), len(s), ErrDimensionMismatch)
	}
	out := m.Clone()
	for i := range out {
		for j := range out[i] {
			out[i][j] *= s[j]
		}
	}
	return out, nil
}
