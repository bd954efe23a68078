package linalg

import "errors"

// Every message is prefixed with "linalg:" so wrapped errors stay greppable.
// Callers match these with errors.Is; functions wrap them with context.
var (
	// ErrBadShape is returned for empty or ragged matrices.
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. MulMatMat where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned when a pivot column is entirely zero during LU,
	// or a triangular factor has a zero on its diagonal.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrBadPermutation is returned when a permutation is not a bijection on [0, n).
	ErrBadPermutation = errors.New("linalg: invalid permutation")
)
