package linalg

import (
	"fmt"
	"math"
)

// LU factors the square matrix m with partial pivoting so that P·M = L·U,
// where row i of P·M is row p[i] of m, L is unit lower triangular and U is
// upper triangular.
//
// At column k the row with the largest |U[r][k]| (r ≥ k, first one on ties)
// is swapped onto the diagonal before elimination. ErrSingular is returned
// when that pivot is zero, i.e. the rest of the column is entirely zero.
// Complexity: O(n³) time, O(n²) memory.
func LU(m Mat) (Perm, Mat, Mat, error) {
	if err := m.validateSquare(); err != nil {
		return nil, nil, nil, fmt.Errorf("LU: %w", err)
	}
	n := m.Rows()

	p := IdentityPerm(n)
	l, _ := Identity(n)
	u := m.Clone()

	for k := 0; k < n; k++ {
		pivot := k
		best := math.Abs(u[k][k])
		for r := k + 1; r < n; r++ {
			if v := math.Abs(u[r][k]); v > best {
				best, pivot = v, r
			}
		}
		if best == 0 {
			return nil, nil, nil, fmt.Errorf("LU: zero pivot column %d: %w", k, ErrSingular)
		}

		if pivot != k {
			u[k], u[pivot] = u[pivot], u[k]
			p[k], p[pivot] = p[pivot], p[k]
			// multipliers already stored in L follow their rows
			for j := 0; j < k; j++ {
				l[k][j], l[pivot][j] = l[pivot][j], l[k][j]
			}
		}

		for r := k + 1; r < n; r++ {
			c := u[r][k] / u[k][k]
			l[r][k] = c
			u[r][k] = 0
			for j := k + 1; j < n; j++ {
				u[r][j] -= c * u[k][j]
			}
		}
	}

	return p, l, u, nil
}

// InvertUpper inverts an upper triangular matrix by back substitution,
// one column of the inverse at a time. Entries below the diagonal are ignored.
func InvertUpper(u Mat) (Mat, error) {
	if err := u.validateSquare(); err != nil {
		return nil, fmt.Errorf("InvertUpper: %w", err)
	}
	n := u.Rows()
	inv, _ := NewMat(n, n)
	for k := 0; k < n; k++ {
		if u[k][k] == 0 {
			return nil, fmt.Errorf("InvertUpper: zero diagonal at %d: %w", k, ErrSingular)
		}
		inv[k][k] = 1 / u[k][k]
		for i := k - 1; i >= 0; i-- {
			var sum float64
			for j := i + 1; j <= k; j++ {
				sum += u[i][j] * inv[j][k]
			}
			inv[i][k] = -sum / u[i][i]
		}
	}
	return inv, nil
}

// InvertLower inverts a lower triangular matrix by forward substitution.
// Entries above the diagonal are ignored.
func InvertLower(l Mat) (Mat, error) {
	if err := l.validateSquare(); err != nil {
		return nil, fmt.Errorf("InvertLower: %w", err)
	}
	n := l.Rows()
	for k := 0; k < n; k++ {
		if l[k][k] == 0 {
			return nil, fmt.Errorf("InvertLower: zero diagonal at %d: %w", k, ErrSingular)
		}
	}
	inv, _ := NewMat(n, n)
	for k := 0; k < n; k++ {
		inv[k][k] = 1 / l[k][k]
		for i := k + 1; i < n; i++ {
			var sum float64
			for j := k; j < i; j++ {
				sum += l[i][j] * inv[j][k]
			}
			inv[i][k] = -sum / l[i][i]
		}
	}
	return inv, nil
}

// Invert returns m⁻¹.
//
// With P·M = L·U we have M⁻¹ = U⁻¹·L⁻¹·P, and right-multiplying by P is a
// column permutation: column j of U⁻¹·L⁻¹ moves to column p[j].
func Invert(m Mat) (Mat, error) {
	p, l, u, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}
	lInv, err := InvertLower(l)
	if err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}
	uInv, err := InvertUpper(u)
	if err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}
	inv, err := MulMatMat(uInv, lInv)
	if err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}
	if err := PermuteCols(p, inv); err != nil {
		return nil, fmt.Errorf("Invert: %w", err)
	}
	return inv, nil
}
