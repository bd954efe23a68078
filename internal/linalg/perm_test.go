package linalg_test

import (
	"testing"

	"github.com/jmylchreest/halftone/internal/linalg"
	"github.com/stretchr/testify/require"
)

func TestInvertPerm(t *testing.T) {
	tests := []struct {
		name string
		p    linalg.Perm
		want linalg.Perm
	}{
		{"empty", linalg.Perm{}, linalg.Perm{}},
		{"identity", linalg.Perm{0, 1, 2}, linalg.Perm{0, 1, 2}},
		{"swap", linalg.Perm{1, 0, 2}, linalg.Perm{1, 0, 2}},
		{"3-cycle", linalg.Perm{1, 2, 0}, linalg.Perm{2, 0, 1}},
		{"two cycles", linalg.Perm{3, 2, 1, 4, 0}, linalg.Perm{4, 2, 1, 0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := append(linalg.Perm(nil), tt.p...)
			linalg.InvertPerm(p)
			require.Equal(t, tt.want, p)
			for i := range tt.p {
				require.Equal(t, i, p[tt.p[i]])
			}
		})
	}
}

func TestPermuteSlice(t *testing.T) {
	p := linalg.Perm{2, 0, 1, 3}
	s := []string{"a", "b", "c", "d"}
	require.NoError(t, linalg.PermuteSlice(p, s))
	require.Equal(t, []string{"b", "c", "a", "d"}, s)
	require.Equal(t, linalg.Perm{2, 0, 1, 3}, p, "permutation must be restored")

	require.ErrorIs(t, linalg.PermuteSlice(p, []string{"x"}), linalg.ErrDimensionMismatch)
}

func TestPermute_SubRange(t *testing.T) {
	// cycle (1 2) lives inside [1, 3); index 0 and 3 are fixed points
	p := linalg.Perm{0, 2, 1, 3}
	s := []int{10, 11, 12, 13}
	linalg.Permute(p,
		func(i int) int { return s[i] },
		func(i, v int) { s[i] = v },
		1, 3)
	require.Equal(t, []int{10, 12, 11, 13}, s)
	require.Equal(t, linalg.Perm{0, 2, 1, 3}, p)
}

func TestPermuteCols(t *testing.T) {
	m := linalg.Mat{{1, 2, 3}, {4, 5, 6}}
	require.NoError(t, linalg.PermuteCols(linalg.Perm{1, 2, 0}, m))
	require.Equal(t, linalg.Mat{{3, 1, 2}, {6, 4, 5}}, m)
}

func TestPermValidate(t *testing.T) {
	require.NoError(t, linalg.Perm{2, 0, 1}.Validate())
	require.ErrorIs(t, linalg.Perm{0, 0, 1}.Validate(), linalg.ErrBadPermutation)
	require.ErrorIs(t, linalg.Perm{0, 3}.Validate(), linalg.ErrBadPermutation)
}
