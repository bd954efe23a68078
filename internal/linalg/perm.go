package linalg

import "fmt"

// Perm is a permutation of [0, n). A Perm p maps index i to index p[i].
type Perm []int

// IdentityPerm returns the identity permutation of length n.
func IdentityPerm(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// Validate reports ErrBadPermutation unless p is a bijection on [0, len(p)).
func (p Perm) Validate() error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return fmt.Errorf("index %d maps to %d: %w", i, v, ErrBadPermutation)
		}
		seen[v] = true
	}
	return nil
}

// InvertPerm inverts p in place by following its cycles.
//
// Visited entries are marked by shifting them below zero and restored at
// the end, so no scratch storage is needed.
func InvertPerm(p Perm) {
	n := len(p)
	for i := 0; i < n; i++ {
		if p[i] < 0 {
			continue
		}
		prev, curr := i, p[i]
		for {
			next := p[curr]
			p[curr] = prev - n
			if curr == i {
				break
			}
			prev, curr = curr, next
		}
	}
	for i := range p {
		p[i] += n
	}
}

// Permute applies p to arbitrary indexable storage through read and write:
// the element stored at index i moves to index p[i].
//
// Only cycles that start at an index in [start, stop) are applied; the
// caller must make sure those cycles stay inside the range it means to
// permute. p is marked while the cycles are walked and restored before
// Permute returns.
func Permute[T any](p Perm, read func(int) T, write func(int, T), start, stop int) {
	n := len(p)
	if start < 0 {
		start = 0
	}
	if stop > n {
		stop = n
	}
	for k := start; k < stop; k++ {
		if p[k] < 0 {
			continue
		}
		carry := read(k)
		curr := p[k]
		p[k] -= n
		for curr != k {
			next := read(curr)
			write(curr, carry)
			carry = next
			nxt := p[curr]
			p[curr] -= n
			curr = nxt
		}
		write(k, carry)
	}
	for i := range p {
		if p[i] < 0 {
			p[i] += n
		}
	}
}

// PermuteSlice moves s[i] to s[p[i]] for every i.
func PermuteSlice[T any](p Perm, s []T) error {
	if len(p) != len(s) {
		return fmt.Errorf("PermuteSlice: permutation %d, slice %d: %w", len(p), len(s), ErrDimensionMismatch)
	}
	Permute(p,
		func(i int) T { return s[i] },
		func(i int, v T) { s[i] = v },
		0, len(p))
	return nil
}

// PermuteCols moves column j of m to column p[j], in place.
func PermuteCols(p Perm, m Mat) error {
	if err := m.validate(); err != nil {
		return fmt.Errorf("PermuteCols: %w", err)
	}
	if len(p) != m.Cols() {
		return fmt.Errorf("PermuteCols: permutation %d, %d columns: %w", len(p), m.Cols(), ErrDimensionMismatch)
	}
	read := func(j int) Vec { return m.Col(j) }
	write := func(j int, col Vec) {
		for i := range m {
			m[i][j] = col[i]
		}
	}
	Permute(p, read, write, 0, len(p))
	return nil
}
