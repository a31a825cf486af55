package entropy

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
)

// RunLengths sorts the outcome tuples and returns the lengths of the maximal
// runs of identical tuples, in ascending lexicographic order of the tuples.
//
// Steps:
//  1. Validate: R ≥ 1 tuples, all of the same length k ≥ 1.
//  2. Build the identity permutation 0..R-1.
//  3. For c = k-1 down to 0: stable sort the permutation by component c.
//     Each pass keeps the order established by the later components, so
//     the final order is lexicographic with component 0 as primary key.
//  4. Scan adjacent pairs; record boundary b = i-1 whenever tuple i
//     differs from tuple i-1 in any component. NaN never equals anything,
//     itself included, so every tuple holding a NaN is its own run.
//  5. Lengths are the differences of [-1, b₀, b₁, ..., R-1].
//
// The input is never reordered; only the permutation is sorted.
//
// Complexity: O(k · R log R) time, O(R) extra memory.
func RunLengths(outcomes [][]float64) ([]int, error) {
	k, err := tupleWidth(outcomes)
	if err != nil {
		return nil, err
	}
	n := len(outcomes)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for c := k - 1; c >= 0; c-- {
		slices.SortStableFunc(order, func(a, b int) int {
			return cmp.Compare(outcomes[a][c], outcomes[b][c])
		})
	}

	switches := make([]int, 0, n)
	for i := 1; i < n; i++ {
		if tupleDiffers(outcomes[order[i]], outcomes[order[i-1]]) {
			switches = append(switches, i-1)
		}
	}

	return lengthsFromSwitches(switches, n), nil
}

// scalarRunLengths is RunLengths for single-component outcomes. It sorts a
// copy of the values directly instead of a permutation.
func scalarRunLengths(values []float64) []int {
	n := len(values)
	sorted := slices.Clone(values)
	slices.SortFunc(sorted, cmp.Compare[float64])

	switches := make([]int, 0, n)
	for i := 1; i < n; i++ {
		if !sameValue(sorted[i], sorted[i-1]) {
			switches = append(switches, i-1)
		}
	}

	return lengthsFromSwitches(switches, n)
}

// lengthsFromSwitches turns sorted switch points into run lengths using
// virtual boundaries at -1 and n-1.
func lengthsFromSwitches(switches []int, n int) []int {
	lengths := make([]int, 0, len(switches)+1)
	prev := -1
	for _, s := range switches {
		lengths = append(lengths, s-prev)
		prev = s
	}

	return append(lengths, (n-1)-prev)
}

// Probabilities converts run lengths into empirical probabilities ℓ/n.
// For lengths produced by RunLengths over n tuples the result sums to 1
// up to floating-point rounding.
func Probabilities(lengths []int, n int) []float64 {
	total := float64(n)

	return lo.Map(lengths, func(l int, _ int) float64 {
		return float64(l) / total
	})
}

// FromRunLengths returns H = Σ −p·log2(p) with p = ℓ/n.
// Every run produced by RunLengths has ℓ ≥ 1, so p > 0 and no 0·log 0 term
// arises; zero lengths are skipped anyway.
func FromRunLengths(lengths []int, n int) float64 {
	var h float64
	for _, p := range Probabilities(lengths, n) {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}

	return h
}

// tupleWidth validates the outcome tuples and returns their common length.
func tupleWidth(outcomes [][]float64) (int, error) {
	if len(outcomes) == 0 {
		return 0, ErrEmptyObservations
	}
	k := len(outcomes[0])
	if k == 0 {
		return 0, ErrNoPositions
	}
	for r, row := range outcomes {
		if len(row) != k {
			return 0, fmt.Errorf("realisation %d has %d components, want %d: %w", r, len(row), k, ErrRaggedObservations)
		}
	}

	return k, nil
}

// tupleDiffers reports whether two equal-length tuples differ in any
// component.
func tupleDiffers(a, b []float64) bool {
	for c := range a {
		if !sameValue(a[c], b[c]) {
			return true
		}
	}

	return false
}

// sameValue is IEEE equality: -0 equals +0, NaN equals nothing.
// Sorting still uses cmp.Compare, which places NaNs first.
func sameValue(a, b float64) bool { return a == b }

// hasNaN reports whether any component of tuple is NaN.
func hasNaN(tuple []float64) bool {
	for _, v := range tuple {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
