package entropy

import (
	"fmt"
)

// error context tags
const (
	ctxEntropy   = "Entropy"
	ctxJoint     = "JointEntropy"
	ctxJoint2D   = "JointEntropy2D"
	ctxOutcomes  = "FromOutcomes"
	ctxFrequency = "FrequencyEntropy"
)

// entropyErrorf prefixes an error with the public entry point that detected it.
func entropyErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// Entropy returns the Shannon entropy (bits) of a flat sequence of
// realisations observed at one location.
//
// Implementation: sort a copy of the values, cut runs where neighbours
// differ, then FromRunLengths. No permutation is needed for one component.
// Determinism: independent of the order of observations.
//
// Example:
//
//	h, _ := entropy.Entropy([]float64{1, 1, 2, 2}) // h == 1
//
// Errors:
//   - ErrEmptyObservations if observations is empty.
//
// Complexity: O(R log R) time, O(R) memory.
func Entropy(observations []float64) (float64, error) {
	if len(observations) == 0 {
		return 0, entropyErrorf(ctxEntropy, ErrEmptyObservations)
	}

	return FromRunLengths(scalarRunLengths(observations), len(observations)), nil
}

// JointEntropy returns the joint entropy over the columns listed in
// positions of an R × D table (one row per realisation).
//
// Implementation:
//   - Stage 1 (Validate): non-empty rows of equal width, non-empty positions
//     inside [0, D).
//   - Stage 2 (Project): copy row[p] for each p in positions into one tuple
//     per realisation; the input table is never modified.
//   - Stage 3 (Count): RunLengths over the tuples, then FromRunLengths.
//
// Behavior highlights:
//   - Columns may repeat; a repeated column does not change the result.
//   - A single realisation always yields 0.
//   - A row holding NaN in a selected column is an outcome of its own.
//
// Errors:
//   - ErrEmptyObservations  if there are no rows.
//   - ErrNoPositions        if positions is empty.
//   - ErrRaggedObservations if rows differ in length.
//   - ErrPositionOutOfRange if a column index is outside [0, D).
//
// Complexity: O(|positions| · R log R) time, O(R · |positions|) memory.
func JointEntropy(observations [][]float64, positions []int) (float64, error) {
	if len(observations) == 0 {
		return 0, entropyErrorf(ctxJoint, ErrEmptyObservations)
	}
	if len(positions) == 0 {
		return 0, entropyErrorf(ctxJoint, ErrNoPositions)
	}
	d := len(observations[0])
	for r, row := range observations {
		if len(row) != d {
			return 0, fmt.Errorf("%s: realisation %d has %d columns, want %d: %w", ctxJoint, r, len(row), d, ErrRaggedObservations)
		}
	}
	for _, p := range positions {
		if p < 0 || p >= d {
			return 0, fmt.Errorf("%s: position %d (columns %d): %w", ctxJoint, p, d, ErrPositionOutOfRange)
		}
	}

	outcomes := make([][]float64, len(observations))
	for r, row := range observations {
		tuple := make([]float64, len(positions))
		for c, p := range positions {
			tuple[c] = row[p]
		}
		outcomes[r] = tuple
	}

	lengths, err := RunLengths(outcomes)
	if err != nil {
		return 0, entropyErrorf(ctxJoint, err)
	}

	return FromRunLengths(lengths, len(outcomes)), nil
}

// JointEntropy2D returns the joint entropy over the (row, col) cells listed
// in positions of an R × D1 × D2 stack (one D1×D2 grid per realisation).
//
// Implementation: same stages as JointEntropy, with the projection reading
// plane[p.Row][p.Col]. Every realisation grid must share one D1×D2 shape.
//
// Errors:
//   - ErrEmptyObservations  if there are no realisations.
//   - ErrNoPositions        if positions is empty.
//   - ErrRaggedObservations if realisation grids differ in shape.
//   - ErrPositionOutOfRange if a position is outside the D1×D2 grid.
//
// Complexity: O(|positions| · R log R) time, O(R · |positions|) memory.
func JointEntropy2D(observations [][][]float64, positions []Position) (float64, error) {
	if len(observations) == 0 {
		return 0, entropyErrorf(ctxJoint2D, ErrEmptyObservations)
	}
	if len(positions) == 0 {
		return 0, entropyErrorf(ctxJoint2D, ErrNoPositions)
	}
	d1, d2, err := stackShape(observations)
	if err != nil {
		return 0, entropyErrorf(ctxJoint2D, err)
	}
	for _, p := range positions {
		if p.Row < 0 || p.Row >= d1 || p.Col < 0 || p.Col >= d2 {
			return 0, fmt.Errorf("%s: position (%d,%d) (grid %d×%d): %w", ctxJoint2D, p.Row, p.Col, d1, d2, ErrPositionOutOfRange)
		}
	}

	outcomes := make([][]float64, len(observations))
	for r, plane := range observations {
		tuple := make([]float64, len(positions))
		for c, p := range positions {
			tuple[c] = plane[p.Row][p.Col]
		}
		outcomes[r] = tuple
	}

	lengths, err := RunLengths(outcomes)
	if err != nil {
		return 0, entropyErrorf(ctxJoint2D, err)
	}

	return FromRunLengths(lengths, len(outcomes)), nil
}

// FromOutcomes returns the entropy of R already-projected outcome tuples.
// Each tuple holds the values of one realisation at the selected positions.
// All entry points reduce to it; it is also entropy.SortEstimator.
//
// Errors:
//   - ErrEmptyObservations  if outcomes is empty.
//   - ErrNoPositions        if tuples are empty.
//   - ErrRaggedObservations if tuples differ in length.
func FromOutcomes(outcomes [][]float64) (float64, error) {
	lengths, err := RunLengths(outcomes)
	if err != nil {
		return 0, entropyErrorf(ctxOutcomes, err)
	}

	return FromRunLengths(lengths, len(outcomes)), nil
}

// stackShape returns D1 and D2 of a rectangular R × D1 × D2 stack.
func stackShape(observations [][][]float64) (d1, d2 int, err error) {
	d1 = len(observations[0])
	if d1 > 0 {
		d2 = len(observations[0][0])
	}
	for r, plane := range observations {
		if len(plane) != d1 {
			return 0, 0, fmt.Errorf("realisation %d has %d rows, want %d: %w", r, len(plane), d1, ErrRaggedObservations)
		}
		for i, row := range plane {
			if len(row) != d2 {
				return 0, 0, fmt.Errorf("realisation %d row %d has %d columns, want %d: %w", r, i, len(row), d2, ErrRaggedObservations)
			}
		}
	}

	return d1, d2, nil
}
