// Package entropy defines positions, estimators and sentinel errors.
package entropy

import "errors"

// Sentinel errors for entropy operations.
var (
	// ErrEmptyObservations indicates the observation set has no realisations.
	ErrEmptyObservations = errors.New("entropy: observations must contain at least one realisation")

	// ErrNoPositions indicates a joint computation was requested without positions.
	ErrNoPositions = errors.New("entropy: positions are required for joint entropy")

	// ErrPositionOutOfRange indicates a position lies outside the observation shape.
	ErrPositionOutOfRange = errors.New("entropy: position out of range")

	// ErrRaggedObservations indicates realisations of differing length or shape.
	ErrRaggedObservations = errors.New("entropy: all realisations must have the same shape")
)

// Position selects one cell of a D1×D2 grid.
type Position struct {
	Row, Col int
}

// Estimator computes the entropy of R outcome tuples, one per realisation.
// Implementations must return ErrEmptyObservations for zero tuples and
// ErrRaggedObservations for tuples of differing length.
type Estimator func(outcomes [][]float64) (float64, error)

var (
	// SortEstimator is the sort-based run-length estimator (FromOutcomes).
	SortEstimator Estimator = FromOutcomes

	// FrequencyEstimator is the frequency-table estimator (FrequencyEntropy).
	FrequencyEstimator Estimator = FrequencyEntropy
)
