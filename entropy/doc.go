// Package entropy computes the Shannon entropy (base 2) of the empirical
// outcome distribution observed across an ensemble of realisations, for a
// single location or jointly for several locations.
//
// What:
//
//   - Entropy:        one location, a flat sequence of R scalars.
//   - JointEntropy:   R × D table, columns selected by index.
//   - JointEntropy2D: R × D1 × D2 stack, cells selected by (row, col).
//   - FromOutcomes:   already-projected outcome tuples, one per realisation.
//   - FrequencyEntropy: the conventional frequency-table estimator, same result.
//
// How (sort instead of histogram):
//
//  1. Project every realisation onto the selected positions → outcome tuple.
//  2. Stable-sort the tuples lexicographically, one component per pass
//     (last component first, so the first component ends up as primary key).
//  3. Scan once for boundaries where a tuple differs from its predecessor.
//  4. Run lengths = differences of [-1, boundaries..., R-1].
//  5. p = ℓ / R, H = Σ −p·log2(p).
//
// No hashing and no binning: outcomes are compared by exact value, so the
// method works for any alphabet size. Continuous inputs therefore tend toward
// H = log2(R); discretise them upstream if that is not what you want.
//
// Properties:
//
//   - H = 0      iff all R outcomes are identical (a single run).
//   - H = log2 R iff all R outcomes are distinct.
//   - Independent of realisation order.
//
// Errors:
//
//   - ErrEmptyObservations:  no realisations.
//   - ErrNoPositions:        positions missing for a joint (table or stack) input.
//   - ErrPositionOutOfRange: a position outside the data shape.
//   - ErrRaggedObservations: realisations of differing shape.
//
// Complexity:
//
//   - Time:   O(k · R log R) for k selected positions.
//   - Memory: O(R · k).
//
// All functions are pure and safe for concurrent use.
package entropy
