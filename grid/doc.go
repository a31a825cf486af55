// Package grid provides a dense, row-major 2-D grid of float64 values used
// to hold per-cell results over a model section (entropy maps) and single
// realisation slices.
//
// What:
//
//   - Dense: r×c flat buffer, offset = i*c + j.
//   - Safe accessors: At/Set return ErrOutOfRange instead of panicking.
//   - Numeric policy: optional rejection of NaN/±Inf on Set/Apply.
//   - Visitors (Do/Apply), Transpose, Row copies and a Summary (min/max/mean).
//
// Complexity quicksheet:
//
//   - NewDense: O(r*c); At/Set: O(1); Clone/Transpose/Summary: O(r*c).
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive rows or cols.
//   - ErrOutOfRange:        index outside the grid.
//   - ErrNaNInf:            non-finite value under the finite-only policy.
//   - ErrShapeMismatch:     data rows of differing length in FromRows.
package grid
