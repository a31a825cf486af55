// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every public operation returns one of these (optionally wrapped with call
// context via %w); callers match them with errors.Is. Panics are reserved for
// nonsensical option values.

package grid

import "errors"

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only policy.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")

	// ErrShapeMismatch indicates rows of differing length in a 2-D literal.
	ErrShapeMismatch = errors.New("grid: all rows must have the same length")
)
