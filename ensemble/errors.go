package ensemble

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive realisation count or grid size.
	ErrInvalidDimensions = errors.New("ensemble: dimensions must be > 0")
	// ErrEmptyStack indicates a literal with no realisations, rows or columns.
	ErrEmptyStack = errors.New("ensemble: stack must have at least one realisation, row and column")
	// ErrNonRectangular indicates realisations or rows of differing size.
	ErrNonRectangular = errors.New("ensemble: all realisations must share one rectangular shape")
	// ErrOutOfRange indicates a realisation, row or column index outside the stack.
	ErrOutOfRange = errors.New("ensemble: index out of range")
)
