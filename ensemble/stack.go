package ensemble

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hspace/entropy"
	"github.com/katalvlaran/hspace/grid"
)

// Stack holds R realisations of a D1×D2 section.
type Stack struct {
	r, d1, d2 int
	data      []float64
}

// New allocates a zero-filled stack of r realisations of a d1×d2 section.
// Returns ErrInvalidDimensions if any dimension is non-positive or r·d1·d2
// does not fit in an int.
// Complexity: O(r·d1·d2).
func New(r, d1, d2 int) (*Stack, error) {
	n, err := cellCount(r, d1, d2)
	if err != nil {
		return nil, err
	}

	return &Stack{r: r, d1: d1, d2: d2, data: make([]float64, n)}, nil
}

// cellCount returns r·d1·d2, rejecting non-positive or overflowing shapes.
func cellCount(r, d1, d2 int) (int, error) {
	if r <= 0 || d1 <= 0 || d2 <= 0 {
		return 0, ErrInvalidDimensions
	}
	if d1 > math.MaxInt/d2 || r > math.MaxInt/(d1*d2) {
		return 0, fmt.Errorf("%d×%d×%d overflows int: %w", r, d1, d2, ErrInvalidDimensions)
	}

	return r * d1 * d2, nil
}

// FromSlices builds a Stack from values[k][i][j] (deep copy).
// Returns ErrEmptyStack if any axis is empty and ErrNonRectangular if the
// realisations do not share one shape.
func FromSlices(values [][][]float64) (*Stack, error) {
	if len(values) == 0 || len(values[0]) == 0 || len(values[0][0]) == 0 {
		return nil, ErrEmptyStack
	}
	r, d1, d2 := len(values), len(values[0]), len(values[0][0])
	n, err := cellCount(r, d1, d2)
	if err != nil {
		return nil, err
	}
	s := &Stack{r: r, d1: d1, d2: d2, data: make([]float64, n)}
	for k, plane := range values {
		if len(plane) != d1 {
			return nil, fmt.Errorf("FromSlices: realisation %d has %d rows, want %d: %w", k, len(plane), d1, ErrNonRectangular)
		}
		for i, row := range plane {
			if len(row) != d2 {
				return nil, fmt.Errorf("FromSlices: realisation %d row %d has %d columns, want %d: %w", k, i, len(row), d2, ErrNonRectangular)
			}
			copy(s.data[s.offset(k, i, 0):], row)
		}
	}

	return s, nil
}

// Shape returns (realisations, rows, cols).
func (s *Stack) Shape() (r, d1, d2 int) { return s.r, s.d1, s.d2 }

// Realisations returns R.
func (s *Stack) Realisations() int { return s.r }

func (s *Stack) offset(k, i, j int) int {
	return k*s.d1*s.d2 + i*s.d2 + j
}

func (s *Stack) inBounds(k, i, j int) bool {
	return k >= 0 && k < s.r && i >= 0 && i < s.d1 && j >= 0 && j < s.d2
}

// InSection reports whether (i, j) lies within the D1×D2 section.
func (s *Stack) InSection(i, j int) bool {
	return i >= 0 && i < s.d1 && j >= 0 && j < s.d2
}

// At returns realisation k's value at (i, j).
func (s *Stack) At(k, i, j int) (float64, error) {
	if !s.inBounds(k, i, j) {
		return 0, fmt.Errorf("Stack.At(%d,%d,%d): %w", k, i, j, ErrOutOfRange)
	}

	return s.data[s.offset(k, i, j)], nil
}

// Set stores v as realisation k's value at (i, j).
func (s *Stack) Set(k, i, j int, v float64) error {
	if !s.inBounds(k, i, j) {
		return fmt.Errorf("Stack.Set(%d,%d,%d): %w", k, i, j, ErrOutOfRange)
	}
	s.data[s.offset(k, i, j)] = v

	return nil
}

// Cell returns the R values observed at (i, j), one per realisation.
// The result is a fresh slice; callers may sort it.
// Complexity: O(R).
func (s *Stack) Cell(i, j int) ([]float64, error) {
	if !s.InSection(i, j) {
		return nil, fmt.Errorf("Stack.Cell(%d,%d): %w", i, j, ErrOutOfRange)
	}
	out := make([]float64, s.r)
	s.fillCell(out, i, j)

	return out, nil
}

// fillCell writes the R values at (i, j) into dst without bounds checks.
func (s *Stack) fillCell(dst []float64, i, j int) {
	stride := s.d1 * s.d2
	off := i*s.d2 + j
	for k := range dst {
		dst[k] = s.data[off+k*stride]
	}
}

// Gather projects the stack onto positions: row k of the result holds
// realisation k's values at positions[0], positions[1], ... in order.
// This is the outcome-tuple matrix consumed by entropy.FromOutcomes.
//
// Errors:
//   - entropy.ErrNoPositions        if positions is empty.
//   - entropy.ErrPositionOutOfRange if a position is outside the section.
//
// Complexity: O(R · |positions|).
func (s *Stack) Gather(positions []entropy.Position) ([][]float64, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("Stack.Gather: %w", entropy.ErrNoPositions)
	}
	for _, p := range positions {
		if !s.InSection(p.Row, p.Col) {
			return nil, fmt.Errorf("Stack.Gather: position (%d,%d) (section %d×%d): %w",
				p.Row, p.Col, s.d1, s.d2, entropy.ErrPositionOutOfRange)
		}
	}

	k := len(positions)
	flat := make([]float64, s.r*k)
	out := make([][]float64, s.r)
	stride := s.d1 * s.d2
	for r := range out {
		tuple := flat[r*k : (r+1)*k : (r+1)*k]
		base := r * stride
		for c, p := range positions {
			tuple[c] = s.data[base+p.Row*s.d2+p.Col]
		}
		out[r] = tuple
	}

	return out, nil
}

// Realisation returns realisation k as a D1×D2 grid (copy).
func (s *Stack) Realisation(k int) (*grid.Dense, error) {
	if k < 0 || k >= s.r {
		return nil, fmt.Errorf("Stack.Realisation(%d): %w", k, ErrOutOfRange)
	}
	g, err := grid.NewDense(s.d1, s.d2, grid.WithValidateNaNInf(false))
	if err != nil {
		return nil, err
	}
	base := k * s.d1 * s.d2
	err = g.Apply(func(i, j int, _ float64) float64 {
		return s.data[base+i*s.d2+j]
	})

	return g, err
}

// Slices returns a deep copy as values[k][i][j].
func (s *Stack) Slices() [][][]float64 {
	out := make([][][]float64, s.r)
	for k := range out {
		plane := make([][]float64, s.d1)
		for i := range plane {
			row := make([]float64, s.d2)
			copy(row, s.data[s.offset(k, i, 0):s.offset(k, i, 0)+s.d2])
			plane[i] = row
		}
		out[k] = plane
	}

	return out
}
