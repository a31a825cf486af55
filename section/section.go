package section

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hspace/ensemble"
	"github.com/katalvlaran/hspace/entropy"
	"github.com/katalvlaran/hspace/grid"
)

// ErrNilStack indicates New was called without a realisation stack.
var ErrNilStack = errors.New("section: stack is nil")

// Section computes (joint) entropy maps over one realisation stack.
// Configuration is fixed at construction; the stack is shared read-only
// while a computation runs.
type Section struct {
	stack     *ensemble.Stack
	positions []entropy.Position
	workers   int
	estimator entropy.Estimator
	log       logrus.FieldLogger

	mu sync.Mutex
	h  *grid.Dense // memoized result of Entropy
}

// New validates the configuration against the stack shape.
//
// Implementation:
//   - Stage 1: gatherOptions applies opts over the defaults (sequential,
//     sort-based estimator, no fixed positions, discarding logger).
//   - Stage 2: every fixed position is checked against the D1×D2 section.
//
// The stack is referenced, not copied; call Reset after mutating it.
//
// Errors:
//   - ErrNilStack if stack is nil.
//   - entropy.ErrPositionOutOfRange if a fixed position is outside the section.
func New(stack *ensemble.Stack, opts ...Option) (*Section, error) {
	if stack == nil {
		return nil, ErrNilStack
	}
	o := gatherOptions(opts...)
	_, d1, d2 := stack.Shape()
	for _, p := range o.positions {
		if !stack.InSection(p.Row, p.Col) {
			return nil, fmt.Errorf("section: position (%d,%d) (section %d×%d): %w",
				p.Row, p.Col, d1, d2, entropy.ErrPositionOutOfRange)
		}
	}

	return &Section{
		stack:     stack,
		positions: o.positions,
		workers:   o.workers,
		estimator: o.estimator,
		log:       o.logger,
	}, nil
}

// Positions returns a copy of the fixed joint positions.
func (s *Section) Positions() []entropy.Position {
	return append([]entropy.Position(nil), s.positions...)
}

// Workers returns the concurrency bound.
func (s *Section) Workers() int { return s.workers }

// Entropy returns the entropy map, computing it on first use. Later calls
// return a clone of the cached map until Reset is called.
func (s *Section) Entropy(ctx context.Context) (*grid.Dense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.h == nil {
		h, err := s.Compute(ctx)
		if err != nil {
			return nil, err
		}
		s.h = h
	}

	return s.h.Clone(), nil
}

// Reset drops the memoized map, e.g. after the stack was modified.
func (s *Section) Reset() {
	s.mu.Lock()
	s.h = nil
	s.mu.Unlock()
}

// Compute evaluates every cell and returns a fresh D1×D2 map with
// map(i, j) = H(cell (i,j) ⊕ fixed positions).
//
// Implementation:
//   - Stage 1: Workers <= 1 walks rows in order; otherwise rows are handed to
//     an errgroup limited to Workers goroutines.
//   - Stage 2: each row is computed into its own slice and stored at its
//     index, so no two goroutines share memory.
//   - Stage 3: grid.FromRows assembles the map; Summary feeds the debug log.
//
// Behavior highlights:
//   - The first cell error cancels outstanding rows and is returned wrapped
//     as "section: cell (i,j): ..."; no partial map is returned.
//   - A cancelled ctx yields ctx.Err().
//   - The result ignores the memo; see Entropy for the cached variant.
//
// Complexity: O(D1·D2·(1+|positions|)·R log R) time, O(D1·D2 + R·|positions|)
// memory per worker.
func (s *Section) Compute(ctx context.Context) (*grid.Dense, error) {
	r, d1, d2 := s.stack.Shape()
	rows := make([][]float64, d1)
	var err error
	log := s.log.WithFields(logrus.Fields{
		"realisations": r,
		"rows":         d1,
		"cols":         d2,
		"positions":    len(s.positions),
		"workers":      s.workers,
	})
	log.Debug("section: computing entropy map")
	start := time.Now()

	if s.workers <= 1 {
		for i := 0; i < d1; i++ {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			if rows[i], err = s.computeRow(i); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)
		for i := 0; i < d1; i++ {
			if gctx.Err() != nil {
				break
			}
			i := i // per-iteration copy; go.mod targets go1.21 (pre-1.22 loopvar semantics)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				row, err := s.computeRow(i)
				rows[i] = row
				return err
			})
		}
		if err = g.Wait(); err != nil {
			return nil, err
		}
		if err = ctx.Err(); err != nil {
			return nil, err
		}
	}

	out, err := grid.FromRows(rows)
	if err != nil {
		return nil, err
	}
	stats := out.Summary()
	log.WithFields(logrus.Fields{
		"elapsed": time.Since(start),
		"min":     stats.Min,
		"max":     stats.Max,
		"mean":    stats.Mean,
	}).Debug("section: entropy map done")

	return out, nil
}

// computeRow evaluates row i of the section.
func (s *Section) computeRow(i int) ([]float64, error) {
	_, _, d2 := s.stack.Shape()
	row := make([]float64, d2)
	for j := range row {
		h, err := s.cellEntropy(i, j)
		if err != nil {
			return nil, fmt.Errorf("section: cell (%d,%d): %w", i, j, err)
		}
		row[j] = h
	}

	return row, nil
}

// cellEntropy evaluates one cell. Without fixed positions and with the
// default estimator it takes the scalar path; otherwise the outcome tuple is
// (cell, positions...).
func (s *Section) cellEntropy(i, j int) (float64, error) {
	if len(s.positions) == 0 && s.estimator == nil {
		obs, err := s.stack.Cell(i, j)
		if err != nil {
			return 0, err
		}
		return entropy.Entropy(obs)
	}

	joint := append([]entropy.Position{{Row: i, Col: j}}, s.positions...)
	tuples, err := s.stack.Gather(joint)
	if err != nil {
		return 0, err
	}
	est := lo.Ternary(s.estimator == nil, entropy.SortEstimator, s.estimator)

	return est(tuples)
}
