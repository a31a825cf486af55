package section_test

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hspace/ensemble"
	"github.com/katalvlaran/hspace/entropy"
	"github.com/katalvlaran/hspace/section"
)

// SectionSuite exercises entropy maps over a random categorical stack.
type SectionSuite struct {
	suite.Suite
	vals  [][][]float64
	stack *ensemble.Stack
}

// SetupTest builds 30 realisations of a 6×5 section with 3 lithologies;
// column 0 is constant so its entropy is zero.
func (s *SectionSuite) SetupTest() {
	rng := rand.New(rand.NewSource(11))
	const r, d1, d2 = 30, 6, 5
	s.vals = make([][][]float64, r)
	for k := range s.vals {
		plane := make([][]float64, d1)
		for i := range plane {
			row := make([]float64, d2)
			for j := range row {
				if j > 0 {
					row[j] = float64(rng.Intn(3))
				}
			}
			plane[i] = row
		}
		s.vals[k] = plane
	}
	var err error
	s.stack, err = ensemble.FromSlices(s.vals)
	s.Require().NoError(err)
}

// column returns the R values at (i, j).
func (s *SectionSuite) column(i, j int) []float64 {
	out := make([]float64, len(s.vals))
	for k := range s.vals {
		out[k] = s.vals[k][i][j]
	}

	return out
}

// TestPerCellEntropy verifies each map cell equals entropy.Entropy of that cell.
func (s *SectionSuite) TestPerCellEntropy() {
	sec, err := section.New(s.stack)
	s.Require().NoError(err)

	h, err := sec.Compute(context.Background())
	s.Require().NoError(err)
	s.Equal(6, h.Rows())
	s.Equal(5, h.Cols())
	for i := 0; i < 6; i++ {
		for j := 0; j < 5; j++ {
			want, err := entropy.Entropy(s.column(i, j))
			s.Require().NoError(err)
			got, err := h.At(i, j)
			s.Require().NoError(err)
			s.InDelta(want, got, 1e-12, "cell (%d,%d)", i, j)
			if j == 0 {
				s.Equal(0.0, got)
			}
		}
	}
}

// TestJointWithPositions verifies the cell is joined with the fixed positions.
func (s *SectionSuite) TestJointWithPositions() {
	fixed := []entropy.Position{{Row: 2, Col: 3}, {Row: 5, Col: 1}}
	sec, err := section.New(s.stack, section.WithPositions(fixed))
	s.Require().NoError(err)
	s.Equal(fixed, sec.Positions())

	h, err := sec.Compute(context.Background())
	s.Require().NoError(err)
	for i := 0; i < 6; i++ {
		for j := 0; j < 5; j++ {
			joint := append([]entropy.Position{{Row: i, Col: j}}, fixed...)
			want, err := entropy.JointEntropy2D(s.vals, joint)
			s.Require().NoError(err)
			got, _ := h.At(i, j)
			s.InDelta(want, got, 1e-12, "cell (%d,%d)", i, j)
		}
	}
}

// TestParallelMatchesSequential verifies worker count does not change results.
func (s *SectionSuite) TestParallelMatchesSequential() {
	seq, err := section.New(s.stack, section.WithPositions([]entropy.Position{{Row: 0, Col: 4}}))
	s.Require().NoError(err)
	par, err := section.New(s.stack,
		section.WithPositions([]entropy.Position{{Row: 0, Col: 4}}),
		section.WithWorkers(4),
	)
	s.Require().NoError(err)
	s.Equal(4, par.Workers())

	hs, err := seq.Compute(context.Background())
	s.Require().NoError(err)
	hp, err := par.Compute(context.Background())
	s.Require().NoError(err)
	s.Equal(hs.String(), hp.String())
}

// TestFrequencyEstimator verifies the alternative estimator gives the same map.
func (s *SectionSuite) TestFrequencyEstimator() {
	sorted, err := section.New(s.stack)
	s.Require().NoError(err)
	freq, err := section.New(s.stack, section.WithEstimator(entropy.FrequencyEstimator), section.WithWorkers(3))
	s.Require().NoError(err)

	hs, err := sorted.Compute(context.Background())
	s.Require().NoError(err)
	hf, err := freq.Compute(context.Background())
	s.Require().NoError(err)
	hs.Do(func(i, j int, v float64) bool {
		f, _ := hf.At(i, j)
		s.InDelta(v, f, 1e-9)
		return true
	})
}

// TestMemoization verifies Entropy caches, returns clones, and Reset recomputes.
func (s *SectionSuite) TestMemoization() {
	sec, err := section.New(s.stack)
	s.Require().NoError(err)

	first, err := sec.Entropy(context.Background())
	s.Require().NoError(err)
	s.Require().NoError(first.Set(0, 1, 42))

	// Make cell (0,1) constant; the cached map must not notice until Reset.
	for k := 0; k < s.stack.Realisations(); k++ {
		s.Require().NoError(s.stack.Set(k, 0, 1, 1))
	}
	second, err := sec.Entropy(context.Background())
	s.Require().NoError(err)
	cached, _ := second.At(0, 1)
	want, _ := entropy.Entropy(s.column(0, 1))
	s.InDelta(want, cached, 1e-12, "clone was modified, cache was not")

	sec.Reset()
	third, err := sec.Entropy(context.Background())
	s.Require().NoError(err)
	fresh, _ := third.At(0, 1)
	s.Equal(0.0, fresh)
}

// TestEstimatorErrorAborts verifies a failing cell surfaces with its
// coordinates and no partial map, sequentially and across workers.
func (s *SectionSuite) TestEstimatorErrorAborts() {
	boom := errors.New("boom")
	failOn := func(n int64, calls *atomic.Int64) entropy.Estimator {
		return func(outcomes [][]float64) (float64, error) {
			if calls.Add(1) == n {
				return 0, boom
			}
			return entropy.FromOutcomes(outcomes)
		}
	}

	var calls atomic.Int64
	sec, err := section.New(s.stack, section.WithEstimator(failOn(7, &calls)))
	s.Require().NoError(err)
	h, err := sec.Compute(context.Background())
	s.Nil(h)
	s.ErrorIs(err, boom)
	s.Contains(err.Error(), "cell (1,1)")
	s.Equal(int64(7), calls.Load(), "sequential evaluation stops at the failing cell")

	// 40×40 section, 4 workers: the batch stops long before every cell ran.
	big, err := ensemble.New(5, 40, 40)
	s.Require().NoError(err)
	calls.Store(0)
	sec, err = section.New(big, section.WithWorkers(4), section.WithEstimator(failOn(50, &calls)))
	s.Require().NoError(err)
	h, err = sec.Compute(context.Background())
	s.Nil(h)
	s.ErrorIs(err, boom)
	s.True(strings.HasPrefix(err.Error(), "section: cell ("), err.Error())
	s.Less(calls.Load(), int64(40*40))
}

// TestCancelledContext verifies no partial map is returned.
func (s *SectionSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		sec, err := section.New(s.stack, section.WithWorkers(workers))
		s.Require().NoError(err)
		h, err := sec.Compute(ctx)
		s.Nil(h)
		s.ErrorIs(err, context.Canceled)
	}
}

// TestDebugLogging verifies start and finish entries reach the logger.
func (s *SectionSuite) TestDebugLogging() {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	sec, err := section.New(s.stack, section.WithLogger(logger))
	s.Require().NoError(err)
	_, err = sec.Compute(context.Background())
	s.Require().NoError(err)

	entries := hook.AllEntries()
	s.Require().Len(entries, 2)
	s.Equal(30, entries[0].Data["realisations"])
	s.Contains(entries[1].Data, "elapsed")
}

func TestSectionSuite(t *testing.T) {
	suite.Run(t, new(SectionSuite))
}

// TestNew_Errors verifies constructor and option validation.
func TestNew_Errors(t *testing.T) {
	_, err := section.New(nil)
	require.ErrorIs(t, err, section.ErrNilStack)

	stack, err := ensemble.New(2, 3, 3)
	require.NoError(t, err)
	_, err = section.New(stack, section.WithPositions([]entropy.Position{{Row: 3, Col: 0}}))
	require.ErrorIs(t, err, entropy.ErrPositionOutOfRange)

	require.Panics(t, func() { section.WithEstimator(nil) })
}
