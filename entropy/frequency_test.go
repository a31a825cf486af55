package entropy_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hspace/entropy"
)

// EstimatorSuite cross-checks the sort-based and frequency-table estimators.
type EstimatorSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *EstimatorSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(2024))
}

// randomOutcomes builds n tuples of width k over an alphabet of size a.
func (s *EstimatorSuite) randomOutcomes(n, k, a int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		tuple := make([]float64, k)
		for c := range tuple {
			tuple[c] = float64(s.rng.Intn(a))
		}
		out[i] = tuple
	}

	return out
}

// TestAgreeOnRandomInputs verifies both estimators return the same entropy.
func (s *EstimatorSuite) TestAgreeOnRandomInputs() {
	for trial := 0; trial < 40; trial++ {
		outcomes := s.randomOutcomes(1+s.rng.Intn(500), 1+s.rng.Intn(3), 2+s.rng.Intn(6))

		sorted, err := entropy.SortEstimator(outcomes)
		require.NoError(s.T(), err)
		freq, err := entropy.FrequencyEstimator(outcomes)
		require.NoError(s.T(), err)
		s.InDelta(sorted, freq, 1e-9)
	}
}

// TestAgreeOnSpecialValues verifies both estimators share the same equality
// for signed zeros and NaNs.
func (s *EstimatorSuite) TestAgreeOnSpecialValues() {
	outcomes := [][]float64{
		{math.Copysign(0, -1), math.NaN()},
		{0, math.NaN()},
		{0, 1},
		{math.Inf(-1), 1},
	}

	sorted, err := entropy.FromOutcomes(outcomes)
	require.NoError(s.T(), err)
	freq, err := entropy.FrequencyEntropy(outcomes)
	require.NoError(s.T(), err)
	s.InDelta(2.0, sorted, 1e-12, "the two NaN tuples are distinct outcomes")
	s.InDelta(sorted, freq, 1e-12)

	mixed := [][]float64{{math.NaN()}, {math.NaN()}, {math.Copysign(0, -1)}, {0}, {1}, {1}}
	sorted, err = entropy.FromOutcomes(mixed)
	require.NoError(s.T(), err)
	freq, err = entropy.FrequencyEntropy(mixed)
	require.NoError(s.T(), err)
	s.InDelta(sorted, freq, 1e-12)
}

// TestErrors verifies the frequency estimator validates like the sort one.
func (s *EstimatorSuite) TestErrors() {
	_, err := entropy.FrequencyEntropy(nil)
	s.ErrorIs(err, entropy.ErrEmptyObservations)

	_, err = entropy.FrequencyEntropy([][]float64{{1}, {}})
	s.ErrorIs(err, entropy.ErrRaggedObservations)
}

func TestEstimatorSuite(t *testing.T) {
	suite.Run(t, new(EstimatorSuite))
}
