package entropy

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/kzahedi/goent/discrete"
	"github.com/samber/lo"
)

// FrequencyEntropy is the conventional estimator: count every distinct
// outcome tuple in a frequency table, turn counts into a probability field
// and take its base-2 entropy.
//
// It uses the same equality as the sort-based estimator: -0 equals +0, and
// a tuple holding a NaN matches no other tuple, so it counts once. Hence
// FrequencyEntropy and FromOutcomes agree on every input up to
// floating-point rounding. Prefer FromOutcomes for large
// alphabets; this path is kept as an independent cross-check.
//
// Errors: same as FromOutcomes.
//
// Complexity: O(R · k) expected time, O(R · k) memory.
func FrequencyEntropy(outcomes [][]float64) (float64, error) {
	k, err := tupleWidth(outcomes)
	if err != nil {
		return 0, entropyErrorf(ctxFrequency, err)
	}

	counts := make(map[string]int, len(outcomes))
	var singles []int // one count per NaN-bearing tuple
	key := make([]byte, 8*k)
	for _, tuple := range outcomes {
		if hasNaN(tuple) {
			singles = append(singles, 1)
			continue
		}
		for c, v := range tuple {
			binary.LittleEndian.PutUint64(key[8*c:], canonicalBits(v))
		}
		counts[string(key)]++
	}

	// Fixed summation order keeps the result deterministic.
	freq := append(lo.Values(counts), singles...)
	slices.Sort(freq)
	n := float64(len(outcomes))
	p := lo.Map(freq, func(c int, _ int) float64 {
		return float64(c) / n
	})

	return discrete.EntropyBase2(p), nil
}

// canonicalBits maps a non-NaN v to a bit pattern shared by all values
// equal to it, folding -0 onto +0.
func canonicalBits(v float64) uint64 {
	if v == 0 {
		return 0
	}

	return math.Float64bits(v)
}
