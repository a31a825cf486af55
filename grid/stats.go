package grid

import "math"

// Stats summarises the finite values of a grid.
type Stats struct {
	Min, Max, Mean float64
	Count          int // number of finite cells included
	Skipped        int // NaN/±Inf cells excluded
}

// Summary returns min, max and mean over all finite cells. Non-finite cells
// (possible only with the finite-only policy disabled) are counted in
// Skipped. With no finite cells Min, Max and Mean are NaN.
// Complexity: O(r*c).
func (m *Dense) Summary() Stats {
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	m.Do(func(_, _ int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.Skipped++
			return true
		}
		s.Count++
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)

		return true
	})
	if s.Count == 0 {
		nan := math.NaN()
		s.Min, s.Max, s.Mean = nan, nan, nan

		return s
	}
	s.Mean = sum / float64(s.Count)

	return s
}
