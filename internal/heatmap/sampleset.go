package heatmap

import "math"

// coordPrecision is the number of decimal digits used when rounding
// coordinates into dedup keys. Measurements taken at "the same spot"
// frequently differ in the 7th decimal place after float parsing.
const coordPrecision = 6

// Sample is one measurement of a metric at a survey location.
type Sample struct {
	X     float64
	Y     float64
	Value float64
}

// SampleSet holds deduplicated samples for one metric as three parallel
// slices, preserving first-seen order. Build one with Dedupe; a SampleSet
// is never mutated after construction.
type SampleSet struct {
	X []float64
	Y []float64
	V []float64
}

// Len returns the number of distinct sample locations.
func (s *SampleSet) Len() int { return len(s.V) }

// Samples converts the set back to a Sample slice.
func (s *SampleSet) Samples() []Sample {
	out := make([]Sample, s.Len())
	for i := range out {
		out[i] = Sample{X: s.X[i], Y: s.Y[i], Value: s.V[i]}
	}
	return out
}

type coordKey struct {
	x, y float64
}

func roundCoord(v float64) float64 {
	scale := math.Pow(10, coordPrecision)
	return math.Round(v*scale) / scale
}

// Dedupe collapses samples that share a coordinate key (coordinates
// rounded to 6 decimal digits) into a single entry, keeping first-seen
// order. A repeated key replaces the stored value with the mean of the
// stored value and the incoming one, so three or more co-located samples
// produce a running pairwise mean rather than a true group mean. That
// matches the shipped behaviour; see DESIGN.md before changing it.
//
// An empty input yields an empty set. Callers must check Len before
// interpolating.
func Dedupe(samples []Sample) *SampleSet {
	set := &SampleSet{}
	index := make(map[coordKey]int, len(samples))

	for _, s := range samples {
		key := coordKey{x: roundCoord(s.X), y: roundCoord(s.Y)}
		if i, ok := index[key]; ok {
			set.V[i] = (set.V[i] + s.Value) / 2
			continue
		}
		index[key] = set.Len()
		set.X = append(set.X, s.X)
		set.Y = append(set.Y, s.Y)
		set.V = append(set.V, s.Value)
	}
	return set
}

// mean returns the arithmetic mean of the set's values, or 0 for an
// empty set. Used as the out-of-hull fill value during interpolation.
func (s *SampleSet) mean() float64 {
	if s.Len() == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.V {
		sum += v
	}
	return sum / float64(s.Len())
}
