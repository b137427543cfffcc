package chart

import (
	"math"
	"sort"
)

// Summary describes a sample in the units the footer and the stats
// command print.
type Summary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Stddev float64
}

// Summarize computes summary statistics over the samples. ok is false
// for an empty input.
func Summarize(samples []float64) (Summary, bool) {
	if len(samples) == 0 {
		return Summary{}, false
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))
	var sq float64
	for _, v := range sorted {
		d := v - mean
		sq += d * d
	}
	sd := 0.0
	if len(sorted) > 1 {
		sd = math.Sqrt(sq / float64(len(sorted)-1))
	}
	return Summary{
		N:      len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Median: Quantile(sorted, 0.5),
		Stddev: sd,
	}, true
}

// Quantile returns the q-quantile of an ascending-sorted sample using
// linear interpolation between the two nearest order statistics. q is
// clamped to [0,1]; an empty input yields 0.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}
	h := q * float64(len(sorted)-1)
	lo := int(h)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
