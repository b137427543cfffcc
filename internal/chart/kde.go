package chart

import "math"

// DensityPoint is one evaluation of a kernel density estimate.
type DensityPoint struct {
	X float64
	Y float64
}

// SilvermanBandwidth returns the rule-of-thumb bandwidth
// 1.06 * stddev * n^(-1/5), falling back to 1 when the sample has no
// spread.
func SilvermanBandwidth(samples []float64) float64 {
	s, ok := Summarize(samples)
	if !ok || s.Stddev == 0 {
		return 1
	}
	return 1.06 * s.Stddev * math.Pow(float64(s.N), -0.2)
}

// Density evaluates an Epanechnikov kernel density estimate at the given
// number of evenly spaced points spanning [min-bandwidth, max+bandwidth].
// A non-positive bandwidth selects the Silverman rule. The result is nil
// when there are no samples or fewer than two evaluation points.
func Density(samples []float64, bandwidth float64, points int) []DensityPoint {
	if len(samples) == 0 || points < 2 {
		return nil
	}
	if bandwidth <= 0 {
		bandwidth = SilvermanBandwidth(samples)
	}
	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	lo -= bandwidth
	hi += bandwidth
	out := make([]DensityPoint, points)
	span := hi - lo
	norm := 1 / (float64(len(samples)) * bandwidth)
	for i := range out {
		x := lo + span*float64(i)/float64(points-1)
		var sum float64
		for _, v := range samples {
			u := (x - v) / bandwidth
			if u >= -1 && u <= 1 {
				sum += 0.75 * (1 - u*u)
			}
		}
		out[i] = DensityPoint{X: x, Y: sum * norm}
	}
	return out
}
