package chart

// Histogram is a set of equal-width bins over the observed range of a
// sample. Edges has one more entry than Counts; bin i covers
// [Edges[i], Edges[i+1]), except the last bin which also includes its
// upper edge so the maximum sample is not lost.
type Histogram struct {
	Edges  []float64
	Counts []int
}

// Bin partitions the samples into the given number of equal-width bins.
// ok is false when there are no samples or bins is not positive. A
// zero-range sample lands entirely in bin 0.
func Bin(samples []float64, bins int) (Histogram, bool) {
	if len(samples) == 0 || bins <= 0 {
		return Histogram{}, false
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
	h := Histogram{
		Edges:  make([]float64, bins+1),
		Counts: make([]int, bins),
	}
	width := (hi - lo) / float64(bins)
	for i := range h.Edges {
		h.Edges[i] = lo + width*float64(i)
	}
	h.Edges[bins] = hi
	for _, v := range samples {
		i := 0
		if width > 0 {
			i = int((v - lo) / width)
			if i >= bins {
				i = bins - 1
			}
		}
		h.Counts[i]++
	}
	return h, true
}

// MaxCount returns the largest bin count, 0 for an empty histogram.
func (h Histogram) MaxCount() int {
	m := 0
	for _, c := range h.Counts {
		if c > m {
			m = c
		}
	}
	return m
}
