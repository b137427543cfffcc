package chart

// Series is one named category of a multi-series dataset.
type Series struct {
	Name   string
	Values []float64
	Color  string
}

// Band is one series of a stacked layout: for each x index the band
// spans [Lower, Upper] with Upper-Lower equal to the series value.
type Band struct {
	Name  string
	Lower []float64
	Upper []float64
}

// Stack computes cumulative bands in series order. The bands share the
// length of the shortest series; the upper bound of the last band is the
// column total. Returns nil when there are no series or no columns.
func Stack(series []Series) []Band {
	if len(series) == 0 {
		return nil
	}
	n := len(series[0].Values)
	for _, s := range series {
		if len(s.Values) < n {
			n = len(s.Values)
		}
	}
	if n == 0 {
		return nil
	}
	bands := make([]Band, len(series))
	base := make([]float64, n)
	for i, s := range series {
		lower := append([]float64(nil), base...)
		upper := make([]float64, n)
		for j := 0; j < n; j++ {
			upper[j] = lower[j] + s.Values[j]
		}
		bands[i] = Band{Name: s.Name, Lower: lower, Upper: upper}
		base = upper
	}
	return bands
}

// StackTop returns the tallest column total across bands, 0 when empty.
func StackTop(bands []Band) float64 {
	if len(bands) == 0 {
		return 0
	}
	top := 0.0
	for _, v := range bands[len(bands)-1].Upper {
		if v > top {
			top = v
		}
	}
	return top
}
