package chart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleSeries() []Series {
	return []Series{
		{Name: "north", Values: []float64{1, 2, 3}},
		{Name: "south", Values: []float64{4, 0, 1}},
		{Name: "west", Values: []float64{2, 2, 2}},
	}
}

func TestStackBands(t *testing.T) {
	bands := Stack(sampleSeries())
	want := []Band{
		{Name: "north", Lower: []float64{0, 0, 0}, Upper: []float64{1, 2, 3}},
		{Name: "south", Lower: []float64{1, 2, 3}, Upper: []float64{5, 2, 4}},
		{Name: "west", Lower: []float64{5, 2, 4}, Upper: []float64{7, 4, 6}},
	}
	if diff := cmp.Diff(want, bands); diff != "" {
		t.Errorf("Stack mismatch (-want +got):\n%s", diff)
	}
}

func TestStackTopEqualsColumnSums(t *testing.T) {
	series := sampleSeries()
	bands := Stack(series)
	last := bands[len(bands)-1]
	for j := range last.Upper {
		var sum float64
		for _, s := range series {
			sum += s.Values[j]
		}
		if math.Abs(last.Upper[j]-sum) > 1e-12 {
			t.Errorf("column %d top = %v, want %v", j, last.Upper[j], sum)
		}
	}
	if got := StackTop(bands); got != 7 {
		t.Errorf("StackTop = %v, want 7", got)
	}
}

func TestStackTruncatesToShortestSeries(t *testing.T) {
	bands := Stack([]Series{
		{Name: "long", Values: []float64{1, 1, 1, 1}},
		{Name: "short", Values: []float64{2, 2}},
	})
	for _, b := range bands {
		if len(b.Upper) != 2 || len(b.Lower) != 2 {
			t.Fatalf("band %q has %d columns, want 2", b.Name, len(b.Upper))
		}
	}
}

func TestStackDegenerate(t *testing.T) {
	if got := Stack(nil); got != nil {
		t.Error("no series produced bands")
	}
	if got := Stack([]Series{{Name: "empty"}}); got != nil {
		t.Error("zero-column series produced bands")
	}
	if got := StackTop(nil); got != 0 {
		t.Errorf("StackTop(nil) = %v, want 0", got)
	}
}
