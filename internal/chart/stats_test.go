package chart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSummarize(t *testing.T) {
	s, ok := Summarize([]float64{4, 1, 3, 2})
	if !ok {
		t.Fatal("Summarize rejected a non-empty sample")
	}
	want := Summary{N: 4, Min: 1, Max: 4, Mean: 2.5, Median: 2.5, Stddev: math.Sqrt(5.0 / 3.0)}
	if diff := cmp.Diff(want, s, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeSingle(t *testing.T) {
	s, ok := Summarize([]float64{7})
	if !ok {
		t.Fatal("single sample rejected")
	}
	if s.Stddev != 0 || s.Median != 7 || s.Mean != 7 {
		t.Errorf("single sample summary = %+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, ok := Summarize(nil); ok {
		t.Error("empty sample accepted")
	}
}

func TestSummarizeLeavesInputAlone(t *testing.T) {
	in := []float64{3, 1, 2}
	Summarize(in)
	if diff := cmp.Diff([]float64{3, 1, 2}, in); diff != "" {
		t.Errorf("input reordered (-want +got):\n%s", diff)
	}
}

func TestQuantile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	tests := []struct {
		name string
		q    float64
		want float64
	}{
		{"min", 0, 10},
		{"max", 1, 40},
		{"median", 0.5, 25},
		{"lower quartile", 0.25, 17.5},
		{"upper quartile", 0.75, 32.5},
		{"clamped below", -3, 10},
		{"clamped above", 2, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantile(sorted, tt.q); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Quantile(%v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}
