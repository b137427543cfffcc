package chart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBinCountsSumToSampleCount(t *testing.T) {
	samples := []float64{0.3, 1.1, 2.7, 3.3, 4.9, 5.0, 2.2, 2.3, 0.0, 4.99}
	for _, bins := range []int{1, 3, 7, 20} {
		h, ok := Bin(samples, bins)
		if !ok {
			t.Fatalf("Bin(...,%d) rejected input", bins)
		}
		total := 0
		for _, c := range h.Counts {
			total += c
		}
		if total != len(samples) {
			t.Errorf("bins=%d: counts sum to %d, want %d", bins, total, len(samples))
		}
	}
}

func TestBinPlacement(t *testing.T) {
	h, ok := Bin([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	if !ok {
		t.Fatal("Bin rejected input")
	}
	if diff := cmp.Diff([]int{2, 2, 2, 2, 2}, h.Counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
	if len(h.Edges) != 6 {
		t.Fatalf("got %d edges, want 6", len(h.Edges))
	}
	for i := 1; i < len(h.Edges)-1; i++ {
		w := h.Edges[i] - h.Edges[i-1]
		if math.Abs(w-1.8) > 1e-12 {
			t.Errorf("edge %d width = %v, want 1.8", i, w)
		}
	}
	if h.Edges[0] != 0 || h.Edges[5] != 9 {
		t.Errorf("edges span [%v,%v], want [0,9]", h.Edges[0], h.Edges[5])
	}
}

func TestBinMaximumGoesToLastBin(t *testing.T) {
	h, _ := Bin([]float64{0, 10}, 4)
	if h.Counts[3] != 1 {
		t.Errorf("max sample landed in %v, want last bin", h.Counts)
	}
}

func TestBinZeroRange(t *testing.T) {
	h, ok := Bin([]float64{5, 5, 5}, 4)
	if !ok {
		t.Fatal("zero-range sample rejected")
	}
	if diff := cmp.Diff([]int{3, 0, 0, 0}, h.Counts); diff != "" {
		t.Errorf("zero-range counts (-want +got):\n%s", diff)
	}
}

func TestBinRejectsDegenerate(t *testing.T) {
	if _, ok := Bin(nil, 5); ok {
		t.Error("empty sample accepted")
	}
	if _, ok := Bin([]float64{1, 2}, 0); ok {
		t.Error("zero bins accepted")
	}
}

func TestMaxCount(t *testing.T) {
	h, _ := Bin([]float64{0, 0.1, 0.2, 9}, 3)
	if got := h.MaxCount(); got != 3 {
		t.Errorf("MaxCount = %d, want 3", got)
	}
	if got := (Histogram{}).MaxCount(); got != 0 {
		t.Errorf("empty MaxCount = %d, want 0", got)
	}
}
