package histogram

import (
	"math"
	"testing"

	"rhisto/internal/errors"
)

func TestFromValues_WorkedExample(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	h, err := FromValues(values, 5)
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}

	if h.NumBins() != 5 {
		t.Errorf("Expected 5 bins, got %d", h.NumBins())
	}
	if math.Abs(h.Width()-1.8) > 1e-12 {
		t.Errorf("Expected bin width 1.8, got %g", h.Width())
	}
	if h.Min() != 1 || h.Max() != 10 {
		t.Errorf("Expected range [1, 10], got [%g, %g]", h.Min(), h.Max())
	}

	for i, b := range h.Bins() {
		if b.Count != 2 {
			t.Errorf("Expected bin %d to hold 2 samples, got %d", i, b.Count)
		}
	}
}

func TestFromValues_CountConservation(t *testing.T) {
	values := []float64{3.2, -1.5, 0.0, 7.7, 7.7, 2.1, 9.9, -4.3, 5.5, 1.0, 0.001}

	h, err := FromValues(values, 7)
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}

	sum := 0
	for _, b := range h.Bins() {
		if b.Count < 0 {
			t.Errorf("Negative count %d in bin [%g, %g]", b.Count, b.Lower, b.Upper)
		}
		sum += b.Count
	}
	if sum != len(values) {
		t.Errorf("Expected counts to sum to %d, got %d", len(values), sum)
	}
	if h.Total() != len(values) {
		t.Errorf("Expected Total() %d, got %d", len(values), h.Total())
	}
}

func TestFromValues_BinsAreContiguous(t *testing.T) {
	values := []float64{-2.5, 0.1, 4.9, 12.3, 18.0, 21.7}

	h, err := FromValues(values, 6)
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}

	bins := h.Bins()
	if bins[0].Lower != h.Min() {
		t.Errorf("Expected first bin to start at min %g, got %g", h.Min(), bins[0].Lower)
	}
	if bins[len(bins)-1].Upper != h.Max() {
		t.Errorf("Expected last bin to end at max %g, got %g", h.Max(), bins[len(bins)-1].Upper)
	}
	for i := 1; i < len(bins); i++ {
		if bins[i].Lower != bins[i-1].Upper {
			t.Errorf("Gap between bin %d and %d: %g != %g", i-1, i, bins[i-1].Upper, bins[i].Lower)
		}
	}
}

func TestFromValues_MaxLandsInLastBin(t *testing.T) {
	values := []float64{0.0, 0.3, 0.6, 1.0}

	h, err := FromValues(values, 3)
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}

	bins := h.Bins()
	last := bins[len(bins)-1]
	if last.Count != 1 {
		t.Errorf("Expected max value in last bin, counts were %v", bins)
	}
}

func TestFromValues_DegenerateSingleValue(t *testing.T) {
	values := []float64{5.0, 5.0, 5.0}

	h, err := FromValues(values, 4)
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}

	if h.NumBins() != 4 {
		t.Errorf("Expected 4 bins even in the degenerate case, got %d", h.NumBins())
	}
	if h.Width() != 0 {
		t.Errorf("Expected zero bin width, got %g", h.Width())
	}

	bins := h.Bins()
	if bins[0].Count != 3 {
		t.Errorf("Expected all 3 samples in bin 0, got %d", bins[0].Count)
	}
	for i, b := range bins {
		if b.Lower != 5.0 || b.Upper != 5.0 {
			t.Errorf("Expected bin %d to collapse to [5, 5], got [%g, %g]", i, b.Lower, b.Upper)
		}
		if i > 0 && b.Count != 0 {
			t.Errorf("Expected bin %d to be empty, got %d", i, b.Count)
		}
	}
}

func TestFromValues_NonFiniteSamplesSaturateToFirstBin(t *testing.T) {
	values := []float64{1, 2, math.NaN(), 3}

	h, err := FromValues(values, 4)
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}

	sum := 0
	for i, b := range h.Bins() {
		if b.Count < 0 {
			t.Errorf("Negative count %d in bin %d", b.Count, i)
		}
		sum += b.Count
	}
	if sum != len(values) {
		t.Errorf("Expected counts to sum to %d, got %d", len(values), sum)
	}
	if h.Bins()[0].Count != 2 {
		t.Errorf("Expected 1 and the NaN sample in bin 0, got count %d", h.Bins()[0].Count)
	}
}

func TestFromValues_EmptyInput(t *testing.T) {
	_, err := FromValues(nil, 10)
	if err == nil {
		t.Fatal("Expected error for empty input")
	}
	if code := errors.GetCode(err); code != errors.CodeEmptyInput {
		t.Errorf("Expected code %s, got %s", errors.CodeEmptyInput, code)
	}
}

func TestFromValues_InvalidBinCount(t *testing.T) {
	for _, numBins := range []int{0, -3} {
		_, err := FromValues([]float64{1, 2, 3}, numBins)
		if err == nil {
			t.Fatalf("Expected error for numBins=%d", numBins)
		}
		if code := errors.GetCode(err); code != errors.CodeInvalidBinCount {
			t.Errorf("Expected code %s for numBins=%d, got %s", errors.CodeInvalidBinCount, numBins, code)
		}
	}
}

func TestBin_Mid(t *testing.T) {
	b := Bin{Lower: 1.0, Upper: 2.8}
	if math.Abs(b.Mid()-1.9) > 1e-12 {
		t.Errorf("Expected midpoint 1.9, got %g", b.Mid())
	}
}
