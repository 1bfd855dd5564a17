// Package histogram builds fixed-bin-count histograms over numeric samples.
//
// The value range [min, max] is partitioned into equal-width bins. Every bin
// is half-open [lower, upper) except the last, which is closed so the maximum
// sample is never lost to floating-point rounding.
package histogram

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"rhisto/internal/errors"
)

// Bin is one interval of a histogram with the number of samples inside it.
type Bin struct {
	Lower float64
	Upper float64
	Count int
}

// Mid returns the midpoint of the bin interval, used as the bin label.
func (b Bin) Mid() float64 {
	return b.Lower + (b.Upper-b.Lower)/2
}

// Histogram is an ordered sequence of equal-width bins covering [min, max].
// The bin count is fixed at construction.
type Histogram struct {
	bins  []Bin
	min   float64
	max   float64
	width float64
	total int
}

// FromValues bins a non-empty sample set into numBins equal-width bins.
//
// When all samples are identical the bin width is zero: every bin collapses
// to the point interval [min, min] and all samples are counted in bin 0.
// Non-finite samples also saturate to bin 0; callers that want them rejected
// must filter before binning, as the reader package does.
func FromValues(values []float64, numBins int) (*Histogram, error) {
	if numBins <= 0 {
		return nil, errors.InvalidBinCount(numBins)
	}
	if len(values) == 0 {
		return nil, errors.EmptyInput()
	}

	minV, err := stats.Min(values)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute sample minimum")
	}
	maxV, err := stats.Max(values)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute sample maximum")
	}

	width := (maxV - minV) / float64(numBins)

	edges := make([]float64, numBins+1)
	floats.Span(edges, minV, maxV)

	bins := make([]Bin, numBins)
	for i := range bins {
		bins[i] = Bin{Lower: edges[i], Upper: edges[i+1]}
	}

	for _, v := range values {
		idx := 0
		if width > 0 {
			idx = int((v - minV) / width)
			// v == max overshoots by one, clamp into the closed last bin;
			// a non-finite sample truncates out of range and saturates to
			// bin 0 so the index can never escape [0, numBins)
			if idx >= numBins {
				idx = numBins - 1
			}
			if idx < 0 {
				idx = 0
			}
		}
		bins[idx].Count++
	}

	return &Histogram{
		bins:  bins,
		min:   minV,
		max:   maxV,
		width: width,
		total: len(values),
	}, nil
}

// Bins returns the ordered bins.
func (h *Histogram) Bins() []Bin {
	return h.bins
}

// NumBins returns the number of bins.
func (h *Histogram) NumBins() int {
	return len(h.bins)
}

// Total returns the number of samples counted across all bins.
func (h *Histogram) Total() int {
	return h.total
}

// Min returns the lower bound of the histogram range.
func (h *Histogram) Min() float64 {
	return h.min
}

// Max returns the upper bound of the histogram range.
func (h *Histogram) Max() float64 {
	return h.max
}

// Width returns the bin width; zero when all samples are identical.
func (h *Histogram) Width() float64 {
	return h.width
}
