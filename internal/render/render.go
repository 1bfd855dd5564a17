// Package render serializes a histogram to its output destination.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/montanaflynn/stats"

	"rhisto/domain/histogram"
	"rhisto/internal/errors"
)

// graphWidth is the bar length of the fullest bin in graph mode.
const graphWidth = 50

// Options controls the output format.
type Options struct {
	Delim     string // column delimiter, matches the input delimiter
	Precision int    // decimal places for bin bounds and labels
	Labels    bool   // emit bin midpoints instead of lower/upper bounds
	Graph     bool   // ASCII bar chart instead of delimited lines
}

// Write emits one line per bin. The default shape is
// lower<delim>upper<delim>count; with Labels set it is label<delim>count.
func Write(w io.Writer, h *histogram.Histogram, opts Options) error {
	if opts.Graph {
		return writeGraph(w, h, opts)
	}

	for _, b := range h.Bins() {
		var err error
		if opts.Labels {
			_, err = fmt.Fprintf(w, "%.*f%s%d\n", opts.Precision, b.Mid(), opts.Delim, b.Count)
		} else {
			_, err = fmt.Fprintf(w, "%.*f%s%.*f%s%d\n",
				opts.Precision, b.Lower, opts.Delim, opts.Precision, b.Upper, opts.Delim, b.Count)
		}
		if err != nil {
			return errors.IOError("failed to write histogram", err)
		}
	}
	return nil
}

func writeGraph(w io.Writer, h *histogram.Histogram, opts Options) error {
	maxCount := 0
	for _, b := range h.Bins() {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	for _, b := range h.Bins() {
		bar := ""
		if maxCount > 0 && b.Count > 0 {
			n := b.Count * graphWidth / maxCount
			if n == 0 {
				n = 1
			}
			bar = strings.Repeat("#", n)
		}
		_, err := fmt.Fprintf(w, "[%.*f, %.*f] %-*s %d\n",
			opts.Precision, b.Lower, opts.Precision, b.Upper, graphWidth, bar, b.Count)
		if err != nil {
			return errors.IOError("failed to write histogram", err)
		}
	}
	return nil
}

// WriteSummary prepends a commented block of summary statistics over the raw
// samples, so the histogram lines stay machine-readable.
func WriteSummary(w io.Writer, values []float64, opts Options) error {
	mean, err := stats.Mean(values)
	if err != nil {
		return errors.Wrap(err, "failed to compute mean")
	}
	stdDev, err := stats.StandardDeviation(values)
	if err != nil {
		return errors.Wrap(err, "failed to compute standard deviation")
	}
	median, err := stats.Median(values)
	if err != nil {
		return errors.Wrap(err, "failed to compute median")
	}
	minV, err := stats.Min(values)
	if err != nil {
		return errors.Wrap(err, "failed to compute minimum")
	}
	maxV, err := stats.Max(values)
	if err != nil {
		return errors.Wrap(err, "failed to compute maximum")
	}

	p := opts.Precision
	_, err = fmt.Fprintf(w, "# n=%d mean=%.*f stddev=%.*f median=%.*f min=%.*f max=%.*f\n",
		len(values), p, mean, p, stdDev, p, median, p, minV, p, maxV)
	if err != nil {
		return errors.IOError("failed to write summary", err)
	}
	return nil
}
