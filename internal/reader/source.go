package reader

import (
	"bufio"
	"io"
	"strings"

	"rhisto/internal/errors"
)

// Options controls how rows are consumed from an input source.
type Options struct {
	SkipHeader bool
}

// ReadValues scans r line by line and applies fn to every non-blank row,
// collecting the resulting samples. The whole input is read before binning;
// there is no streaming path.
func ReadValues(r io.Reader, opts Options, fn RowFunc) ([]float64, error) {
	scanner := bufio.NewScanner(r)

	var rows []string
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.IOError("failed to read input", err)
	}

	return ValuesFromRows(rows, opts, fn)
}

// ValuesFromRows applies fn to every non-blank row, collecting the samples.
// Row numbers passed to fn are 1-based and count the header row when one
// is skipped.
func ValuesFromRows(rows []string, opts Options, fn RowFunc) ([]float64, error) {
	var values []float64
	for i, row := range rows {
		if opts.SkipHeader && i == 0 {
			continue
		}
		if strings.TrimSpace(row) == "" {
			continue
		}
		v, err := fn(row, i+1)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
