// Package reader turns delimited input into the numeric sample sequence the
// histogram is built from. Rows come from plain text (file or stdin) or from
// an Excel workbook; one value per row is either extracted from a single
// column or computed by an expression over several columns.
package reader

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"rhisto/internal/errors"
)

// RowFunc produces one sample from a delimited row. line is the 1-based row
// number used in error messages.
type RowFunc func(row string, line int) (float64, error)

// ColumnParser extracts a float64 from one column of a delimited row.
// Column indices are 1-based.
type ColumnParser struct {
	column int
	delim  string
}

// NewColumnParser creates a parser for the given 1-based column index.
func NewColumnParser(column int, delim string) (*ColumnParser, error) {
	if column < 1 {
		return nil, errors.ColumnOutOfRange(fmt.Sprintf("first column index is 1 but got %d", column))
	}
	if delim == "" {
		return nil, errors.ConfigInvalid("delimiter must not be empty")
	}
	return &ColumnParser{column: column, delim: delim}, nil
}

// ParseRow returns the numeric value at the configured column.
func (p *ColumnParser) ParseRow(row string, line int) (float64, error) {
	return parseCell(row, p.column, p.delim, line)
}

func parseCell(row string, column int, delim string, line int) (float64, error) {
	fields := strings.Split(row, delim)
	if column > len(fields) {
		return 0, errors.ColumnOutOfRange(fmt.Sprintf("column %d out of bounds on row %d (%d columns)", column, line, len(fields)))
	}

	cell := strings.TrimSpace(fields[column-1])
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, errors.ParseError(fmt.Sprintf("failed to parse number from %q on row %d", cell, line))
	}
	// ParseFloat accepts "nan" and "inf", neither is a valid sample
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.ParseError(fmt.Sprintf("non-finite value %q on row %d", cell, line))
	}
	return v, nil
}
