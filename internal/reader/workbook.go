package reader

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"rhisto/internal/errors"
	"rhisto/internal/logging"
)

// IsWorkbook reports whether path points at an Excel workbook.
func IsWorkbook(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".xlsx")
}

// ReadWorkbookRows reads the first sheet of an Excel workbook and joins each
// row's cells with delim, so workbook rows flow through the same column and
// expression plumbing as delimited text.
func ReadWorkbookRows(path, delim string) ([]string, error) {
	start := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.IOError(fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.IOError(fmt.Sprintf("workbook %s has no sheets", path), nil)
	}

	cellRows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.IOError(fmt.Sprintf("failed to read sheet %s", sheet), err)
	}

	rows := make([]string, len(cellRows))
	for i, cells := range cellRows {
		rows[i] = strings.Join(cells, delim)
	}

	logging.Default.Info("read %d rows from %s sheet %q in %.2fms",
		len(rows), path, sheet, float64(time.Since(start).Nanoseconds())/1e6)

	return rows, nil
}
