// Package sheet maps configured header names to spreadsheet columns and reads
// whole columns of cell values.
package sheet

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

//go:generate moq -out mocks_test.go -pkg sheet_test . Worksheet:worksheetMock

// Worksheet is a single tab of a spreadsheet.
type Worksheet interface {
	// RowCount is the number of rows in the worksheet grid, filled or not.
	RowCount() int64
	// HeaderRow returns the values of the first row.
	HeaderRow(ctx context.Context) ([]string, error)
	// BatchGet reads ranges like "B2:B40"; the result has one entry per range,
	// each a list of rows, each a list of cell values. Trailing empty rows
	// and cells are omitted.
	BatchGet(ctx context.Context, ranges []string) ([][][]string, error)
}

// MissingHeaderError reports a configured header absent from the header row.
type MissingHeaderError struct {
	Header string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("missing column header %q", e.Header)
}

// Wanted pairs a logical column name with the header text expected in row 1.
type Wanted struct {
	Name   string
	Header string
}

// IndexToLabel maps a 0-based column index to its label: the letter for
// index%26 repeated index/26+1 times, so 0 is "A", 25 is "Z", 26 is "AA" and
// 27 is "BB".
//
// Past "Z" this is not the spreadsheet naming ("AA", "AB", ...). Existing
// configurations depend on it, so it stays.
func IndexToLabel(index int) string {
	letter := string(rune('A' + index%26))
	return strings.Repeat(letter, index/26+1)
}

// MapColumnsToHeaders returns the column label of each wanted header keyed by
// its logical name. The first wanted header missing from headerRow is
// reported as a *MissingHeaderError carrying the logical name.
func MapColumnsToHeaders(headerRow []string, wanted []Wanted) (map[string]string, error) {
	mapping := make(map[string]string, len(wanted))

	for _, w := range wanted {
		idx := slices.Index(headerRow, w.Header)
		if idx == -1 {
			return nil, &MissingHeaderError{Header: w.Name}
		}
		mapping[w.Name] = IndexToLabel(idx)
	}

	return mapping, nil
}

// ColumnRange returns the range covering rows [start, end] of a column.
func ColumnRange(column string, start, end int64) string {
	return fmt.Sprintf("%s%d:%s%d", column, start, column, end)
}

// FetchColumns reads the data rows (everything below the header) of each
// column. In single mode only the first data row is read. Empty cells are
// returned as nil. Columns keep the order of the labels.
func FetchColumns(ctx context.Context, ws Worksheet, labels []string, single bool) ([][]*string, error) {
	last := ws.RowCount()
	if single {
		last = 2
	}

	ranges := make([]string, 0, len(labels))
	for _, l := range labels {
		ranges = append(ranges, ColumnRange(l, 2, last))
	}

	raw, err := ws.BatchGet(ctx, ranges)
	if err != nil {
		return nil, fmt.Errorf("ws.BatchGet failed: %w", err)
	}

	columns := make([][]*string, len(labels))
	for i := range columns {
		if i >= len(raw) {
			columns[i] = []*string{}
			continue
		}

		column := make([]*string, 0, len(raw[i]))
		for _, row := range raw[i] {
			if len(row) == 0 || row[0] == "" {
				column = append(column, nil)
				continue
			}
			v := row[0]
			column = append(column, &v)
		}
		columns[i] = column
	}

	return columns, nil
}
