// Package store is the cell-level persistence layer. The ledger engine only ever
// reads and writes cells through Table and Sheet, never file bytes.
package store

import (
	"fmt"
	"iter"
)

// Sheet addresses cells by column letter and 1-based row number.
type Sheet interface {
	Name() string
	// Value is the raw stored value: numbers unformatted, dates as serials.
	Value(col string, row int) string
	// FormattedValue is the value as the spreadsheet displays it.
	FormattedValue(col string, row int) string
	SetValue(col string, row int, value interface{}) error
	IsBold(col string, row int) bool
}

// Table is an open workbook.
type Table interface {
	// Sheet returns the named sheet or a *parsererror.NotFoundError.
	Sheet(name string) (Sheet, error)
	SheetNames() []string
	Save(path string) error
	Close() error
}

// Opener opens the workbook at path.
type Opener func(path string) (Table, error)

// Rows yields row numbers from firstRow onwards while the cell in keyCol is
// non-empty. Each range over the sequence rescans the sheet.
func Rows(s Sheet, firstRow int, keyCol string) iter.Seq[int] {
	return func(yield func(int) bool) {
		for row := firstRow; s.Value(keyCol, row) != ""; row++ {
			if !yield(row) {
				return
			}
		}
	}
}

// FirstEmptyRow returns the first row at or after firstRow whose keyCol cell is empty.
func FirstEmptyRow(s Sheet, firstRow int, keyCol string) int {
	row := firstRow
	for s.Value(keyCol, row) != "" {
		row++
	}
	return row
}

// Cell renders a column letter and row as an A1 reference.
func Cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
