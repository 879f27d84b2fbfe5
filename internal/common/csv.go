// Package common holds the CSV and account-label helpers shared by ingestion and export.
package common

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates fields in bank exports and ledger exports.
const DefaultDelimiter = ';'

// ReadCSV decodes delimited rows with a header line into TCSVRow structs,
// matched by `csv` struct tags.
func ReadCSV[TCSVRow any](r io.Reader, delimiter rune) ([]TCSVRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return nil, nil
		}
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	return rows, nil
}

// WriteCSV encodes rows with a header line. A nil slice is rejected.
func WriteCSV[TCSVRow any](w io.Writer, rows []TCSVRow, delimiter rune) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}
	writer := csv.NewWriter(w)
	writer.Comma = delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
