// Package ingest turns bank statements and the ledger sheet into record batches.
// Every reader is all-or-nothing: the first unparsable date or amount aborts the
// whole batch with a *parsererror.ParseError.
package ingest

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/sheet-ledger/internal/fileutils"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
)

// Parser reads one bank statement export.
type Parser interface {
	Parse(r io.Reader, account string) (*models.Batch, error)
}

// Bank identifies the statement layout.
type Bank string

const (
	Sbanken Bank = "sbanken"
)

// Banks lists the supported statement layouts.
func Banks() []Bank {
	return []Bank{Sbanken}
}

// ParseBank matches name case-insensitively. An empty name selects Sbanken.
func ParseBank(name string) (Bank, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Sbanken, nil
	}
	for _, b := range Banks() {
		if string(b) == n {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown bank: %s", name)
}

// Format is the file format of a statement export.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch {
	case fileutils.HasExtension(path, ".xlsx", ".xlsm"):
		return FormatXLSX, nil
	case fileutils.HasExtension(path, ".csv", ".txt"):
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unsupported statement file: %s (want .xlsx, .xlsm or .csv)", path)
}

// Options configures the statement parsers.
type Options struct {
	// BankSheet is the sheet holding the statement inside an .xlsx export.
	BankSheet string
	// Delimiter separates CSV fields.
	Delimiter rune
}

// DefaultOptions uses the bank's own sheet name and ';' separated CSV.
func DefaultOptions() Options {
	return Options{
		BankSheet: models.DefaultBankSheet,
		Delimiter: ';',
	}
}

// NewParser returns the parser for bank and format.
func NewParser(bank Bank, format Format, opts Options, logger logging.Logger) (Parser, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if opts.BankSheet == "" {
		opts.BankSheet = models.DefaultBankSheet
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ';'
	}

	if bank != Sbanken {
		return nil, fmt.Errorf("unknown bank: %s", bank)
	}
	switch format {
	case FormatXLSX:
		return &sheetParser{sheet: opts.BankSheet, logger: logger}, nil
	case FormatCSV:
		return &csvParser{delimiter: opts.Delimiter, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown statement format: %s", format)
	}
}

// LoadBankFile opens path and parses it with the parser its extension selects.
func LoadBankFile(path string, bank Bank, account string, opts Options, logger logging.Logger) (*models.Batch, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	p, err := NewParser(bank, format, opts, logger)
	if err != nil {
		return nil, err
	}

	f, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close statement file")
		}
	}()

	batch, err := p.Parse(f, account)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	logger.Info("Parsed bank statement",
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldBank, Value: string(bank)},
		logging.Field{Key: logging.FieldAccount, Value: account},
		logging.Field{Key: logging.FieldCount, Value: batch.Len()})
	return batch, nil
}
