// Package ledger implements the passes that write to and maintain the ledger
// sheet: appending new records, filling missing categories from offsetting
// neighbors, re-applying the rules, and rewriting date delimiters.
//
// Every pass works on a store.Sheet in memory. Saving is the caller's job.
package ledger

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"fjacquet/sheet-ledger/internal/dateutils"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/store"

	"github.com/shopspring/decimal"
)

// Ledger wraps the ledger sheet.
type Ledger struct {
	sheet  store.Sheet
	logger logging.Logger
}

// Stats counts what a pass did.
type Stats struct {
	Rows    int // data rows visited
	Changed int // rows written
	Skipped int // rows left alone because they could not or must not be changed
}

// New wraps sheet.
func New(sheet store.Sheet, logger logging.Logger) *Ledger {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Ledger{sheet: sheet, logger: logger.WithField(logging.FieldSheet, sheet.Name())}
}

// Sheet returns the underlying sheet.
func (l *Ledger) Sheet() store.Sheet {
	return l.sheet
}

// rows yields the data rows, stopping at the first blank accounting date.
func (l *Ledger) rows() iter.Seq[int] {
	return store.Rows(l.sheet, models.LedgerFirstRow, models.ColAccountingDate)
}

// Entry is one ledger row as displayed.
type Entry struct {
	Row              int
	AccountingDate   string
	InterestDate     string
	ArchiveReference string
	CounterAccount   string
	Type             string
	Text             string
	Debit            string
	Credit           string
	Net              string
	Account          string
	Category         string
	Class            string
	Year             string
	Month            string
	Note             string
}

// Entries yields every data row.
func (l *Ledger) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for row := range l.rows() {
			s := l.sheet
			e := Entry{
				Row:              row,
				AccountingDate:   s.FormattedValue(models.ColAccountingDate, row),
				InterestDate:     s.FormattedValue(models.ColInterestDate, row),
				ArchiveReference: s.Value(models.ColArchiveReference, row),
				CounterAccount:   s.Value(models.ColCounterAccount, row),
				Type:             s.Value(models.ColType, row),
				Text:             s.Value(models.ColText, row),
				Debit:            s.Value(models.ColDebit, row),
				Credit:           s.Value(models.ColCredit, row),
				Net:              s.Value(models.ColNet, row),
				Account:          s.Value(models.ColAccount, row),
				Category:         s.Value(models.ColCategory, row),
				Class:            s.Value(models.ColClass, row),
				Year:             s.Value(models.ColYear, row),
				Month:            s.Value(models.ColMonth, row),
				Note:             s.Value(models.ColNote, row),
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Record rebuilds the record a row was written from. It fails when the
// accounting date does not parse or an amount is not a non-negative number. An
// unreadable interest date falls back to the accounting date.
func (e Entry) Record() (models.Record, error) {
	accounting, err := dateutils.ParseDetected(e.AccountingDate)
	if err != nil {
		return models.Record{}, fmt.Errorf("row %d: %w", e.Row, err)
	}
	interest, err := dateutils.ParseDetected(e.InterestDate)
	if err != nil {
		interest = time.Time{}
	}

	rec, err := models.NewRecordBuilder().
		WithDates(accounting, interest).
		WithReferences(e.ArchiveReference, e.CounterAccount).
		WithDescription(e.Type, e.Text).
		WithAmountStrings(strings.TrimSpace(e.Debit), strings.TrimSpace(e.Credit)).
		WithAccount(e.Account).
		Build()
	if err != nil {
		return models.Record{}, fmt.Errorf("row %d: %w", e.Row, err)
	}
	return rec, nil
}

// SetLabel writes category and class on row.
func (l *Ledger) SetLabel(row int, label models.Label) error {
	if err := l.sheet.SetValue(models.ColCategory, row, label.Category); err != nil {
		return err
	}
	return l.sheet.SetValue(models.ColClass, row, label.Class)
}

// parseCellAmount reads a raw numeric cell. Unlike statement ingestion a blank
// cell is an error here, since the ledger always writes every amount.
func parseCellAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}
