package ingest

import (
	"fmt"

	"fjacquet/sheet-ledger/internal/dateutils"
	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/parsererror"
	"fjacquet/sheet-ledger/internal/store"
)

// ParseLedgerSheet reads the existing ledger from row 2 until column A is blank.
// Each row's date delimiter is taken from its own accounting date and applies to
// both date columns.
func ParseLedgerSheet(sheet store.Sheet) (*models.Batch, error) {
	var cols models.Columns
	for row := range store.Rows(sheet, models.LedgerFirstRow, models.ColAccountingDate) {
		f := fieldReader{source: "ledger", row: row}

		rawAccounting := sheet.FormattedValue(models.ColAccountingDate, row)
		delim, ok := dateutils.DetectDelimiter(rawAccounting)
		if !ok {
			return nil, &parsererror.ParseError{
				Source: "ledger", Field: "accounting_date", Row: row, Value: rawAccounting,
				Err: fmt.Errorf("no date delimiter found"),
			}
		}

		accounting := f.date("accounting_date", rawAccounting, delim)
		interest := f.date("interest_date", sheet.FormattedValue(models.ColInterestDate, row), delim)
		debit := f.amount("debit", sheet.Value(models.ColDebit, row))
		credit := f.amount("credit", sheet.Value(models.ColCredit, row))
		if f.err != nil {
			return nil, f.err
		}

		cols.AccountingDate = append(cols.AccountingDate, accounting)
		cols.InterestDate = append(cols.InterestDate, interest)
		cols.ArchiveReference = append(cols.ArchiveReference, sheet.Value(models.ColArchiveReference, row))
		cols.CounterAccount = append(cols.CounterAccount, sheet.Value(models.ColCounterAccount, row))
		cols.Type = append(cols.Type, sheet.Value(models.ColType, row))
		cols.Text = append(cols.Text, sheet.Value(models.ColText, row))
		cols.Debit = append(cols.Debit, debit)
		cols.Credit = append(cols.Credit, credit)
		cols.Account = append(cols.Account, sheet.Value(models.ColAccount, row))
	}
	return models.NewBatch(cols)
}
