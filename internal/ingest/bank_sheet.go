package ingest

import (
	"fmt"
	"io"

	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/store"
)

// bankDateDelimiter is how the bank renders both date columns.
const bankDateDelimiter = "."

// ParseBankSheet reads a bank statement sheet from row 4 until column A is blank.
// Debits are stored as absolute values. The bank lists the newest movement first,
// so the batch is reversed to put the oldest first, and every record gets account.
func ParseBankSheet(sheet store.Sheet, account string) (*models.Batch, error) {
	var cols models.Columns
	for row := range store.Rows(sheet, models.BankFirstRow, models.ColAccountingDate) {
		f := fieldReader{source: "bank", row: row}

		accounting := f.date("accounting_date", sheet.FormattedValue(models.ColAccountingDate, row), bankDateDelimiter)
		interest := f.date("interest_date", sheet.FormattedValue(models.ColInterestDate, row), bankDateDelimiter)
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
		cols.Debit = append(cols.Debit, debit.Abs())
		cols.Credit = append(cols.Credit, credit)
		cols.Account = append(cols.Account, account)
	}

	batch, err := models.NewBatch(cols)
	if err != nil {
		return nil, err
	}
	return batch.Reversed(), nil
}

type sheetParser struct {
	sheet  string
	logger logging.Logger
}

func (p *sheetParser) Parse(r io.Reader, account string) (*models.Batch, error) {
	wb, err := store.OpenReader(r, p.logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := wb.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close statement workbook")
		}
	}()

	sheet, err := wb.Sheet(p.sheet)
	if err != nil {
		return nil, fmt.Errorf("error opening statement sheet: %w", err)
	}
	return ParseBankSheet(sheet, account)
}
