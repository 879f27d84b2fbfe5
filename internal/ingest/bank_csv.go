package ingest

import (
	"io"

	"fjacquet/sheet-ledger/internal/common"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
)

// BankCSVRow is one line of the bank's CSV export. Columns are in the same order
// as the statement sheet.
type BankCSVRow struct {
	AccountingDate   string `csv:"BOKFØRINGSDATO"`
	InterestDate     string `csv:"RENTEDATO"`
	ArchiveReference string `csv:"ARKIVREFERANSE"`
	CounterAccount   string `csv:"MOTKONTO"`
	Type             string `csv:"TYPE"`
	Text             string `csv:"TEKST"`
	Out              string `csv:"UT FRA KONTO"`
	In               string `csv:"INN PÅ KONTO"`
}

// ParseBankCSV reads the CSV export with the same rules as ParseBankSheet. Rows
// with a blank accounting date end the statement.
func ParseBankCSV(r io.Reader, account string, delimiter rune) (*models.Batch, error) {
	rows, err := common.ReadCSV[BankCSVRow](r, delimiter)
	if err != nil {
		return nil, err
	}

	var cols models.Columns
	for i, row := range rows {
		if row.AccountingDate == "" {
			break
		}
		// line 1 is the header
		f := fieldReader{source: "bank-csv", row: i + 2}

		accounting := f.date("accounting_date", row.AccountingDate, bankDateDelimiter)
		interest := f.date("interest_date", row.InterestDate, bankDateDelimiter)
		debit := f.amount("debit", row.Out)
		credit := f.amount("credit", row.In)
		if f.err != nil {
			return nil, f.err
		}

		cols.AccountingDate = append(cols.AccountingDate, accounting)
		cols.InterestDate = append(cols.InterestDate, interest)
		cols.ArchiveReference = append(cols.ArchiveReference, row.ArchiveReference)
		cols.CounterAccount = append(cols.CounterAccount, row.CounterAccount)
		cols.Type = append(cols.Type, row.Type)
		cols.Text = append(cols.Text, row.Text)
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

type csvParser struct {
	delimiter rune
	logger    logging.Logger
}

func (p *csvParser) Parse(r io.Reader, account string) (*models.Batch, error) {
	batch, err := ParseBankCSV(r, account, p.delimiter)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Parsed CSV statement", logging.Field{Key: logging.FieldCount, Value: batch.Len()})
	return batch, nil
}
