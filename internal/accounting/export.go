package accounting

import (
	"context"
	"io"

	"fjacquet/sheet-ledger/internal/common"
	"fjacquet/sheet-ledger/internal/ledger"
)

// ExportRow is one ledger row in the CSV export.
type ExportRow struct {
	AccountingDate   string `csv:"AccountingDate"`
	InterestDate     string `csv:"InterestDate"`
	ArchiveReference string `csv:"ArchiveReference"`
	CounterAccount   string `csv:"CounterAccount"`
	Type             string `csv:"Type"`
	Text             string `csv:"Text"`
	Debit            string `csv:"Debit"`
	Credit           string `csv:"Credit"`
	Net              string `csv:"Net"`
	Account          string `csv:"Account"`
	Category         string `csv:"Category"`
	Class            string `csv:"Class"`
	Year             string `csv:"Year"`
	Month            string `csv:"Month"`
	Note             string `csv:"Note"`
}

func exportRow(e ledger.Entry) ExportRow {
	return ExportRow{
		AccountingDate:   e.AccountingDate,
		InterestDate:     e.InterestDate,
		ArchiveReference: e.ArchiveReference,
		CounterAccount:   e.CounterAccount,
		Type:             e.Type,
		Text:             e.Text,
		Debit:            e.Debit,
		Credit:           e.Credit,
		Net:              e.Net,
		Account:          e.Account,
		Category:         e.Category,
		Class:            e.Class,
		Year:             e.Year,
		Month:            e.Month,
		Note:             e.Note,
	}
}

// Export writes every ledger row to w as CSV, using the configured delimiter.
// The workbook is not saved.
func (s *Service) Export(ctx context.Context, w io.Writer) (int, error) {
	rows := []ExportRow{}
	_, err := s.withLedger("export", false, func(r *run, rep *Report) error {
		for e := range r.ledger.Entries() {
			rows = append(rows, exportRow(e))
		}
		rep.Stats.Rows = len(rows)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if err := common.WriteCSV(w, rows, s.opts.Ingest.Delimiter); err != nil {
		return 0, err
	}
	return len(rows), nil
}
