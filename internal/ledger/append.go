package ledger

import (
	"fjacquet/sheet-ledger/internal/categorizer"
	"fjacquet/sheet-ledger/internal/dateutils"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/store"
)

// Append writes batch after the last data row, labeling each record with c and
// rendering dates and month labels with f. Columns A through N are written.
func (l *Ledger) Append(batch *models.Batch, c *categorizer.Categorizer, f dateutils.Format) (Stats, error) {
	var st Stats
	row := store.FirstEmptyRow(l.sheet, models.LedgerFirstRow, models.ColAccountingDate)
	start := row

	for i := 0; i < batch.Len(); i++ {
		rec := batch.At(i)
		label := c.Categorize(rec)
		if label.IsEmpty() {
			st.Skipped++
		}

		values := []struct {
			col   string
			value interface{}
		}{
			{models.ColAccountingDate, f.Date(rec.AccountingDate)},
			{models.ColInterestDate, f.Date(rec.InterestDate)},
			{models.ColArchiveReference, rec.ArchiveReference},
			{models.ColCounterAccount, rec.CounterAccount},
			{models.ColType, rec.Type},
			{models.ColText, rec.Text},
			{models.ColDebit, rec.Debit.InexactFloat64()},
			{models.ColCredit, rec.Credit.InexactFloat64()},
			{models.ColNet, rec.Net().InexactFloat64()},
			{models.ColAccount, rec.Account},
			{models.ColCategory, label.Category},
			{models.ColClass, label.Class},
			{models.ColYear, rec.Year()},
			{models.ColMonth, f.Month(rec.AccountingDate)},
		}
		for _, v := range values {
			if err := l.sheet.SetValue(v.col, row, v.value); err != nil {
				return st, err
			}
		}
		st.Rows++
		st.Changed++
		row++
	}

	l.logger.Info("Appended records",
		logging.Field{Key: logging.FieldRow, Value: start},
		logging.Field{Key: logging.FieldCount, Value: st.Changed},
		logging.Field{Key: "uncategorized", Value: st.Skipped})
	return st, nil
}
