package ledger

import (
	"fjacquet/sheet-ledger/internal/dateutils"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
)

// Redate rewrites both date columns of every row to f's delimiter by plain
// character substitution, using the delimiter found in the row's accounting
// date for both columns. When the rewritten accounting date parses, the year
// and month label are recomputed; otherwise they are left as they are. A row
// whose accounting date has no delimiter in third position is skipped, since
// substituting a digit would corrupt it.
func (l *Ledger) Redate(f dateutils.Format) (Stats, error) {
	var st Stats
	s := l.sheet

	for row := range l.rows() {
		st.Rows++
		accounting := s.FormattedValue(models.ColAccountingDate, row)
		from, ok := dateutils.DetectDelimiter(accounting)
		if !ok {
			st.Skipped++
			l.logger.Debug("Skipping row without date delimiter",
				logging.Field{Key: logging.FieldRow, Value: row},
				logging.Field{Key: logging.FieldReason, Value: accounting})
			continue
		}

		newAccounting := dateutils.ReplaceDelimiter(accounting, from, f.Delimiter)
		newInterest := dateutils.ReplaceDelimiter(s.FormattedValue(models.ColInterestDate, row), from, f.Delimiter)
		if err := s.SetValue(models.ColAccountingDate, row, newAccounting); err != nil {
			return st, err
		}
		if err := s.SetValue(models.ColInterestDate, row, newInterest); err != nil {
			return st, err
		}
		st.Changed++

		t, err := dateutils.ParseDate(newAccounting, f.Delimiter)
		if err != nil {
			continue
		}
		if err := s.SetValue(models.ColYear, row, t.Year()); err != nil {
			return st, err
		}
		if err := s.SetValue(models.ColMonth, row, f.Month(t)); err != nil {
			return st, err
		}
	}

	l.logger.Info("Re-dated rows",
		logging.Field{Key: logging.FieldCount, Value: st.Changed},
		logging.Field{Key: "skipped", Value: st.Skipped})
	return st, nil
}
