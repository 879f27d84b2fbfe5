package ledger

import (
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// FillGaps gives each row without a category the label of a nearby row whose
// net amount offsets it: |net(R) + net(N)| <= margin. Neighbors are scanned in
// ascending order from max(first row, R-window) to R+window inclusive, stopping at
// the first blank accounting date, and the first acceptable one wins. Rows are
// filled in place and in order, so a row filled earlier can serve as a neighbor
// later. A row whose own net amount cannot be read is skipped.
func (l *Ledger) FillGaps(window uint, margin decimal.Decimal) (Stats, error) {
	var st Stats
	s := l.sheet

	for row := range l.rows() {
		st.Rows++
		if s.Value(models.ColCategory, row) != "" {
			continue
		}
		net, err := parseCellAmount(s.Value(models.ColNet, row))
		if err != nil {
			st.Skipped++
			l.logger.WithError(err).Debug("Skipping row with unreadable net amount",
				logging.Field{Key: logging.FieldRow, Value: row})
			continue
		}

		start := row - int(window)
		if start < models.LedgerFirstRow {
			start = models.LedgerFirstRow
		}
		end := row + int(window)

		for n := start; n <= end; n++ {
			if s.Value(models.ColAccountingDate, n) == "" {
				break
			}
			if n == row {
				continue
			}
			category := s.Value(models.ColCategory, n)
			if category == "" {
				continue
			}
			neighborNet, err := parseCellAmount(s.Value(models.ColNet, n))
			if err != nil {
				continue
			}
			if net.Add(neighborNet).Abs().GreaterThan(margin) {
				continue
			}

			label := models.Label{Category: category, Class: s.Value(models.ColClass, n)}
			if err := l.SetLabel(row, label); err != nil {
				return st, err
			}
			st.Changed++
			l.logger.Debug("Filled category from neighbor",
				logging.Field{Key: logging.FieldRow, Value: row},
				logging.Field{Key: "neighbor", Value: n},
				logging.Field{Key: logging.FieldCategory, Value: category})
			break
		}
	}

	l.logger.Info("Filled empty groups",
		logging.Field{Key: logging.FieldCount, Value: st.Changed},
		logging.Field{Key: "skipped", Value: st.Skipped})
	return st, nil
}
