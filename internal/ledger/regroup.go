package ledger

import (
	"fjacquet/sheet-ledger/internal/categorizer"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
)

// RegroupOptions controls how Regroup treats manual notes.
type RegroupOptions struct {
	// StopAtNote ends the walk at the first row with a note in column O. When
	// false only that row is skipped.
	StopAtNote bool
}

// DefaultRegroupOptions stops at the first note.
func DefaultRegroupOptions() RegroupOptions {
	return RegroupOptions{StopAtNote: true}
}

// Regroup re-applies c to every row that is not pinned. A row is pinned when it
// carries a note or its category cell is bold. A row keeps its current label
// unless the rules yield both a category and a class.
func (l *Ledger) Regroup(c *categorizer.Categorizer, opts RegroupOptions) (Stats, error) {
	var st Stats
	s := l.sheet

	for row := range l.rows() {
		st.Rows++
		if s.Value(models.ColNote, row) != "" {
			if opts.StopAtNote {
				l.logger.Info("Stopping regroup at manual note", logging.Field{Key: logging.FieldRow, Value: row})
				break
			}
			st.Skipped++
			continue
		}
		if s.Value(models.ColCategory, row) != "" && s.IsBold(models.ColCategory, row) {
			st.Skipped++
			continue
		}

		label := c.CategorizeFields(s.Value(models.ColType, row), s.Value(models.ColText, row))
		if label.Category == "" || label.Class == "" {
			continue
		}
		if err := l.SetLabel(row, label); err != nil {
			return st, err
		}
		st.Changed++
	}

	l.logger.Info("Regrouped rows",
		logging.Field{Key: logging.FieldCount, Value: st.Changed},
		logging.Field{Key: "pinned", Value: st.Skipped})
	return st, nil
}
