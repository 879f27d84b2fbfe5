package accounting

import (
	"context"
	"errors"

	"fjacquet/sheet-ledger/internal/categorizer"
	"fjacquet/sheet-ledger/internal/ledger"
	"fjacquet/sheet-ledger/internal/logging"
)

// Suggest asks the AI client for a label for every row that still has no
// category. Suggestions are limited to the labels of the active ruleset. A row
// the client fails on is skipped; a cancelled context ends the pass without
// saving.
func (s *Service) Suggest(ctx context.Context) (Report, error) {
	if s.ai == nil {
		return Report{Pass: PassSuggest}, ErrAIDisabled
	}

	return s.withLedger(PassSuggest, true, func(r *run, rep *Report) error {
		rs, err := s.loadRules(r.table)
		if err != nil {
			return err
		}
		strategy := categorizer.NewAIStrategy(s.ai, rs, r.logger)

		var pending []ledger.Entry
		for e := range r.ledger.Entries() {
			rep.Stats.Rows++
			if e.Category == "" {
				pending = append(pending, e)
			}
		}

		for _, e := range pending {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := e.Record()
			if err != nil {
				rep.Stats.Skipped++
				r.logger.WithError(err).Debug("Skipping unreadable row",
					logging.Field{Key: logging.FieldRow, Value: e.Row})
				continue
			}
			label, ok, err := strategy.Categorize(ctx, rec)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				rep.Stats.Skipped++
				r.logger.WithError(err).Warn("AI suggestion failed",
					logging.Field{Key: logging.FieldRow, Value: e.Row})
				continue
			}
			if !ok {
				rep.Stats.Skipped++
				continue
			}
			if err := r.ledger.SetLabel(e.Row, label); err != nil {
				return err
			}
			rep.Stats.Changed++
		}
		return nil
	})
}
