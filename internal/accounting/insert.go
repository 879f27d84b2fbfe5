package accounting

import (
	"context"
	"fmt"

	"fjacquet/sheet-ledger/internal/categorizer"
	"fjacquet/sheet-ledger/internal/ingest"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/reconcile"
)

// InsertOptions selects the statement to insert.
type InsertOptions struct {
	TransactionsPath string
	Account          string
	Bank             string
}

// Insert reads a bank statement, drops the records already in the ledger and
// appends the rest, labeled by the active rules. Nothing is written when the
// statement or the ledger cannot be parsed.
func (s *Service) Insert(ctx context.Context, opts InsertOptions) (Report, error) {
	bank, err := ingest.ParseBank(opts.Bank)
	if err != nil {
		return Report{Pass: PassInsert}, err
	}
	if opts.Account == "" {
		return Report{Pass: PassInsert}, fmt.Errorf("an account is required to insert %s", opts.TransactionsPath)
	}

	incoming, err := ingest.LoadBankFile(opts.TransactionsPath, bank, opts.Account, s.opts.Ingest, s.logger)
	if err != nil {
		return Report{Pass: PassInsert}, err
	}

	return s.withLedger(PassInsert, true, func(r *run, rep *Report) error {
		existing, err := ingest.ParseLedgerSheet(r.ledger.Sheet())
		if err != nil {
			return fmt.Errorf("failed to read ledger: %w", err)
		}

		res := reconcile.Reconcile(incoming, existing)
		rep.Incoming = incoming.Len()
		rep.Dropped = res.Dropped
		r.logger.Info("Reconciled statement with ledger",
			logging.Field{Key: logging.FieldAccount, Value: opts.Account},
			logging.Field{Key: "incoming", Value: incoming.Len()},
			logging.Field{Key: "existing", Value: existing.Len()},
			logging.Field{Key: "dropped", Value: res.Dropped})

		rs, err := s.loadRules(r.table)
		if err != nil {
			return err
		}
		st, err := r.ledger.Append(res.Kept, categorizer.New(rs, r.logger), s.opts.Format)
		rep.Stats = st
		return err
	})
}

// UpdateOptions selects the passes Update runs.
type UpdateOptions struct {
	Insert        bool
	InsertOptions InsertOptions
	Fill          bool
	Regroup       bool
	Redate        bool
}

// Update runs the enabled passes in the order insert, fill, regroup, redate and
// stops at the first error. Reports of the passes that completed are returned
// either way.
func (s *Service) Update(ctx context.Context, opts UpdateOptions) ([]Report, error) {
	steps := []struct {
		enabled bool
		run     func() (Report, error)
	}{
		{opts.Insert, func() (Report, error) { return s.Insert(ctx, opts.InsertOptions) }},
		{opts.Fill, func() (Report, error) { return s.Fill(ctx) }},
		{opts.Regroup, func() (Report, error) { return s.Regroup(ctx) }},
		{opts.Redate, func() (Report, error) { return s.Redate(ctx) }},
	}

	var reports []Report
	for _, step := range steps {
		if !step.enabled {
			continue
		}
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		rep, err := step.run()
		if err != nil {
			return reports, fmt.Errorf("%s: %w", rep.Pass, err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
