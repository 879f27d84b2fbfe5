// Package accounting runs the ledger passes against a workbook. Every pass
// opens the workbook, computes its result fully in memory and saves once, so a
// failure before the save leaves the file untouched.
package accounting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fjacquet/sheet-ledger/internal/categorizer"
	"fjacquet/sheet-ledger/internal/common"
	"fjacquet/sheet-ledger/internal/dateutils"
	"fjacquet/sheet-ledger/internal/ingest"
	"fjacquet/sheet-ledger/internal/ledger"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrAIDisabled is returned by Suggest when no AI client is configured.
var ErrAIDisabled = errors.New("AI categorization is disabled")

// Pass names, as logged and reported.
const (
	PassInsert  = "insert"
	PassFill    = "fill"
	PassRegroup = "regroup"
	PassRedate  = "redate"
	PassSuggest = "suggest"
)

// Sheets names the workbook sheets a Service reads.
type Sheets struct {
	Ledger     string
	Categories string
	Accounts   string
}

// Options holds everything a Service needs besides its collaborators.
type Options struct {
	Workbook   string
	Sheets     Sheets
	RulesFile  string // when set, rules come from this YAML file instead of the categories sheet
	Format     dateutils.Format
	FillWindow uint
	FillMargin decimal.Decimal
	Regroup    ledger.RegroupOptions
	Ingest     ingest.Options // statement sheet name and CSV delimiter, also used by Export
}

// Report describes one completed pass.
type Report struct {
	RunID    string
	Pass     string
	Stats    ledger.Stats
	Incoming int // records read from the statement (insert only)
	Dropped  int // records already in the ledger (insert only)
	Duration time.Duration
}

// Service runs passes against one workbook.
type Service struct {
	open   store.Opener
	opts   Options
	ai     categorizer.AIClient
	logger logging.Logger
}

// NewService builds a Service. ai may be nil, which disables Suggest.
func NewService(open store.Opener, opts Options, ai categorizer.AIClient, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if opts.Sheets.Ledger == "" {
		opts.Sheets.Ledger = models.DefaultLedgerSheet
	}
	if opts.Sheets.Categories == "" {
		opts.Sheets.Categories = models.DefaultCategoriesSheet
	}
	if opts.Sheets.Accounts == "" {
		opts.Sheets.Accounts = models.DefaultAccountsSheet
	}
	if opts.Format.Delimiter == "" {
		opts.Format = dateutils.DefaultFormat()
	}
	if opts.Ingest.BankSheet == "" {
		opts.Ingest.BankSheet = models.DefaultBankSheet
	}
	if opts.Ingest.Delimiter == 0 {
		opts.Ingest.Delimiter = common.DefaultDelimiter
	}
	return &Service{open: open, opts: opts, ai: ai, logger: logger}
}

// run is the state of one pass.
type run struct {
	id     string
	table  store.Table
	ledger *ledger.Ledger
	logger logging.Logger
}

// withLedger opens the workbook, hands the ledger sheet to fn and saves when
// fn succeeds and save is set.
func (s *Service) withLedger(pass string, save bool, fn func(r *run, rep *Report) error) (Report, error) {
	start := time.Now()
	rep := Report{RunID: uuid.NewString(), Pass: pass}
	logger := s.logger.WithFields(
		logging.Field{Key: logging.FieldRunID, Value: rep.RunID},
		logging.Field{Key: logging.FieldPass, Value: pass},
		logging.Field{Key: logging.FieldWorkbook, Value: s.opts.Workbook})

	table, err := s.open(s.opts.Workbook)
	if err != nil {
		return rep, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if err := table.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheet, err := table.Sheet(s.opts.Sheets.Ledger)
	if err != nil {
		return rep, err
	}

	r := &run{id: rep.RunID, table: table, ledger: ledger.New(sheet, logger), logger: logger}
	if err := fn(r, &rep); err != nil {
		logger.WithError(err).Error("Pass failed")
		return rep, err
	}

	if save {
		if err := table.Save(s.opts.Workbook); err != nil {
			return rep, fmt.Errorf("failed to save workbook: %w", err)
		}
	}

	rep.Duration = time.Since(start)
	logger.Info("Pass completed",
		logging.Field{Key: "rows", Value: rep.Stats.Rows},
		logging.Field{Key: "changed", Value: rep.Stats.Changed},
		logging.Field{Key: "skipped", Value: rep.Stats.Skipped},
		logging.Field{Key: logging.FieldDuration, Value: rep.Duration.Milliseconds()})
	return rep, nil
}

// loadRules reads the ruleset from the YAML rules file when one is configured,
// otherwise from the categories sheet.
func (s *Service) loadRules(table store.Table) (models.Ruleset, error) {
	if s.opts.RulesFile != "" {
		return categorizer.LoadRulesFromYAML(s.opts.RulesFile, s.logger)
	}
	sheet, err := table.Sheet(s.opts.Sheets.Categories)
	if err != nil {
		return models.Ruleset{}, err
	}
	return categorizer.LoadRulesFromSheet(sheet), nil
}

// Fill runs the gap-fill pass.
func (s *Service) Fill(ctx context.Context) (Report, error) {
	return s.withLedger(PassFill, true, func(r *run, rep *Report) error {
		st, err := r.ledger.FillGaps(s.opts.FillWindow, s.opts.FillMargin)
		rep.Stats = st
		return err
	})
}

// Regroup re-applies the rules to every unpinned row.
func (s *Service) Regroup(ctx context.Context) (Report, error) {
	return s.withLedger(PassRegroup, true, func(r *run, rep *Report) error {
		rs, err := s.loadRules(r.table)
		if err != nil {
			return err
		}
		st, err := r.ledger.Regroup(categorizer.New(rs, r.logger), s.opts.Regroup)
		rep.Stats = st
		return err
	})
}

// Redate rewrites every date to the configured format.
func (s *Service) Redate(ctx context.Context) (Report, error) {
	return s.withLedger(PassRedate, true, func(r *run, rep *Report) error {
		st, err := r.ledger.Redate(s.opts.Format)
		rep.Stats = st
		return err
	})
}

// Accounts lists the account directory.
func (s *Service) Accounts(ctx context.Context) ([]models.Account, error) {
	table, err := s.open(s.opts.Workbook)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer table.Close()

	sheet, err := table.Sheet(s.opts.Sheets.Accounts)
	if err != nil {
		return nil, err
	}
	return ingest.ReadAccounts(sheet)
}

// Rules returns the active ruleset.
func (s *Service) Rules(ctx context.Context) (models.Ruleset, error) {
	if s.opts.RulesFile != "" {
		return s.loadRules(nil)
	}
	table, err := s.open(s.opts.Workbook)
	if err != nil {
		return models.Ruleset{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer table.Close()
	return s.loadRules(table)
}
