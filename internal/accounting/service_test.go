package accounting

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/sheet-ledger/internal/dateutils"
	"fjacquet/sheet-ledger/internal/ledger"
	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/parsererror"
	"fjacquet/sheet-ledger/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statementCSV = "BOKFØRINGSDATO;RENTEDATO;ARKIVREFERANSE;MOTKONTO;TYPE;TEKST;UT FRA KONTO;INN PÅ KONTO\n" +
	"05.02.2022;05.02.2022;R3;;Overføring;Fra sparekonto;;500,00\n" +
	"03.02.2022;03.02.2022;R2;;Varekjøp;KIWI 505 STORO;-89,90;\n" +
	"01.02.2022;01.02.2022;R1;;Varekjøp;REMA 1000;-120,50;\n"

// fixture builds a workbook with a ledger holding R1, a categories sheet and an
// account directory.
func fixture(t *testing.T) (*store.Memory, *store.MemorySheet) {
	t.Helper()
	m := store.NewMemory()

	l := m.AddSheet(models.DefaultLedgerSheet)
	l.SetRow(1, "Bokført", "Rentedato", "Arkivref", "Motkonto", "Type", "Tekst",
		"Ut", "Inn", "Netto", "Konto", "Kategori", "Klasse", "År", "Måned", "Notat")
	l.SetRow(2, "01/02/2022", "01/02/2022", "R1", "", "Varekjøp", "REMA 1000",
		120.5, 0.0, -120.5, "A", "Mat", "Dagligvare", 2022, "feb")

	c := m.AddSheet(models.DefaultCategoriesSheet)
	for _, col := range []struct {
		letter string
		values []string
	}{
		{"A", []string{"Tekst", "Mat", "Dagligvare", "REMA", "KIWI"}},
		{"B", []string{"Tekst", "Bolig", "Fast", "Husleie"}},
		{"C", []string{"Type", "Overføring", "Intern"}},
	} {
		for i, v := range col.values {
			require.NoError(t, c.SetValue(col.letter, i+1, v))
		}
	}

	a := m.AddSheet(models.DefaultAccountsSheet)
	a.SetRow(1, "", "Navn", "Kontonummer")
	a.SetRow(2, "", "Brukskonto", "9710.05.12345")
	a.SetRow(3, "", "Sparekonto", "9710 05 54321")

	return m, l
}

func newService(m *store.Memory, opts Options, ai *mockAIClient, logger logging.Logger) *Service {
	opts.Workbook = "budsjett.xlsx"
	if ai == nil {
		return NewService(m.Opener(), opts, nil, logger)
	}
	return NewService(m.Opener(), opts, ai, logger)
}

func writeStatement(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestInsert_EndToEnd(t *testing.T) {
	m, l := fixture(t)
	logger := logging.NewMockLogger()
	svc := newService(m, Options{}, nil, logger)

	rep, err := svc.Insert(context.Background(), InsertOptions{
		TransactionsPath: writeStatement(t, statementCSV),
		Account:          "A",
	})
	require.NoError(t, err)

	assert.Equal(t, PassInsert, rep.Pass)
	_, err = uuid.Parse(rep.RunID)
	assert.NoError(t, err)
	assert.Equal(t, 3, rep.Incoming)
	assert.Equal(t, 1, rep.Dropped)
	assert.Equal(t, 2, rep.Stats.Changed)
	assert.Equal(t, []string{"budsjett.xlsx"}, m.SavedTo)
	assert.True(t, m.Closed)

	// original row untouched, two new rows oldest first
	assert.Equal(t, "R1", l.Value(models.ColArchiveReference, 2))
	assert.Equal(t, "R2", l.Value(models.ColArchiveReference, 3))
	assert.Equal(t, "03/02/2022", l.Value(models.ColAccountingDate, 3))
	assert.Equal(t, "Mat", l.Value(models.ColCategory, 3))
	assert.Equal(t, "Dagligvare", l.Value(models.ColClass, 3))
	assert.Equal(t, "-89.9", l.Value(models.ColNet, 3))
	assert.Equal(t, "A", l.Value(models.ColAccount, 3))
	assert.Equal(t, "R3", l.Value(models.ColArchiveReference, 4))
	assert.Equal(t, "Overføring", l.Value(models.ColCategory, 4))
	assert.Equal(t, "Intern", l.Value(models.ColClass, 4))
	assert.Equal(t, "", l.Value(models.ColAccountingDate, 5))

	entry := logger.GetEntriesByLevel("INFO")
	require.NotEmpty(t, entry)
	runID, ok := entry[len(entry)-1].FieldValue(logging.FieldRunID)
	assert.True(t, ok)
	assert.Equal(t, rep.RunID, runID)
}

func TestInsert_IsIdempotent(t *testing.T) {
	m, l := fixture(t)
	svc := newService(m, Options{}, nil, nil)
	opts := InsertOptions{TransactionsPath: writeStatement(t, statementCSV), Account: "A"}

	_, err := svc.Insert(context.Background(), opts)
	require.NoError(t, err)
	rep, err := svc.Insert(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Dropped)
	assert.Equal(t, 0, rep.Stats.Changed)
	assert.Equal(t, "", l.Value(models.ColAccountingDate, 5))
}

func TestInsert_RulesFromYAML(t *testing.T) {
	m, l := fixture(t)
	rulesPath := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rulesPath, []byte(`
from_text:
  - category: Dagligvarer
    class: Hushold
    keywords: [KIWI]
`), 0644))

	svc := newService(m, Options{RulesFile: rulesPath}, nil, nil)
	_, err := svc.Insert(context.Background(), InsertOptions{TransactionsPath: writeStatement(t, statementCSV), Account: "A"})
	require.NoError(t, err)

	assert.Equal(t, "Dagligvarer", l.Value(models.ColCategory, 3))
	assert.Equal(t, "", l.Value(models.ColCategory, 4))
}

func TestInsert_Failures(t *testing.T) {
	badStatement := "BOKFØRINGSDATO;RENTEDATO;ARKIVREFERANSE;MOTKONTO;TYPE;TEKST;UT FRA KONTO;INN PÅ KONTO\n" +
		"01.02.2022;01.02.2022;R9;;Varekjøp;REMA;abc;\n"

	tests := []struct {
		name    string
		opts    func(t *testing.T) InsertOptions
		prepare func(m *store.Memory, l *store.MemorySheet)
		check   func(t *testing.T, err error)
	}{
		{
			name: "missing account",
			opts: func(t *testing.T) InsertOptions {
				return InsertOptions{TransactionsPath: writeStatement(t, statementCSV)}
			},
			check: func(t *testing.T, err error) { assert.Contains(t, err.Error(), "account is required") },
		},
		{
			name: "unknown bank",
			opts: func(t *testing.T) InsertOptions {
				return InsertOptions{TransactionsPath: writeStatement(t, statementCSV), Account: "A", Bank: "dnb"}
			},
			check: func(t *testing.T, err error) { assert.Contains(t, err.Error(), "unknown bank") },
		},
		{
			name: "missing statement",
			opts: func(t *testing.T) InsertOptions {
				return InsertOptions{TransactionsPath: filepath.Join(t.TempDir(), "none.csv"), Account: "A"}
			},
			check: func(t *testing.T, err error) { assert.True(t, errors.Is(err, parsererror.ErrNotFound)) },
		},
		{
			name: "unparsable statement",
			opts: func(t *testing.T) InsertOptions {
				return InsertOptions{TransactionsPath: writeStatement(t, badStatement), Account: "A"}
			},
			check: func(t *testing.T, err error) {
				var perr *parsererror.ParseError
				require.True(t, errors.As(err, &perr))
				assert.Equal(t, "debit", perr.Field)
			},
		},
		{
			name: "unparsable ledger",
			opts: func(t *testing.T) InsertOptions {
				return InsertOptions{TransactionsPath: writeStatement(t, statementCSV), Account: "A"}
			},
			prepare: func(_ *store.Memory, l *store.MemorySheet) {
				_ = l.SetValue(models.ColDebit, 2, "mye")
			},
			check: func(t *testing.T, err error) {
				var perr *parsererror.ParseError
				require.True(t, errors.As(err, &perr))
				assert.Equal(t, "ledger", perr.Source)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, l := fixture(t)
			if tt.prepare != nil {
				tt.prepare(m, l)
			}
			_, err := newService(m, Options{}, nil, nil).Insert(context.Background(), tt.opts(t))
			require.Error(t, err)
			tt.check(t, err)

			assert.Empty(t, m.SavedTo)
			assert.Equal(t, "", l.Value(models.ColAccountingDate, 3))
		})
	}
}

func TestInsert_MissingLedgerSheet(t *testing.T) {
	m := store.NewMemory()
	m.AddSheet(models.DefaultCategoriesSheet)

	_, err := newService(m, Options{}, nil, nil).Insert(context.Background(),
		InsertOptions{TransactionsPath: writeStatement(t, statementCSV), Account: "A"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrNotFound))
	assert.True(t, m.Closed)
}

func TestOpenFailure(t *testing.T) {
	opener := func(path string) (store.Table, error) {
		return nil, &parsererror.NotFoundError{Kind: "workbook", Name: path}
	}
	svc := NewService(opener, Options{Workbook: "none.xlsx"}, nil, nil)

	_, err := svc.Fill(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrNotFound))
}

func TestFill(t *testing.T) {
	m, l := fixture(t)
	l.SetRow(3, "02/02/2022", "02/02/2022", "R5", "", "Overføring", "Tilbakebetaling",
		0.0, 120.5, 120.5, "A")

	svc := newService(m, Options{FillWindow: 2, FillMargin: decimal.Zero}, nil, nil)
	rep, err := svc.Fill(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ledger.Stats{Rows: 2, Changed: 1}, rep.Stats)
	assert.Equal(t, "Mat", l.Value(models.ColCategory, 3))
	assert.Equal(t, []string{"budsjett.xlsx"}, m.SavedTo)
}

func TestRegroup(t *testing.T) {
	m, l := fixture(t)
	require.NoError(t, l.SetValue(models.ColCategory, 2, "Feil"))

	rep, err := newService(m, Options{Regroup: ledger.DefaultRegroupOptions()}, nil, nil).Regroup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Stats.Changed)
	assert.Equal(t, "Mat", l.Value(models.ColCategory, 2))
}

func TestRegroup_MissingCategoriesSheet(t *testing.T) {
	m := store.NewMemory()
	m.AddSheet(models.DefaultLedgerSheet)

	_, err := newService(m, Options{}, nil, nil).Regroup(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrNotFound))
	assert.Empty(t, m.SavedTo)
}

func TestRedate(t *testing.T) {
	m, l := fixture(t)
	f := dateutils.Format{Delimiter: ".", MonthStyle: dateutils.MonthLong, Language: dateutils.LanguageLocal, Capitalize: true}

	rep, err := newService(m, Options{Format: f}, nil, nil).Redate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Stats.Changed)
	assert.Equal(t, "01.02.2022", l.Value(models.ColAccountingDate, 2))
	assert.Equal(t, "Februar", l.Value(models.ColMonth, 2))
}

func TestUpdate(t *testing.T) {
	m, l := fixture(t)
	svc := newService(m, Options{FillWindow: 1}, nil, nil)

	reports, err := svc.Update(context.Background(), UpdateOptions{
		Insert:        true,
		InsertOptions: InsertOptions{TransactionsPath: writeStatement(t, statementCSV), Account: "A"},
		Fill:          true,
		Regroup:       true,
	})
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, []string{PassInsert, PassFill, PassRegroup},
		[]string{reports[0].Pass, reports[1].Pass, reports[2].Pass})
	assert.Equal(t, "R3", l.Value(models.ColArchiveReference, 4))
}

func TestUpdate_StopsAtFirstError(t *testing.T) {
	m, _ := fixture(t)
	svc := newService(m, Options{}, nil, nil)

	reports, err := svc.Update(context.Background(), UpdateOptions{
		Insert:        true,
		InsertOptions: InsertOptions{TransactionsPath: "missing.csv", Account: "A"},
		Fill:          true,
	})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "insert: "))
	assert.Empty(t, reports)
	assert.Empty(t, m.SavedTo)
}

func TestAccountsAndRules(t *testing.T) {
	m, _ := fixture(t)
	svc := newService(m, Options{}, nil, nil)

	accounts, err := svc.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Account{
		{Name: "Brukskonto", Number: 97100512345},
		{Name: "Sparekonto", Number: 97100554321},
	}, accounts)

	rs, err := svc.Rules(context.Background())
	require.NoError(t, err)
	assert.Len(t, rs.FromText, 2)
	assert.Len(t, rs.FromType, 1)
	assert.Empty(t, m.SavedTo)
}

func TestExport(t *testing.T) {
	m, _ := fixture(t)
	svc := newService(m, Options{}, nil, nil)

	var buf bytes.Buffer
	n, err := svc.Export(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "AccountingDate;InterestDate;ArchiveReference"))
	assert.Equal(t, "01/02/2022;01/02/2022;R1;;Varekjøp;REMA 1000;120.5;0;-120.5;A;Mat;Dagligvare;2022;feb;", lines[1])
	assert.Empty(t, m.SavedTo)
}
