package ingest

import (
	"errors"
	"testing"
	"time"

	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/parsererror"
	"fjacquet/sheet-ledger/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedgerSheet() *store.MemorySheet {
	s := store.NewMemory().AddSheet(models.DefaultLedgerSheet)
	s.SetRow(1, "Dato", "Rentedato", "Arkivref", "Motkonto", "Type", "Tekst", "Ut", "Inn", "Netto", "Konto", "Kategori", "Klasse", "År", "Måned", "Notat")
	return s
}

func TestParseLedgerSheet(t *testing.T) {
	s := newLedgerSheet()
	s.SetRow(2, "01/02/2022", "02/02/2022", "R1", "", "Varekjøp", "REMA 1000", 120.5, "", -120.5, "Brukskonto", "Mat", "Utgift", 2022, "feb")
	s.SetRow(3, "03.02.2022", "03.02.2022", "R3", "", "Lønn", "Februar", "", 30000, 30000, "Brukskonto")

	batch, err := ParseLedgerSheet(s)
	require.NoError(t, err)
	require.Equal(t, 2, batch.Len())

	first := batch.At(0)
	assert.Equal(t, day(2022, time.February, 1), first.AccountingDate)
	assert.Equal(t, day(2022, time.February, 2), first.InterestDate)
	assert.True(t, first.Debit.Equal(decimal.RequireFromString("120.5")))
	assert.True(t, first.Credit.IsZero())
	assert.Equal(t, "Brukskonto", first.Account)

	second := batch.At(1)
	assert.Equal(t, day(2022, time.February, 3), second.AccountingDate, "each row detects its own delimiter")
	assert.True(t, second.Credit.Equal(decimal.NewFromInt(30000)))
}

func TestParseLedgerSheet_Errors(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		wantField string
	}{
		{name: "iso date has no delimiter in third place", a: "2022-02-01", b: "2022-02-01", wantField: "accounting_date"},
		{name: "interest date uses other delimiter", a: "01/02/2022", b: "01.02.2022", wantField: "interest_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newLedgerSheet()
			s.SetRow(2, tt.a, tt.b)

			_, err := ParseLedgerSheet(s)
			var perr *parsererror.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "ledger", perr.Source)
			assert.Equal(t, tt.wantField, perr.Field)
			assert.Equal(t, 2, perr.Row)
		})
	}
}

func TestReadAccounts(t *testing.T) {
	s := store.NewMemory().AddSheet(models.DefaultAccountsSheet)
	s.SetRow(1, "", "Navn", "Kontonummer")
	s.SetRow(2, "", "Brukskonto", "97100512345")
	s.SetRow(3, "", "Sparekonto", "9710.05.54321")
	s.SetRow(4, "", "Ugyldig", "n/a")
	s.SetRow(5, "", "Etter", "12345")

	accounts, err := ReadAccounts(s)
	require.NoError(t, err)
	assert.Equal(t, []models.Account{
		{Name: "Brukskonto", Number: 97100512345},
		{Name: "Sparekonto", Number: 97100554321},
	}, accounts)

	_, err = ReadAccounts(nil)
	assert.Error(t, err)
}
