// Package models holds the ledger's record, batch, rule and account types.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one ledger row as read from a bank statement or the ledger itself.
// Dates are civil dates stored at UTC midnight.
type Record struct {
	AccountingDate   time.Time
	InterestDate     time.Time
	ArchiveReference string
	CounterAccount   string
	Type             string
	Text             string
	Debit            decimal.Decimal
	Credit           decimal.Decimal
	Account          string
}

// Net is credit minus debit. It is written to the ledger but never read back as
// an authoritative input.
func (r Record) Net() decimal.Decimal {
	return r.Credit.Sub(r.Debit)
}

// Year of the accounting date.
func (r Record) Year() int {
	return r.AccountingDate.Year()
}

// Month of the accounting date, 1 through 12.
func (r Record) Month() int {
	return int(r.AccountingDate.Month())
}

// Equal reports whether every stored attribute of r and o matches exactly.
// Dates compare as instants and amounts numerically, so 10 equals 10.00.
func (r Record) Equal(o Record) bool {
	return r.Account == o.Account &&
		r.AccountingDate.Equal(o.AccountingDate) &&
		r.InterestDate.Equal(o.InterestDate) &&
		r.ArchiveReference == o.ArchiveReference &&
		r.CounterAccount == o.CounterAccount &&
		r.Type == o.Type &&
		r.Text == o.Text &&
		r.Debit.Equal(o.Debit) &&
		r.Credit.Equal(o.Credit)
}

// Label is the (category, class) pair a categorizer assigns. The zero value
// means no rule matched.
type Label struct {
	Category string
	Class    string
}

// IsEmpty reports whether neither part is set.
func (l Label) IsEmpty() bool {
	return l.Category == "" && l.Class == ""
}
