package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RecordBuilder provides a fluent API for constructing records. The first error
// sticks and is returned by Build.
type RecordBuilder struct {
	rec Record
	err error
}

// NewRecordBuilder returns a builder for a record with zero amounts.
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		rec: Record{
			Debit:  decimal.Zero,
			Credit: decimal.Zero,
		},
	}
}

// WithDates sets the accounting and interest dates, truncated to the civil day.
func (b *RecordBuilder) WithDates(accounting, interest time.Time) *RecordBuilder {
	if b.err != nil {
		return b
	}
	if accounting.IsZero() {
		b.err = errors.New("accounting date cannot be zero")
		return b
	}
	if interest.IsZero() {
		interest = accounting
	}
	b.rec.AccountingDate = civil(accounting)
	b.rec.InterestDate = civil(interest)
	return b
}

// WithReferences sets the archive reference and the counter account.
func (b *RecordBuilder) WithReferences(archive, counter string) *RecordBuilder {
	if b.err != nil {
		return b
	}
	b.rec.ArchiveReference = archive
	b.rec.CounterAccount = counter
	return b
}

// WithDescription sets the type and free text used for categorization.
func (b *RecordBuilder) WithDescription(typ, text string) *RecordBuilder {
	if b.err != nil {
		return b
	}
	b.rec.Type = typ
	b.rec.Text = text
	return b
}

// WithAmounts sets debit and credit. Neither may be negative.
func (b *RecordBuilder) WithAmounts(debit, credit decimal.Decimal) *RecordBuilder {
	if b.err != nil {
		return b
	}
	if debit.IsNegative() || credit.IsNegative() {
		b.err = fmt.Errorf("amounts must be non-negative, got debit=%s credit=%s", debit, credit)
		return b
	}
	b.rec.Debit = debit
	b.rec.Credit = credit
	return b
}

// WithAmountStrings parses debit and credit from decimal strings. An empty string is zero.
func (b *RecordBuilder) WithAmountStrings(debit, credit string) *RecordBuilder {
	if b.err != nil {
		return b
	}
	d, err := parseAmount(debit)
	if err != nil {
		b.err = fmt.Errorf("invalid debit '%s': %w", debit, err)
		return b
	}
	c, err := parseAmount(credit)
	if err != nil {
		b.err = fmt.Errorf("invalid credit '%s': %w", credit, err)
		return b
	}
	return b.WithAmounts(d, c)
}

// WithAccount sets the owning account.
func (b *RecordBuilder) WithAccount(account string) *RecordBuilder {
	if b.err != nil {
		return b
	}
	b.rec.Account = account
	return b
}

// Build returns the record or the first error recorded along the chain.
func (b *RecordBuilder) Build() (Record, error) {
	if b.err != nil {
		return Record{}, b.err
	}
	if b.rec.AccountingDate.IsZero() {
		return Record{}, errors.New("accounting date is required")
	}
	return b.rec, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
