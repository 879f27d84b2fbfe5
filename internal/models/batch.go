package models

import (
	"fmt"
	"time"

	"fjacquet/sheet-ledger/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Columns is the column-oriented form produced by a sheet reader: one slice per
// record attribute, all expected to have the same length.
type Columns struct {
	AccountingDate   []time.Time
	InterestDate     []time.Time
	ArchiveReference []string
	CounterAccount   []string
	Type             []string
	Text             []string
	Debit            []decimal.Decimal
	Credit           []decimal.Decimal
	Account          []string
}

// Batch is an ordered sequence of records. Every Batch in the program was built
// either by NewBatch, which checks column lengths once, or from whole records.
type Batch struct {
	records []Record
}

// NewBatch zips cols into records. If any two columns differ in length it
// returns a *parsererror.ValidationError and no batch.
func NewBatch(cols Columns) (*Batch, error) {
	lengths := []struct {
		name string
		n    int
	}{
		{"accounting_date", len(cols.AccountingDate)},
		{"interest_date", len(cols.InterestDate)},
		{"archive_reference", len(cols.ArchiveReference)},
		{"counter_account", len(cols.CounterAccount)},
		{"type", len(cols.Type)},
		{"text", len(cols.Text)},
		{"debit", len(cols.Debit)},
		{"credit", len(cols.Credit)},
		{"account", len(cols.Account)},
	}

	n := lengths[0].n
	for _, l := range lengths[1:] {
		if l.n != n {
			return nil, &parsererror.ValidationError{
				Reason: fmt.Sprintf("column %s has %d values, expected %d", l.name, l.n, n),
			}
		}
	}

	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			AccountingDate:   cols.AccountingDate[i],
			InterestDate:     cols.InterestDate[i],
			ArchiveReference: cols.ArchiveReference[i],
			CounterAccount:   cols.CounterAccount[i],
			Type:             cols.Type[i],
			Text:             cols.Text[i],
			Debit:            cols.Debit[i],
			Credit:           cols.Credit[i],
			Account:          cols.Account[i],
		}
	}
	return &Batch{records: records}, nil
}

// BatchOf builds a batch from whole records, in the given order.
func BatchOf(records ...Record) *Batch {
	out := make([]Record, len(records))
	copy(out, records)
	return &Batch{records: out}
}

// Len returns the number of records. A nil batch is empty.
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.records)
}

// At returns the i-th record.
func (b *Batch) At(i int) Record {
	return b.records[i]
}

// Records returns a copy of the records in order.
func (b *Batch) Records() []Record {
	if b == nil {
		return nil
	}
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

// Contains reports whether an equal record is present.
func (b *Batch) Contains(r Record) bool {
	if b == nil {
		return false
	}
	for _, existing := range b.records {
		if existing.Equal(r) {
			return true
		}
	}
	return false
}

// Filter returns a new batch holding the records for which keep returns true.
func (b *Batch) Filter(keep func(Record) bool) *Batch {
	if b == nil {
		return BatchOf()
	}
	var kept []Record
	for _, r := range b.records {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	return BatchOf(kept...)
}

// Reversed returns a new batch with the records in reverse order.
func (b *Batch) Reversed() *Batch {
	n := b.Len()
	out := &Batch{records: make([]Record, n)}
	for i := 0; i < n; i++ {
		out.records[i] = b.records[n-1-i]
	}
	return out
}
