// Package reconcile removes already-recorded records from an incoming batch.
package reconcile

import "fjacquet/sheet-ledger/internal/models"

// Result reports what Subtract kept and dropped.
type Result struct {
	Kept    *models.Batch
	Dropped int
}

// Subtract returns the records of incoming that have no equal record in
// existing, in incoming order. Equality is models.Record.Equal on every stored
// attribute. Neither input is modified.
func Subtract(incoming, existing *models.Batch) *models.Batch {
	return incoming.Filter(func(r models.Record) bool {
		return !existing.Contains(r)
	})
}

// Reconcile is Subtract with counts for logging.
func Reconcile(incoming, existing *models.Batch) Result {
	kept := Subtract(incoming, existing)
	return Result{Kept: kept, Dropped: incoming.Len() - kept.Len()}
}
