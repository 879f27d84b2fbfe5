package reconcile

import (
	"testing"
	"time"

	"fjacquet/sheet-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func rec(ref string, debit string) models.Record {
	d := time.Date(2022, time.February, 1, 0, 0, 0, 0, time.UTC)
	return models.Record{
		AccountingDate:   d,
		InterestDate:     d,
		ArchiveReference: ref,
		Type:             "Varekjøp",
		Text:             "REMA 1000",
		Debit:            decimal.RequireFromString(debit),
		Credit:           decimal.Zero,
		Account:          "Brukskonto",
	}
}

func refs(b *models.Batch) []string {
	var out []string
	for _, r := range b.Records() {
		out = append(out, r.ArchiveReference)
	}
	return out
}

func TestSubtract(t *testing.T) {
	a, b, c := rec("A", "10"), rec("B", "20"), rec("C", "30")

	tests := []struct {
		name     string
		incoming *models.Batch
		existing *models.Batch
		want     []string
	}{
		{name: "nothing existing", incoming: models.BatchOf(a, b), existing: models.BatchOf(), want: []string{"A", "B"}},
		{name: "one present", incoming: models.BatchOf(a, b, c), existing: models.BatchOf(b), want: []string{"A", "C"}},
		{name: "all present", incoming: models.BatchOf(a, b), existing: models.BatchOf(b, a), want: nil},
		{name: "empty incoming", incoming: models.BatchOf(), existing: models.BatchOf(a), want: nil},
		{name: "nil existing", incoming: models.BatchOf(a), existing: nil, want: []string{"A"}},
		{
			name:     "amount scale does not matter",
			incoming: models.BatchOf(rec("A", "10.00")),
			existing: models.BatchOf(a),
			want:     nil,
		},
		{
			name:     "one differing field keeps the record",
			incoming: models.BatchOf(rec("A", "10.01")),
			existing: models.BatchOf(a),
			want:     []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, refs(Subtract(tt.incoming, tt.existing)))
		})
	}
}

func TestSubtract_Properties(t *testing.T) {
	a, b, c := rec("A", "10"), rec("B", "20"), rec("C", "30")
	incoming := models.BatchOf(a, b, c)
	existing := models.BatchOf(b, rec("D", "40"))

	assert.Equal(t, 0, Subtract(incoming, incoming).Len(), "subtracting a batch from itself leaves nothing")

	once := Subtract(incoming, existing)
	twice := Subtract(once, existing)
	assert.Equal(t, refs(once), refs(twice), "subtract is idempotent")

	assert.Equal(t, 3, incoming.Len(), "inputs are not modified")
}

func TestSubtract_KeepsDuplicatesWithinIncoming(t *testing.T) {
	a := rec("A", "10")
	got := Subtract(models.BatchOf(a, a), models.BatchOf())
	assert.Equal(t, 2, got.Len())
}

func TestReconcile(t *testing.T) {
	a, b := rec("A", "10"), rec("B", "20")
	res := Reconcile(models.BatchOf(a, b), models.BatchOf(a))
	assert.Equal(t, 1, res.Dropped)
	assert.Equal(t, []string{"B"}, refs(res.Kept))
}
