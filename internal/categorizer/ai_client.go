package categorizer

import (
	"context"

	"fjacquet/sheet-ledger/internal/models"
)

// AIClient proposes a label for a record, choosing among labels.
// Implementations call an external service.
type AIClient interface {
	Suggest(ctx context.Context, rec models.Record, labels []models.Label) (models.Label, error)
}
