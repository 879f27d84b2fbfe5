package categorizer

import (
	"context"
	"strings"

	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/parsererror"
)

// AIStrategy asks an AIClient for a label, restricted to the labels of a
// ruleset. A reply outside that set counts as no match.
type AIStrategy struct {
	client AIClient
	labels []models.Label
	logger logging.Logger
}

// NewAIStrategy builds an AIStrategy choosing among the labels of rs.
func NewAIStrategy(client AIClient, rs models.Ruleset, logger logging.Logger) *AIStrategy {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &AIStrategy{client: client, labels: rs.Labels(), logger: logger}
}

func (s *AIStrategy) Name() string { return "AI" }

// Categorize returns the suggested label and true when the client proposed one
// of the known labels. A client failure is a *parsererror.CategorizationError.
func (s *AIStrategy) Categorize(ctx context.Context, rec models.Record) (models.Label, bool, error) {
	if s.client == nil || len(s.labels) == 0 {
		return models.Label{}, false, nil
	}
	if strings.TrimSpace(rec.Text) == "" && strings.TrimSpace(rec.Type) == "" {
		return models.Label{}, false, nil
	}

	suggested, err := s.client.Suggest(ctx, rec, s.labels)
	if err != nil {
		return models.Label{}, false, &parsererror.CategorizationError{
			Transaction: rec.Text,
			Strategy:    s.Name(),
			Err:         err,
		}
	}

	for _, known := range s.labels {
		if strings.EqualFold(known.Category, suggested.Category) && strings.EqualFold(known.Class, suggested.Class) {
			return known, true, nil
		}
	}

	s.logger.Debug("Ignoring suggestion outside the ruleset",
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: suggested.Category},
		logging.Field{Key: logging.FieldClass, Value: suggested.Class})
	return models.Label{}, false, nil
}
