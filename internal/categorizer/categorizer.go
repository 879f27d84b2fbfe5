// Package categorizer assigns (category, class) labels to ledger records.
//
// Rules come in two tiers. Type rules match the bank's transaction type against
// the rule's category name; text rules match the free text against the rule's
// keywords. The type tier is tried first and the first matching rule wins. A
// record no rule matches gets the empty label.
//
// An optional AI strategy can propose labels for records the rules leave empty.
// It is never consulted by Categorize.
package categorizer

import (
	"strings"

	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
)

// Categorizer applies the rule strategies in order.
type Categorizer struct {
	ruleset    models.Ruleset
	strategies []Strategy
	logger     logging.Logger
}

// New builds a Categorizer over rs.
func New(rs models.Ruleset, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Categorizer{
		ruleset: rs,
		strategies: []Strategy{
			NewTypeRuleStrategy(rs.FromType),
			NewTextRuleStrategy(rs.FromText),
		},
		logger: logger,
	}
}

// Ruleset returns the rules the categorizer was built from.
func (c *Categorizer) Ruleset() models.Ruleset {
	return c.ruleset
}

// Categorize labels rec from its type and text.
func (c *Categorizer) Categorize(rec models.Record) models.Label {
	return c.CategorizeFields(rec.Type, rec.Text)
}

// CategorizeFields labels a (type, text) pair.
func (c *Categorizer) CategorizeFields(typ, text string) models.Label {
	for _, s := range c.strategies {
		if label, ok := s.Categorize(typ, text); ok {
			c.logger.Debug("Matched rule",
				logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
				logging.Field{Key: logging.FieldCategory, Value: label.Category},
				logging.Field{Key: logging.FieldClass, Value: label.Class})
			return label
		}
	}
	return models.Label{}
}

// containsFold reports whether substr occurs in s ignoring case. An empty
// substr never matches.
func containsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
