package categorizer

import "fjacquet/sheet-ledger/internal/models"

// Strategy is one tier of rule matching. Strategies are pure: no I/O, and a
// miss is (Label{}, false), never an error.
type Strategy interface {
	Categorize(typ, text string) (models.Label, bool)
	Name() string
}

// TypeRuleStrategy matches a record's type against each type rule's category,
// case-insensitively, in rule order.
type TypeRuleStrategy struct {
	rules []models.Rule
}

// NewTypeRuleStrategy wraps the type tier of a ruleset.
func NewTypeRuleStrategy(rules []models.Rule) *TypeRuleStrategy {
	return &TypeRuleStrategy{rules: rules}
}

func (s *TypeRuleStrategy) Name() string { return "TypeRule" }

func (s *TypeRuleStrategy) Categorize(typ, _ string) (models.Label, bool) {
	for _, r := range s.rules {
		if containsFold(typ, r.Category()) {
			return r.Label(), true
		}
	}
	return models.Label{}, false
}

// TextRuleStrategy matches a record's text against each text rule's keywords,
// case-insensitively, in rule then keyword order.
type TextRuleStrategy struct {
	rules []models.Rule
}

// NewTextRuleStrategy wraps the text tier of a ruleset.
func NewTextRuleStrategy(rules []models.Rule) *TextRuleStrategy {
	return &TextRuleStrategy{rules: rules}
}

func (s *TextRuleStrategy) Name() string { return "TextRule" }

func (s *TextRuleStrategy) Categorize(_, text string) (models.Label, bool) {
	for _, r := range s.rules {
		for _, kw := range r.Keywords() {
			if containsFold(text, kw) {
				return r.Label(), true
			}
		}
	}
	return models.Label{}, false
}
