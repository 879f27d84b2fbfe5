package models

// Rule is [category, class, keyword...]. Type rules carry no keywords and match
// on the category itself.
type Rule []string

// Category returns the first field.
func (r Rule) Category() string { return r[0] }

// Class returns the second field.
func (r Rule) Class() string { return r[1] }

// Keywords returns the fields after category and class.
func (r Rule) Keywords() []string { return r[2:] }

// Label returns the rule's (category, class).
func (r Rule) Label() Label { return Label{Category: r[0], Class: r[1]} }

// Ruleset holds the two rule tiers. Which tier a rule belongs to is decided when
// rules are loaded, never at match time.
type Ruleset struct {
	FromType []Rule
	FromText []Rule
}

// NewRuleset keeps the rules that have at least a category and a class field
// and a non-empty category.
func NewRuleset(fromText, fromType []Rule) Ruleset {
	return Ruleset{
		FromType: keepWellFormed(fromType),
		FromText: keepWellFormed(fromText),
	}
}

// Len counts the rules across both tiers.
func (rs Ruleset) Len() int {
	return len(rs.FromType) + len(rs.FromText)
}

// Labels lists the distinct labels in the ruleset, type tier first.
func (rs Ruleset) Labels() []Label {
	seen := make(map[Label]bool)
	var out []Label
	for _, tier := range [][]Rule{rs.FromType, rs.FromText} {
		for _, r := range tier {
			l := r.Label()
			if !seen[l] {
				seen[l] = true
				out = append(out, l)
			}
		}
	}
	return out
}

func keepWellFormed(rules []Rule) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if len(r) >= 2 && r[0] != "" && r[1] != "" {
			out = append(out, r)
		}
	}
	return out
}
