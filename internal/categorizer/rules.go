package categorizer

import (
	"strings"

	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/store"
)

// Category sheet layout: one rule per column, starting at A.
const (
	headerRow       = 1
	categoryRow     = 2
	classRow        = 3
	firstKeywordRow = 4
)

// maxRuleColumns bounds the column walk on a sheet with no blank category cell.
const maxRuleColumns = 16384

// LoadRulesFromSheet reads the category sheet column by column until a column
// has no category in row 2. Row 3 is the class and rows 4 and down are keywords
// until the first blank. A column without a class is skipped. Once a header in
// row 1 contains "type" (any case), that column and every later one is a type
// rule; earlier columns are text rules.
func LoadRulesFromSheet(sheet store.Sheet) models.Ruleset {
	var fromText, fromType []models.Rule
	isText := true

	for i := 0; i < maxRuleColumns; i++ {
		col := columnName(i)
		category := sheet.Value(col, categoryRow)
		if category == "" {
			break
		}
		class := sheet.Value(col, classRow)
		if class == "" {
			continue
		}
		if isText && strings.Contains(strings.ToLower(sheet.Value(col, headerRow)), "type") {
			isText = false
		}

		rule := models.Rule{category, class}
		for row := range store.Rows(sheet, firstKeywordRow, col) {
			rule = append(rule, sheet.Value(col, row))
		}

		if isText {
			fromText = append(fromText, rule)
		} else {
			fromType = append(fromType, rule)
		}
	}
	return models.NewRuleset(fromText, fromType)
}

// LoadRulesFromYAML reads a ruleset from a YAML rules file.
func LoadRulesFromYAML(path string, logger logging.Logger) (models.Ruleset, error) {
	return store.NewRulesFile(path, logger).Load()
}

// SaveRulesToYAML writes rs as a YAML rules file.
func SaveRulesToYAML(rs models.Ruleset, path string, logger logging.Logger) error {
	return store.NewRulesFile(path, logger).Save(rs)
}

// columnName converts a 0-based index to a column letter: 0 is A, 26 is AA.
func columnName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}
