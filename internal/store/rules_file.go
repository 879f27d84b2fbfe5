package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/sheet-ledger/internal/logging"
	"fjacquet/sheet-ledger/internal/models"
	"fjacquet/sheet-ledger/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// RulesFile loads and saves a category ruleset as YAML. It is the alternative to
// keeping the rules on the workbook's category sheet.
type RulesFile struct {
	Path   string
	logger logging.Logger
}

type rulesDocument struct {
	FromType []typeRuleEntry `yaml:"from_type"`
	FromText []textRuleEntry `yaml:"from_text"`
}

type typeRuleEntry struct {
	Category string `yaml:"category"`
	Class    string `yaml:"class"`
}

type textRuleEntry struct {
	Category string   `yaml:"category"`
	Class    string   `yaml:"class"`
	Keywords []string `yaml:"keywords"`
}

// NewRulesFile returns a RulesFile for path.
func NewRulesFile(path string, logger logging.Logger) *RulesFile {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &RulesFile{Path: path, logger: logger}
}

// FindConfigFile looks for filename as given, then under ./config, then under
// $HOME/.config/sheet-ledger.
func FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".config", "sheet-ledger", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Load reads the ruleset. A file that cannot be found is a *parsererror.NotFoundError.
func (f *RulesFile) Load() (models.Ruleset, error) {
	path, err := FindConfigFile(f.Path)
	if err != nil {
		return models.Ruleset{}, &parsererror.NotFoundError{Kind: "file", Name: f.Path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Ruleset{}, fmt.Errorf("error reading rules file: %w", err)
	}

	var doc rulesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return models.Ruleset{}, fmt.Errorf("error parsing rules file %s: %w", path, err)
	}

	fromType := make([]models.Rule, 0, len(doc.FromType))
	for _, e := range doc.FromType {
		fromType = append(fromType, models.Rule{e.Category, e.Class})
	}
	fromText := make([]models.Rule, 0, len(doc.FromText))
	for _, e := range doc.FromText {
		rule := models.Rule{e.Category, e.Class}
		rule = append(rule, e.Keywords...)
		fromText = append(fromText, rule)
	}

	rs := models.NewRuleset(fromText, fromType)
	f.logger.Debug("Loaded rules file",
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: rs.Len()})
	return rs, nil
}

// Save writes rs to Path, creating the parent directory if needed.
func (f *RulesFile) Save(rs models.Ruleset) error {
	if f.Path == "" {
		return errors.New("no rules file path set")
	}

	doc := rulesDocument{}
	for _, r := range rs.FromType {
		doc.FromType = append(doc.FromType, typeRuleEntry{Category: r.Category(), Class: r.Class()})
	}
	for _, r := range rs.FromText {
		doc.FromText = append(doc.FromText, textRuleEntry{
			Category: r.Category(),
			Class:    r.Class(),
			Keywords: append([]string(nil), r.Keywords()...),
		})
	}

	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error marshaling rules: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}

	f.logger.Debug("Saved rules file",
		logging.Field{Key: logging.FieldInputFile, Value: f.Path},
		logging.Field{Key: logging.FieldCount, Value: rs.Len()})
	return nil
}
