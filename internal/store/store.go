// Package store loads and saves user-editable YAML data: custom
// category rules, recurring-charge keywords and field keyword
// extensions for column mapping.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/models"

	"gopkg.in/yaml.v3"
)

// RuleStore manages the YAML files holding classification rules and
// mapping keywords. Missing files are not errors: the application runs
// fine on its built-in defaults.
type RuleStore struct {
	RulesFile    string
	KeywordsFile string
	logger       logging.Logger
}

// NewRuleStore creates a store over the given file names. Empty names
// fall back to rules.yaml and keywords.yaml. A nil logger falls back to
// a default adapter.
func NewRuleStore(rulesFile, keywordsFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &RuleStore{
		RulesFile:    rulesFile,
		KeywordsFile: keywordsFile,
		logger:       logger,
	}
}

// rulesFile is the on-disk layout of the rules document.
type rulesFile struct {
	Rules             []models.CategoryRule `yaml:"rules"`
	RecurringKeywords []string              `yaml:"recurring_keywords"`
}

// keywordsFile is the on-disk layout of the field keywords document.
type keywordsFile struct {
	Fields map[string][]string `yaml:"fields"`
}

// LoadRules reads custom category rules and recurring keywords. A
// missing file yields empty results and a warning, not an error.
func (s *RuleStore) LoadRules() ([]models.CategoryRule, []string, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	path, found := findConfigFile(filename)
	if !found {
		s.logger.Warn("Rules file not found, using built-in rules",
			logging.F("file", filename))
		return nil, nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading rules file: %w", err)
	}

	var doc rulesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}

	s.logger.Debug("Custom rules loaded",
		logging.F("file", path),
		logging.F("rules", len(doc.Rules)),
		logging.F("recurring_keywords", len(doc.RecurringKeywords)))

	return doc.Rules, doc.RecurringKeywords, nil
}

// SaveRules writes the rules document, creating parent directories as
// needed.
func (s *RuleStore) SaveRules(rules []models.CategoryRule, recurringKeywords []string) error {
	filename := s.RulesFile
	if filename == "" {
		filename = "rules.yaml"
	}

	doc := rulesFile{Rules: rules, RecurringKeywords: recurringKeywords}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating rules directory: %w", err)
		}
	}
	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("writing rules file: %w", err)
	}

	s.logger.Debug("Rules saved",
		logging.F("file", filename),
		logging.F("rules", len(rules)))
	return nil
}

// LoadFieldKeywords reads extra column-mapping keywords per field. A
// missing file yields an empty map and a warning, not an error.
func (s *RuleStore) LoadFieldKeywords() (map[string][]string, error) {
	filename := s.KeywordsFile
	if filename == "" {
		filename = "keywords.yaml"
	}

	path, found := findConfigFile(filename)
	if !found {
		s.logger.Warn("Keywords file not found, using built-in keywords",
			logging.F("file", filename))
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keywords file: %w", err)
	}

	var doc keywordsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing keywords file %s: %w", path, err)
	}

	s.logger.Debug("Field keywords loaded",
		logging.F("file", path),
		logging.F("fields", len(doc.Fields)))

	return doc.Fields, nil
}

// findConfigFile checks the usual locations for a config file: the
// given path itself, ./config/, and ~/.config/cartola-csv/.
func findConfigFile(filename string) (string, bool) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, true
		}
		return "", false
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "cartola-csv", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, true
		}
	}
	return "", false
}
