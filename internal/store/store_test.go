package store

import (
	"os"
	"path/filepath"
	"testing"

	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules_MissingFileIsNotAnError(t *testing.T) {
	logger := logging.NewMockLogger()
	s := NewRuleStore(filepath.Join(t.TempDir(), "nope.yaml"), "", logger)

	rules, recurring, err := s.LoadRules()
	require.NoError(t, err)
	assert.Nil(t, rules)
	assert.Nil(t, recurring)
	assert.True(t, logger.HasMessage("Rules file not found, using built-in rules"))
}

func TestSaveAndLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	s := NewRuleStore(path, "", logging.NewMockLogger())

	rules := []models.CategoryRule{
		{Keywords: []string{"UNIMARC", "JUMBO"}, Category: "Supermercado", Confidence: models.ConfidenceHigh},
		{Keywords: []string{"TRANSF"}, Category: "Otros", Confidence: models.ConfidenceLow},
	}
	recurring := []string{"NETFLIX", "GYM"}

	require.NoError(t, s.SaveRules(rules, recurring))

	loaded, loadedRecurring, err := s.LoadRules()
	require.NoError(t, err)
	assert.Equal(t, rules, loaded)
	assert.Equal(t, recurring, loadedRecurring)
}

func TestLoadRules_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: [unclosed"), 0o600))

	s := NewRuleStore(path, "", logging.NewMockLogger())
	_, _, err := s.LoadRules()
	assert.Error(t, err)
}

func TestLoadFieldKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := "fields:\n  date:\n    - fecha operacion\n  amount:\n    - monto total\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s := NewRuleStore("", path, logging.NewMockLogger())
	fields, err := s.LoadFieldKeywords()
	require.NoError(t, err)
	assert.Equal(t, []string{"fecha operacion"}, fields["date"])
	assert.Equal(t, []string{"monto total"}, fields["amount"])
}

func TestLoadFieldKeywords_MissingFile(t *testing.T) {
	s := NewRuleStore("", filepath.Join(t.TempDir(), "nope.yaml"), logging.NewMockLogger())
	fields, err := s.LoadFieldKeywords()
	require.NoError(t, err)
	assert.Nil(t, fields)
}
