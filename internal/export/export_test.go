package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture() []models.Transaction {
	return []models.Transaction{
		{
			ID:                1,
			Date:              "01/03/2024",
			Description:       "NETFLIX",
			Amount:            decimal.NewFromInt(5990),
			Type:              models.TypeCargo,
			SuggestedCategory: "Streaming",
			Confidence:        models.ConfidenceHigh,
			SelectedCategory:  "Streaming",
			IsRecurring:       true,
		},
		{
			ID:                2,
			Date:              "02/03/2024",
			Description:       "SUELDO MARZO",
			Amount:            decimal.NewFromInt(1500000),
			Type:              models.TypeAbono,
			SuggestedCategory: "Sueldo",
			Confidence:        models.ConfidenceHigh,
		},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(0, logging.NewMockLogger())

	require.NoError(t, writer.Write(exportFixture(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Description,Amount,Type,SuggestedCategory,Confidence,Category,Recurring", lines[0])
	assert.Contains(t, lines[1], "01/03/2024,NETFLIX,5990,cargo,Streaming,high,Streaming,true")

	// A blank selected category falls back to the suggestion.
	assert.Contains(t, lines[2], "Sueldo,high,Sueldo")
}

func TestWrite_CustomDelimiter(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(';', logging.NewMockLogger())

	require.NoError(t, writer.Write(exportFixture(), &buf))
	assert.Contains(t, buf.String(), "Date;Description;Amount")
}

func TestWrite_EmptySetStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(0, logging.NewMockLogger())

	require.NoError(t, writer.Write(nil, &buf))
	assert.Contains(t, buf.String(), "Date,Description,Amount")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	writer := NewWriter(0, logging.NewMockLogger())

	require.NoError(t, writer.WriteFile(exportFixture(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "NETFLIX")
}
