package ai

import (
	"strings"
	"testing"

	"dmunoz/cartola-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedCategories(t *testing.T) {
	income := AllowedCategories(models.TypeAbono)
	assert.ElementsMatch(t, []string{"Sueldo", "Otros"}, income)

	expense := AllowedCategories(models.TypeCargo)
	assert.Contains(t, expense, "Supermercado")
	assert.Contains(t, expense, "Otros")
	assert.NotContains(t, expense, "Sueldo")
	assert.Len(t, expense, len(models.Categories)-1)
}

func TestBuildBatchPrompt(t *testing.T) {
	items := []BatchItem{
		{Index: 7, Description: "NETFLIX.COM", Type: models.TypeCargo},
		{Index: 9, Description: "DEPOSITO", Type: models.TypeAbono},
	}

	prompt := BuildBatchPrompt(items)

	// Indices are batch-local, not the caller's transaction ids.
	assert.Contains(t, prompt, `0. Tipo: Gasto (Cargo) | Descripción: "NETFLIX.COM"`)
	assert.Contains(t, prompt, `1. Tipo: Ingreso (Abono) | Descripción: "DEPOSITO"`)
	assert.NotContains(t, prompt, "7. Tipo:")
	assert.Contains(t, prompt, `"index": 0`)
	for _, category := range models.Categories {
		assert.Contains(t, prompt, category)
	}
}

func TestParseEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{"plain json", `{"categories":[{"index":0,"category":"Otros"}]}`, 1, false},
		{"prose wrapped", "claro:\n{\"categories\":[{\"index\":0,\"category\":\"Cine\"}]}\nlisto", 1, false},
		{"empty", "", 0, true},
		{"no json at all", "no puedo ayudarte con eso", 0, true},
		{"broken json", `{"categories": [}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := parseEnvelope(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, envelope.Categories, tt.want)
		})
	}
}

func TestParseEnvelope_ExtractsOutermostObject(t *testing.T) {
	content := "x {\"categories\":[{\"index\":0,\"category\":\"Salud\"}]} y"
	envelope, err := parseEnvelope(content)
	require.NoError(t, err)
	require.Len(t, envelope.Categories, 1)
	assert.Equal(t, "Salud", envelope.Categories[0].Category)
	assert.True(t, strings.Contains(content, "Salud"))
}
