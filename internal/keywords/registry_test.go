package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchColumn(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name     string
		field    string
		column   string
		expected float64
	}{
		{"exact", "date", "Fecha", ScoreExact},
		{"exact with accent", "description", "Descripción", ScoreExact},
		{"exact accent insensitive", "description", "Descripcion", ScoreExact},
		{"exact multiword", "date", "Fecha de Operación", ScoreExact},
		{"substring", "date", "Fecha Contable", ScoreSubstring},
		{"substring inside header", "amount", "Valor Neto", ScoreSubstring},
		{"word overlap", "amount", "Operación Neta", ScoreWord},
		{"no match", "date", "Sucursal", 0},
		{"empty column", "date", "", 0},
		{"unknown field", "saldo contable", "Fecha", 0},
		{"field case insensitive", "DATE", "fecha", ScoreExact},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.MatchColumn(tc.field, tc.column))
		})
	}
}

func TestBestMatch(t *testing.T) {
	r := NewRegistry()

	match, ok := r.BestMatch("date", []string{"Sucursal", "Fecha Contable", "Fecha"})
	assert.True(t, ok)
	assert.Equal(t, "Fecha", match.Column)
	assert.Equal(t, ScoreExact, match.Score)

	// First-seen wins ties.
	match, ok = r.BestMatch("description", []string{"Descripción", "Descripcion"})
	assert.True(t, ok)
	assert.Equal(t, "Descripción", match.Column)

	_, ok = r.BestMatch("date", []string{"Sucursal", "Canal"})
	assert.False(t, ok)

	_, ok = r.BestMatch("date", nil)
	assert.False(t, ok)
}

func TestAddCustomKeywords(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, 0.0, r.MatchColumn("date", "Momento Contable"))

	r.AddCustomKeywords("date", []string{"momento contable"})
	assert.Equal(t, ScoreExact, r.MatchColumn("date", "Momento Contable"))

	// Defaults survive custom additions.
	assert.Equal(t, ScoreExact, r.MatchColumn("date", "Fecha"))

	// Unknown fields are created on first registration.
	r.AddCustomKeywords("sucursal", []string{"sucursal"})
	assert.Equal(t, ScoreExact, r.MatchColumn("sucursal", "Sucursal"))
}
