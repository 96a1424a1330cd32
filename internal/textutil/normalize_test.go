package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "FECHA", "fecha"},
		{"trims", "  monto  ", "monto"},
		{"strips accents", "Descripción", "descripcion"},
		{"strips tilde", "año", "ano"},
		{"mixed", "  Fecha de Operación ", "fecha de operacion"},
		{"empty", "", ""},
		{"already normal", "cargo", "cargo"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.input))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "COMPRA EN UNIMARC", CollapseWhitespace("  COMPRA   EN \t UNIMARC "))
	assert.Equal(t, "", CollapseWhitespace("   "))
	assert.Equal(t, "A B", CollapseWhitespace("A\n\nB"))
}
