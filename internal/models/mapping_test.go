package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnMapping_SetAmountClearsCargoAbono(t *testing.T) {
	mapping := ColumnMapping{}
	mapping.SetCargo("Cargo")
	mapping.SetAbono("Abono")

	mapping.SetAmount("Monto")

	assert.Equal(t, "Monto", mapping.Amount)
	assert.Empty(t, mapping.Cargo)
	assert.Empty(t, mapping.Abono)
}

func TestColumnMapping_SetCargoAbonoClearsAmount(t *testing.T) {
	mapping := ColumnMapping{}
	mapping.SetAmount("Monto")

	mapping.SetCargo("Cargo")
	assert.Empty(t, mapping.Amount)
	assert.Equal(t, "Cargo", mapping.Cargo)

	mapping.SetAmount("Monto")
	mapping.SetAbono("Abono")
	assert.Empty(t, mapping.Amount)
	assert.Equal(t, "Abono", mapping.Abono)
}

func TestColumnMapping_SetEmptyDoesNotClear(t *testing.T) {
	mapping := ColumnMapping{}
	mapping.SetCargo("Cargo")
	mapping.SetAbono("Abono")

	// Unassigning the single-amount column leaves the pair alone.
	mapping.SetAmount("")
	assert.Equal(t, "Cargo", mapping.Cargo)
	assert.Equal(t, "Abono", mapping.Abono)

	mapping.SetAmount("Monto")
	mapping.SetCargo("")
	mapping.SetAbono("")
	assert.Equal(t, "Monto", mapping.Amount)
}

func TestColumnMapping_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		mapping ColumnMapping
		want    bool
	}{
		{
			name:    "single amount column",
			mapping: ColumnMapping{Date: "Fecha", Description: "Glosa", Amount: "Monto"},
			want:    true,
		},
		{
			name:    "cargo only",
			mapping: ColumnMapping{Date: "Fecha", Description: "Glosa", Cargo: "Cargo"},
			want:    true,
		},
		{
			name:    "missing date",
			mapping: ColumnMapping{Description: "Glosa", Amount: "Monto"},
			want:    false,
		},
		{
			name:    "no amount columns",
			mapping: ColumnMapping{Date: "Fecha", Description: "Glosa"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mapping.IsValid())
		})
	}
}
