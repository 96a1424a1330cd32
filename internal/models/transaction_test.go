package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Direction(t *testing.T) {
	cargo := Transaction{Type: TypeCargo}
	assert.True(t, cargo.IsCargo())
	assert.False(t, cargo.IsAbono())

	abono := Transaction{Type: TypeAbono}
	assert.True(t, abono.IsAbono())
	assert.False(t, abono.IsCargo())

	unset := Transaction{}
	assert.False(t, unset.IsCargo())
	assert.False(t, unset.IsAbono())
}

func TestTransaction_AmountAsFloat(t *testing.T) {
	tx := Transaction{Amount: decimal.RequireFromString("10000.50")}
	assert.InDelta(t, 10000.50, tx.AmountAsFloat(), 0.0001)

	zero := Transaction{}
	assert.Zero(t, zero.AmountAsFloat())
}
