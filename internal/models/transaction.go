// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType carries the direction of a transaction. Amounts are
// always stored non-negative; direction lives here.
type TransactionType string

const (
	// TypeCargo is an outgoing/debit transaction (expense).
	TypeCargo TransactionType = "cargo"
	// TypeAbono is an incoming/credit transaction (income).
	TypeAbono TransactionType = "abono"
)

// Confidence is the classification certainty tier.
type Confidence string

const (
	// ConfidenceHigh means a rule keyword hit.
	ConfidenceHigh Confidence = "high"
	// ConfidenceLow means no rule matched and the default bucket applied.
	ConfidenceLow Confidence = "low"
	// ConfidenceAI means the category was assigned by the AI fallback.
	ConfidenceAI Confidence = "ai"
)

// Well-known categories referenced outside the rule table.
const (
	CategoryOtros  = "Otros"
	CategorySueldo = "Sueldo"
)

// Transaction is a normalized bank-statement entry.
type Transaction struct {
	ID                int             `csv:"-"`
	Date              string          `csv:"Date"` // DD/MM/YYYY canonical form
	Description       string          `csv:"Description"`
	Amount            decimal.Decimal `csv:"Amount"` // always >= 0; Type carries direction
	Type              TransactionType `csv:"Type"`
	SuggestedCategory string          `csv:"SuggestedCategory"`
	Confidence        Confidence      `csv:"Confidence"`
	SelectedCategory  string          `csv:"Category"` // user override, defaults to SuggestedCategory
	IsRecurring       bool            `csv:"Recurring"`
}

// IsCargo returns true for outgoing transactions.
func (t *Transaction) IsCargo() bool {
	return t.Type == TypeCargo
}

// IsAbono returns true for incoming transactions.
func (t *Transaction) IsAbono() bool {
	return t.Type == TypeAbono
}

// AmountAsFloat returns the amount as a float64 for display purposes.
// Use the decimal Amount directly for any arithmetic.
func (t *Transaction) AmountAsFloat() float64 {
	f, _ := t.Amount.Float64()
	return f
}

// TransactionDraft is the pre-classification form of a transaction as
// produced by column mapping, before ids and categories are assigned.
type TransactionDraft struct {
	Date        string
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
}

// CategoryRule maps a keyword set to a category. Rules are evaluated in
// declaration order with first match winning; keywords match as
// case-insensitive substrings of the description.
type CategoryRule struct {
	Keywords   []string   `yaml:"keywords"`
	Category   string     `yaml:"category"`
	Confidence Confidence `yaml:"confidence"`
}
