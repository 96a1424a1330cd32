package models

import (
	"github.com/shopspring/decimal"
)

// Cell is a single table value. Source files mix text and numeric cells;
// numeric-looking values keep their parsed form alongside the raw text.
type Cell struct {
	Text      string
	Number    decimal.Decimal
	IsNumeric bool
}

// TextCell builds a plain text cell.
func TextCell(s string) Cell {
	return Cell{Text: s}
}

// NumericCell builds a numeric cell.
func NumericCell(d decimal.Decimal) Cell {
	return Cell{Number: d, IsNumeric: true}
}

// String returns the cell value as a string regardless of kind.
func (c Cell) String() string {
	if c.IsNumeric {
		return c.Number.String()
	}
	return c.Text
}

// IsBlank reports whether the cell holds no content.
func (c Cell) IsBlank() bool {
	return !c.IsNumeric && c.Text == ""
}

// FileStructure is the raw table extracted from an uploaded file. It is
// created once per file and treated as immutable afterward; every row
// holds exactly len(Headers) cells.
type FileStructure struct {
	Headers           []string
	Rows              [][]Cell
	DetectedDelimiter rune // set for CSV inputs, 0 otherwise
}

// HeaderIndex returns the index of the first header with the given name,
// or -1. Headers are not necessarily unique; first occurrence wins.
func (s *FileStructure) HeaderIndex(name string) int {
	for i, h := range s.Headers {
		if h == name {
			return i
		}
	}
	return -1
}
