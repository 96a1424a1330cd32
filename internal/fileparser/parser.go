// Package fileparser turns raw statement files into a uniform tabular
// structure: a header row plus typed data cells, independent of whether
// the source was delimited text or a spreadsheet.
package fileparser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Parser reads one statement file into a FileStructure.
type Parser interface {
	Parse(r io.Reader) (models.FileStructure, error)
}

// ForFile returns the parser matching the file's extension.
func ForFile(filename string, logger logging.Logger) (Parser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return NewCSVParser(logger), nil
	case ".xlsx", ".xls":
		return NewExcelParser(logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

// buildStructure assembles headers and typed cells from raw string
// records. The first row with any non-blank cell becomes the header row.
// Blank header cells are dropped entirely and data cells are taken
// positionally for the remaining header count, so columns to the right
// of a dropped header shift left. Every data row is padded or truncated
// to the header width; fully blank data rows are dropped.
func buildStructure(records [][]string) (models.FileStructure, error) {
	var structure models.FileStructure

	headerRow := -1
	for i, record := range records {
		if !rowIsBlank(record) {
			headerRow = i
			break
		}
	}
	if headerRow == -1 {
		return structure, ErrNoHeaders
	}

	headers := make([]string, 0, len(records[headerRow]))
	for _, cell := range records[headerRow] {
		if trimmed := strings.TrimSpace(cell); trimmed != "" {
			headers = append(headers, trimmed)
		}
	}
	if len(headers) == 0 {
		return structure, ErrNoHeaders
	}
	structure.Headers = headers

	for _, record := range records[headerRow+1:] {
		if rowIsBlank(record) {
			continue
		}
		row := make([]models.Cell, len(headers))
		for i := range headers {
			value := ""
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			row[i] = coerceCell(value)
		}
		structure.Rows = append(structure.Rows, row)
	}
	if len(structure.Rows) == 0 {
		return structure, ErrNoData
	}

	return structure, nil
}

// coerceCell marks a cell numeric only when the decimal form round-trips
// to the exact source text. Formatted figures like "10.000" or "1.234,56"
// stay textual so the locale-aware amount parser sees them untouched.
func coerceCell(value string) models.Cell {
	if value == "" {
		return models.TextCell("")
	}
	d, err := decimal.NewFromString(value)
	if err != nil || d.String() != value {
		return models.TextCell(value)
	}
	return models.NumericCell(d)
}

func rowIsBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
