// Package mapper infers which source columns hold which transaction
// fields and materializes table rows into transaction drafts.
package mapper

import (
	"strings"

	"dmunoz/cartola-csv/internal/amount"
	"dmunoz/cartola-csv/internal/dateformat"
	"dmunoz/cartola-csv/internal/keywords"
	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/models"
	"dmunoz/cartola-csv/internal/textutil"
)

// acceptScore is the minimum keyword score for a column to be assigned
// to a field during inference.
const acceptScore = 0.5

// autoDetectScore is the per-field and mean score a mapping must reach
// before it is accepted without human confirmation.
const autoDetectScore = 0.7

// dateSampleLimit caps how many date cells feed format detection.
const dateSampleLimit = 20

// Mapper infers column mappings against a keyword registry.
type Mapper struct {
	registry *keywords.Registry
	logger   logging.Logger
}

// New creates a Mapper. A nil logger falls back to a default adapter.
func New(registry *keywords.Registry, logger logging.Logger) *Mapper {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Mapper{registry: registry, logger: logger}
}

// InferMapping resolves the best column for each canonical field. A
// resolved cargo or abono column clears the single-amount assignment
// (separate-column layouts win). The date format is detected from a
// sample of the resolved date column. Auto-detection requires date and
// description to each score at least 0.7 and the mean score across all
// matched fields to reach 0.7.
func (m *Mapper) InferMapping(structure models.FileStructure) models.MappingResult {
	mapping := models.ColumnMapping{DateFormat: models.DateFormatAuto}

	totalConfidence := 0.0
	matchedFields := 0

	if match, ok := m.registry.BestMatch("date", structure.Headers); ok && match.Score >= acceptScore {
		mapping.Date = match.Column
		totalConfidence += match.Score
		matchedFields++
	}
	if match, ok := m.registry.BestMatch("description", structure.Headers); ok && match.Score >= acceptScore {
		mapping.Description = match.Column
		totalConfidence += match.Score
		matchedFields++
	}
	if match, ok := m.registry.BestMatch("amount", structure.Headers); ok && match.Score >= acceptScore {
		mapping.SetAmount(match.Column)
		totalConfidence += match.Score
		matchedFields++
	}
	if match, ok := m.registry.BestMatch("cargo", structure.Headers); ok && match.Score >= acceptScore {
		mapping.SetCargo(match.Column)
		totalConfidence += match.Score
		matchedFields++
	}
	if match, ok := m.registry.BestMatch("abono", structure.Headers); ok && match.Score >= acceptScore {
		mapping.SetAbono(match.Column)
		totalConfidence += match.Score
		matchedFields++
	}

	if mapping.Date != "" {
		if dateIndex := structure.HeaderIndex(mapping.Date); dateIndex != -1 {
			samples := sampleColumn(structure.Rows, dateIndex, dateSampleLimit)
			if len(samples) > 0 {
				mapping.DateFormat = dateformat.Detect(samples)
			}
		}
	}

	averageConfidence := 0.0
	if matchedFields > 0 {
		averageConfidence = totalConfidence / float64(matchedFields)
	}

	isAutoDetected := mapping.Date != "" &&
		mapping.Description != "" &&
		m.registry.MatchColumn("date", mapping.Date) >= autoDetectScore &&
		m.registry.MatchColumn("description", mapping.Description) >= autoDetectScore &&
		averageConfidence >= autoDetectScore

	m.logger.Debug("Column mapping inferred",
		logging.F("date", mapping.Date),
		logging.F("description", mapping.Description),
		logging.F("amount", mapping.Amount),
		logging.F("cargo", mapping.Cargo),
		logging.F("abono", mapping.Abono),
		logging.F("date_format", string(mapping.DateFormat)),
		logging.F("confidence", averageConfidence),
		logging.F("auto_detected", isAutoDetected))

	return models.MappingResult{
		Mapping:        mapping,
		IsAutoDetected: isAutoDetected,
		Confidence:     averageConfidence,
	}
}

// sampleColumn collects up to limit non-blank values from a column.
func sampleColumn(rows [][]models.Cell, index, limit int) []string {
	var samples []string
	for _, row := range rows {
		if len(samples) >= limit {
			break
		}
		if index >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[index].String())
		if value != "" {
			samples = append(samples, value)
		}
	}
	return samples
}

// MapToDrafts converts table rows into transaction drafts per the
// mapping. Rows with no description are skipped; blank dates carry the
// last seen date forward (statements often omit repeated dates). Amount
// resolution: with both cargo and abono mapped, whichever parses
// positive wins; with one of them mapped its positive value is required;
// with only a single amount column, the sign selects the type and the
// absolute value is stored. Rows that resolve no positive amount are
// dropped.
func (m *Mapper) MapToDrafts(structure models.FileStructure, mapping models.ColumnMapping) []models.TransactionDraft {
	dateIndex := structure.HeaderIndex(mapping.Date)
	descriptionIndex := structure.HeaderIndex(mapping.Description)
	if dateIndex == -1 || descriptionIndex == -1 {
		return nil
	}

	amountIndex := -1
	if mapping.Amount != "" {
		amountIndex = structure.HeaderIndex(mapping.Amount)
	}
	cargoIndex := -1
	if mapping.Cargo != "" {
		cargoIndex = structure.HeaderIndex(mapping.Cargo)
	}
	abonoIndex := -1
	if mapping.Abono != "" {
		abonoIndex = structure.HeaderIndex(mapping.Abono)
	}

	format := mapping.DateFormat
	if format == "" {
		format = models.DateFormatAuto
	}

	var drafts []models.TransactionDraft
	lastValidDate := ""

	for _, row := range structure.Rows {
		date := cellString(row, dateIndex)
		description := cellString(row, descriptionIndex)

		if description == "" {
			continue
		}

		if date == "" && lastValidDate != "" {
			date = lastValidDate
		}
		if date == "" {
			continue
		}
		lastValidDate = date

		draft, ok := resolveAmount(row, amountIndex, cargoIndex, abonoIndex)
		if !ok {
			continue
		}

		draft.Date = m.normalizeDate(row, dateIndex, date, format)
		draft.Description = strings.ToUpper(textutil.CollapseWhitespace(description))
		drafts = append(drafts, draft)
	}

	m.logger.Debug("Rows materialized into drafts",
		logging.F("rows", len(structure.Rows)),
		logging.F("drafts", len(drafts)))

	return drafts
}

// normalizeDate canonicalizes a date cell, converting Excel serial
// numbers before the textual normalization.
func (m *Mapper) normalizeDate(row []models.Cell, dateIndex int, date string, format models.DateFormat) string {
	if dateIndex < len(row) {
		if cell := row[dateIndex]; cell.IsNumeric && dateformat.LooksLikeExcelSerial(cell.Number) {
			return dateformat.FromExcelSerial(cell.Number)
		}
	}
	return dateformat.Normalize(date, format)
}

func resolveAmount(row []models.Cell, amountIndex, cargoIndex, abonoIndex int) (models.TransactionDraft, bool) {
	var draft models.TransactionDraft

	switch {
	case cargoIndex != -1 && abonoIndex != -1:
		cargoNum := amount.Parse(cellString(row, cargoIndex))
		abonoNum := amount.Parse(cellString(row, abonoIndex))
		switch {
		case cargoNum.IsPositive():
			draft.Amount = cargoNum
			draft.Type = models.TypeCargo
		case abonoNum.IsPositive():
			draft.Amount = abonoNum
			draft.Type = models.TypeAbono
		default:
			return draft, false
		}
	case cargoIndex != -1:
		cargoNum := amount.Parse(cellString(row, cargoIndex))
		if cargoNum.IsZero() {
			return draft, false
		}
		draft.Amount = cargoNum.Abs()
		draft.Type = models.TypeCargo
	case abonoIndex != -1:
		abonoNum := amount.Parse(cellString(row, abonoIndex))
		if abonoNum.IsZero() {
			return draft, false
		}
		draft.Amount = abonoNum.Abs()
		draft.Type = models.TypeAbono
	case amountIndex != -1:
		value := amount.Parse(cellString(row, amountIndex))
		if value.IsZero() {
			return draft, false
		}
		if value.IsNegative() {
			draft.Type = models.TypeCargo
		} else {
			draft.Type = models.TypeAbono
		}
		draft.Amount = value.Abs()
	default:
		return draft, false
	}

	return draft, true
}

func cellString(row []models.Cell, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index].String())
}
