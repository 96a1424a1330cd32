package fileparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/models"
)

// delimiterCandidates in priority order; comma is the fallback when no
// candidate is consistent across the sampled lines.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// delimiterSampleBytes caps how much of the file feeds delimiter
// detection.
const delimiterSampleBytes = 1024

// delimiterSampleLines caps how many lines of the sample are scored.
const delimiterSampleLines = 10

// CSVParser parses delimited text statements. The delimiter is inferred
// from the file content itself since banks export with commas,
// semicolons, tabs or pipes interchangeably.
type CSVParser struct {
	logger logging.Logger
}

// NewCSVParser creates a CSVParser. A nil logger falls back to a default
// adapter.
func NewCSVParser(logger logging.Logger) *CSVParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CSVParser{logger: logger}
}

// Parse reads the whole input, detects the delimiter and returns the
// tabular structure.
func (p *CSVParser) Parse(r io.Reader) (models.FileStructure, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.FileStructure{}, fmt.Errorf("reading input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return models.FileStructure{}, ErrEmptyFile
	}

	delimiter := DetectDelimiter(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return models.FileStructure{}, fmt.Errorf("reading csv records: %w", err)
	}

	structure, err := buildStructure(records)
	if err != nil {
		return structure, err
	}
	structure.DetectedDelimiter = delimiter

	p.logger.Debug("CSV file parsed",
		logging.F("delimiter", string(delimiter)),
		logging.F("headers", len(structure.Headers)),
		logging.F("rows", len(structure.Rows)))

	return structure, nil
}

// DetectDelimiter scores each candidate over the first lines of the
// file. A candidate is consistent when every sampled line stays within
// one occurrence of the candidate's average count; among consistent
// candidates the highest average wins. Comma is the default when
// nothing qualifies.
func DetectDelimiter(data []byte) rune {
	sample := data
	if len(sample) > delimiterSampleBytes {
		sample = sample[:delimiterSampleBytes]
	}

	var lines []string
	for _, line := range strings.Split(string(sample), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) >= delimiterSampleLines {
			break
		}
	}
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestAverage := 0.0
	for _, candidate := range delimiterCandidates {
		total := 0
		counts := make([]int, len(lines))
		for i, line := range lines {
			counts[i] = strings.Count(line, string(candidate))
			total += counts[i]
		}
		average := float64(total) / float64(len(lines))
		if average == 0 {
			continue
		}

		consistent := true
		for _, count := range counts {
			if diff := float64(count) - average; diff > 1 || diff < -1 {
				consistent = false
				break
			}
		}
		if consistent && average > bestAverage {
			best = candidate
			bestAverage = average
		}
	}
	return best
}
