// Package export writes the categorized working set out as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/models"

	"github.com/gocarina/gocsv"
)

// Writer exports transactions as CSV using the struct tags on
// models.Transaction for the header row.
type Writer struct {
	Delimiter rune
	logger    logging.Logger
}

// NewWriter creates a Writer. A zero delimiter means comma; a nil
// logger falls back to a default adapter.
func NewWriter(delimiter rune, logger logging.Logger) *Writer {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Writer{Delimiter: delimiter, logger: logger}
}

// Write marshals the transactions to w, header row first. An empty set
// still produces the header row.
func (e *Writer) Write(transactions []models.Transaction, w io.Writer) error {
	for i := range transactions {
		if transactions[i].SelectedCategory == "" {
			transactions[i].SelectedCategory = transactions[i].SuggestedCategory
		}
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.Delimiter

	if err := gocsv.MarshalCSV(&transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("writing csv data: %w", err)
	}

	e.logger.Debug("Transactions exported",
		logging.F("count", len(transactions)))
	return nil
}

// WriteFile exports the transactions to a file path.
func (e *Writer) WriteFile(transactions []models.Transaction, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			e.logger.WithError(closeErr).Warn("Failed to close export file")
		}
	}()

	if err := e.Write(transactions, file); err != nil {
		return err
	}

	e.logger.Info("Export file written",
		logging.F("file", path),
		logging.F("count", len(transactions)))
	return nil
}
