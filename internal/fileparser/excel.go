package fileparser

import (
	"fmt"
	"io"

	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/models"

	"github.com/xuri/excelize/v2"
)

// ExcelParser parses spreadsheet statements. Only the first sheet is
// read; cell values are taken raw so date cells surface as Excel serial
// numbers and formatted figures keep their stored form.
type ExcelParser struct {
	logger logging.Logger
}

// NewExcelParser creates an ExcelParser. A nil logger falls back to a
// default adapter.
func NewExcelParser(logger logging.Logger) *ExcelParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ExcelParser{logger: logger}
}

// Parse reads the first sheet of the workbook into a tabular structure.
func (p *ExcelParser) Parse(r io.Reader) (models.FileStructure, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return models.FileStructure{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			p.logger.WithError(closeErr).Warn("Failed to close workbook")
		}
	}()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return models.FileStructure{}, ErrEmptyFile
	}
	sheet := sheets[0]

	records, err := file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.FileStructure{}, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return models.FileStructure{}, ErrEmptyFile
	}

	structure, err := buildStructure(records)
	if err != nil {
		return structure, err
	}

	p.logger.Debug("Excel file parsed",
		logging.F("sheet", sheet),
		logging.F("headers", len(structure.Headers)),
		logging.F("rows", len(structure.Rows)))

	return structure, nil
}
