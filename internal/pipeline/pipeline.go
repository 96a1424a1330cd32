// Package pipeline wires the ingestion stages together: file parsing,
// column mapping, classification, the AI fallback and the session.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"dmunoz/cartola-csv/internal/ai"
	"dmunoz/cartola-csv/internal/classifier"
	"dmunoz/cartola-csv/internal/fileparser"
	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/mapper"
	"dmunoz/cartola-csv/internal/models"
	"dmunoz/cartola-csv/internal/session"
)

// ErrInvalidMapping means the column mapping misses an essential field
// and rows cannot be materialized.
var ErrInvalidMapping = errors.New("column mapping is incomplete")

// ErrNoTransactions means the file parsed fine but no row survived the
// materialization rules.
var ErrNoTransactions = errors.New("no transactions produced")

// Pipeline runs statement files end to end. The AI client may be nil,
// which disables the fallback and keeps rule-based categories.
type Pipeline struct {
	mapper     *mapper.Mapper
	classifier *classifier.Classifier
	aiClient   ai.Client
	session    *session.Session
	logger     logging.Logger
}

// New assembles a pipeline from its stages.
func New(m *mapper.Mapper, c *classifier.Classifier, aiClient ai.Client, s *session.Session, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Pipeline{
		mapper:     m,
		classifier: c,
		aiClient:   aiClient,
		session:    s,
		logger:     logger,
	}
}

// Session exposes the working set for edit and export commands.
func (p *Pipeline) Session() *session.Session {
	return p.session
}

// IngestResult is the outcome of structure inference on one file. When
// the mapping is not auto-detected the caller is expected to confirm or
// correct it before materializing.
type IngestResult struct {
	Structure models.FileStructure
	Mapping   models.MappingResult
}

// Ingest parses one file and infers its column mapping.
func (p *Pipeline) Ingest(filename string, r io.Reader) (IngestResult, error) {
	parser, err := fileparser.ForFile(filename, p.logger)
	if err != nil {
		return IngestResult{}, err
	}

	structure, err := parser.Parse(r)
	if err != nil {
		return IngestResult{}, fmt.Errorf("parsing %s: %w", filename, err)
	}

	result := IngestResult{
		Structure: structure,
		Mapping:   p.mapper.InferMapping(structure),
	}

	p.logger.Info("File ingested",
		logging.F("file", filename),
		logging.F("rows", len(structure.Rows)),
		logging.F("auto_detected", result.Mapping.IsAutoDetected))

	return result, nil
}

// Materialize turns a parsed structure into classified transactions and
// adds them to the session. Low-confidence rows go to the AI fallback
// in one batch; any AI failure is logged and the rule-based categories
// stand.
func (p *Pipeline) Materialize(ctx context.Context, structure models.FileStructure, mapping models.ColumnMapping) ([]models.Transaction, error) {
	if !mapping.IsValid() {
		return nil, ErrInvalidMapping
	}

	drafts := p.mapper.MapToDrafts(structure, mapping)
	if len(drafts) == 0 {
		return nil, ErrNoTransactions
	}

	transactions := make([]models.Transaction, len(drafts))
	var needsAI []ai.BatchItem
	for i, draft := range drafts {
		tx := models.Transaction{
			Date:        draft.Date,
			Description: draft.Description,
			Amount:      draft.Amount,
			Type:        draft.Type,
		}
		p.classifier.Classify(&tx)
		if tx.Confidence == models.ConfidenceLow && p.aiClient != nil {
			needsAI = append(needsAI, ai.BatchItem{
				Index:       i,
				Description: tx.Description,
				Type:        tx.Type,
			})
		}
		transactions[i] = tx
	}

	p.applyAIFallback(ctx, transactions, needsAI)

	return p.session.Ingest(transactions), nil
}

// Run ingests and materializes in one step using the inferred mapping.
// A mapping below the auto-detection bar still runs, with a warning; a
// caller wanting confirmation uses Ingest and Materialize separately.
func (p *Pipeline) Run(ctx context.Context, filename string, r io.Reader) ([]models.Transaction, error) {
	result, err := p.Ingest(filename, r)
	if err != nil {
		return nil, err
	}
	if !result.Mapping.IsAutoDetected {
		p.logger.Warn("Column mapping below auto-detection confidence, using best guess",
			logging.F("file", filename),
			logging.F("confidence", result.Mapping.Confidence))
	}
	return p.Materialize(ctx, result.Structure, result.Mapping.Mapping)
}

func (p *Pipeline) applyAIFallback(ctx context.Context, transactions []models.Transaction, items []ai.BatchItem) {
	if len(items) == 0 || p.aiClient == nil {
		return
	}

	results, err := p.aiClient.CategorizeBatch(ctx, items)
	if err != nil {
		p.logger.WithError(err).Warn("AI categorization failed, keeping rule-based categories",
			logging.F("provider", p.aiClient.Name()),
			logging.F("items", len(items)))
		return
	}

	applied := 0
	for _, result := range results {
		if result.Index < 0 || result.Index >= len(transactions) {
			continue
		}
		tx := &transactions[result.Index]
		tx.SuggestedCategory = result.Category
		tx.SelectedCategory = result.Category
		tx.Confidence = models.ConfidenceAI
		applied++
	}

	p.logger.Info("AI categorization applied",
		logging.F("provider", p.aiClient.Name()),
		logging.F("items", len(items)),
		logging.F("applied", applied))
}
