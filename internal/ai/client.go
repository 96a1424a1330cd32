// Package ai provides the AI fallback for transactions the rule-based
// classifier could not resolve with confidence. Items are sent in one
// batched request per call; callers must treat every error as
// non-fatal and keep the rule-based categories.
package ai

import (
	"context"

	"dmunoz/cartola-csv/internal/models"
)

// BatchItem is one transaction to categorize. Index ties the result
// back to the caller's collection and is opaque to the provider.
type BatchItem struct {
	Index       int
	Description string
	Type        models.TransactionType
}

// BatchResult is the category assigned to one batch item.
type BatchResult struct {
	Index    int
	Category string
}

// Client categorizes transaction batches through an external AI
// provider. Implementations must return exactly one result per input
// item, falling back to the default category for items the provider
// skipped or answered out of range.
type Client interface {
	// Name identifies the provider for logging purposes.
	Name() string

	// CategorizeBatch sends all items in a single request and returns
	// one validated result per item. An error means the whole batch
	// failed.
	CategorizeBatch(ctx context.Context, items []BatchItem) ([]BatchResult, error)
}
