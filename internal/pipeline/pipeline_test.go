package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dmunoz/cartola-csv/internal/ai"
	"dmunoz/cartola-csv/internal/classifier"
	"dmunoz/cartola-csv/internal/keywords"
	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/mapper"
	"dmunoz/cartola-csv/internal/models"
	"dmunoz/cartola-csv/internal/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "Fecha,Descripcion,Cargo,Abono\n" +
	"01/03/2024,NETFLIX,5990,\n" +
	",SUELDO MARZO,,1500000\n" +
	"15/03/24,UBER TRIP,3200,\n"

func newTestPipeline(aiClient ai.Client) *Pipeline {
	logger := logging.NewMockLogger()
	return New(
		mapper.New(keywords.NewRegistry(), logger),
		classifier.New(logger),
		aiClient,
		session.New(),
		logger,
	)
}

func TestRun_EndToEnd(t *testing.T) {
	p := newTestPipeline(nil)

	transactions, err := p.Run(context.Background(), "cartola.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	// Sorted by date ascending, all dates canonical.
	assert.Equal(t, "01/03/2024", transactions[0].Date)
	assert.Equal(t, "01/03/2024", transactions[1].Date)
	assert.Equal(t, "15/03/2024", transactions[2].Date)

	netflix := transactions[0]
	assert.Equal(t, "NETFLIX", netflix.Description)
	assert.Equal(t, models.TypeCargo, netflix.Type)
	assert.True(t, decimal.NewFromInt(5990).Equal(netflix.Amount))
	assert.Equal(t, "Streaming", netflix.SuggestedCategory)
	assert.Equal(t, models.ConfidenceHigh, netflix.Confidence)
	assert.True(t, netflix.IsRecurring)

	// The blank date carried forward from the row above.
	sueldo := transactions[1]
	assert.Equal(t, "SUELDO MARZO", sueldo.Description)
	assert.Equal(t, models.TypeAbono, sueldo.Type)
	assert.Equal(t, "Sueldo", sueldo.SuggestedCategory)
	assert.Equal(t, models.ConfidenceHigh, sueldo.Confidence)

	uber := transactions[2]
	assert.Equal(t, "Transporte", uber.SuggestedCategory)

	assert.Equal(t, 3, p.Session().Count())
}

func TestMaterialize_AIFallbackForLowConfidence(t *testing.T) {
	mock := &ai.MockClient{
		Results: []ai.BatchResult{{Index: 1, Category: "Inversiones"}},
	}
	p := newTestPipeline(mock)

	data := "Fecha,Descripcion,Cargo\n" +
		"01/03/2024,NETFLIX,5990\n" +
		"02/03/2024,BINANCE.COM,100000\n"

	transactions, err := p.Run(context.Background(), "cartola.csv", strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	// Only the low-confidence row went to the AI, in a single batch.
	require.Equal(t, 1, mock.CallCount())
	require.Len(t, mock.Calls[0], 1)
	assert.Equal(t, "BINANCE.COM", mock.Calls[0][0].Description)

	assert.Equal(t, models.ConfidenceHigh, transactions[0].Confidence)
	assert.Equal(t, "Inversiones", transactions[1].SuggestedCategory)
	assert.Equal(t, "Inversiones", transactions[1].SelectedCategory)
	assert.Equal(t, models.ConfidenceAI, transactions[1].Confidence)
}

func TestMaterialize_AIFailureKeepsRuleCategories(t *testing.T) {
	mock := &ai.MockClient{Err: errors.New("rate limited")}
	p := newTestPipeline(mock)

	data := "Fecha,Descripcion,Cargo\n01/03/2024,ALGO DESCONOCIDO,100\n"

	transactions, err := p.Run(context.Background(), "cartola.csv", strings.NewReader(data))
	require.NoError(t, err, "AI failure must not fail the pipeline")
	require.Len(t, transactions, 1)
	assert.Equal(t, models.CategoryOtros, transactions[0].SuggestedCategory)
	assert.Equal(t, models.ConfidenceLow, transactions[0].Confidence)
}

func TestMaterialize_NoAIClientSkipsFallback(t *testing.T) {
	p := newTestPipeline(nil)

	data := "Fecha,Descripcion,Cargo\n01/03/2024,ALGO DESCONOCIDO,100\n"
	transactions, err := p.Run(context.Background(), "cartola.csv", strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, models.ConfidenceLow, transactions[0].Confidence)
}

func TestMaterialize_InvalidMapping(t *testing.T) {
	p := newTestPipeline(nil)

	result, err := p.Ingest("cartola.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	broken := result.Mapping.Mapping
	broken.Description = ""
	_, err = p.Materialize(context.Background(), result.Structure, broken)
	assert.ErrorIs(t, err, ErrInvalidMapping)
}

func TestMaterialize_NoSurvivingRows(t *testing.T) {
	p := newTestPipeline(nil)

	// Every row fails a materialization rule: no description or no
	// positive amount.
	data := "Fecha,Descripcion,Cargo\n01/03/2024,,100\n02/03/2024,SIN MONTO,0\n"
	result, err := p.Ingest("cartola.csv", strings.NewReader(data))
	require.NoError(t, err)

	_, err = p.Materialize(context.Background(), result.Structure, result.Mapping.Mapping)
	assert.ErrorIs(t, err, ErrNoTransactions)
}

func TestIngest_UnsupportedFormat(t *testing.T) {
	p := newTestPipeline(nil)
	_, err := p.Ingest("cartola.pdf", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestRun_SecondFileAppendsToSession(t *testing.T) {
	p := newTestPipeline(nil)

	_, err := p.Run(context.Background(), "a.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)

	all, err2 := p.Run(context.Background(), "b.csv",
		strings.NewReader("Fecha,Descripcion,Cargo\n20/03/2024,JUMBO,45000\n"))
	require.NoError(t, err2)

	assert.Len(t, all, 4)
	assert.Equal(t, 4, p.Session().Count())
}
