package service

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostReport(t *testing.T) {
	registry := &fakeAIModels{rows: []*models.AIModel{
		{ID: "m1", Name: "veo", MediaType: models.MediaTypeVideo, GeneratePrice: 0.5, EditPrice: 0.25},
	}}
	logs := &fakeCostLogs{rows: []*models.CostLog{
		{MediaType: models.MediaTypeVideo, Operation: models.OperationGenerate, ModelID: "m1", Quantity: 8},
		{MediaType: models.MediaTypeVideo, Operation: models.OperationEdit, ModelID: "m1", Quantity: 4},
		{MediaType: models.MediaTypeImage, Operation: models.OperationGenerate, ModelID: "unknown", Quantity: 3},
	}}
	svc := NewCostService(logs, registry, 0)

	report, err := svc.Report(context.Background(), models.CostFilter{})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, report.GenerateUSD, 1e-9)
	assert.InDelta(t, 1.0, report.EditUSD, 1e-9)
	assert.Equal(t, report.GenerateUSD+report.EditUSD, report.TotalUSD)
	assert.InDelta(t, 125000, report.TotalVND, 1e-6)
	assert.Equal(t, 1, report.Unpriced)
}

func TestCostReportRejectsInvertedRange(t *testing.T) {
	svc := NewCostService(&fakeCostLogs{}, &fakeAIModels{}, 24000)
	now := time.Now()
	_, err := svc.Report(context.Background(), models.CostFilter{From: now, To: now.Add(-time.Hour)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCostRecordFillsModelName(t *testing.T) {
	registry := &fakeAIModels{rows: []*models.AIModel{{ID: "m1", Name: "imagen"}}}
	logs := &fakeCostLogs{}
	svc := NewCostService(logs, registry, 25000)

	entry, err := svc.Record(context.Background(), &transfer.CostLogInput{
		MediaType: models.MediaTypeImage, Operation: models.OperationGenerate, ModelID: "m1", Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "imagen", entry.ModelName)
	assert.NotEmpty(t, entry.ID)

	_, err = svc.Record(context.Background(), &transfer.CostLogInput{
		MediaType: models.MediaTypeImage, Operation: models.OperationGenerate, Quantity: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
