package service

import (
	"context"

	"github.com/maheshrc27/contentops/internal/cost"
	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/transfer"
)

type CostService interface {
	Report(ctx context.Context, filter models.CostFilter) (*cost.Report, error)
	Record(ctx context.Context, in *transfer.CostLogInput) (*models.CostLog, error)
}

type costService struct {
	cl   repository.CostLogRepository
	m    repository.AIModelRepository
	rate float64
}

func NewCostService(cl repository.CostLogRepository, m repository.AIModelRepository, rate float64) CostService {
	if rate <= 0 {
		rate = cost.DefaultUsdToVnd
	}
	return &costService{
		cl:   cl,
		m:    m,
		rate: rate,
	}
}

func (s *costService) Report(ctx context.Context, filter models.CostFilter) (*cost.Report, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && !filter.From.Before(filter.To) {
		return nil, invalid("from must be before to")
	}

	logs, err := s.cl.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	registry, err := s.m.List(ctx, "")
	if err != nil {
		return nil, err
	}

	report := cost.Estimate(logs, registry, s.rate)
	return &report, nil
}

// Record stores one AI call. The model name is filled from the registry when
// only the id is given.
func (s *costService) Record(ctx context.Context, in *transfer.CostLogInput) (*models.CostLog, error) {
	if in.ModelID == "" && in.ModelName == "" {
		return nil, invalid("modelId or modelName is required")
	}

	entry := &models.CostLog{
		ProjectID: in.ProjectID,
		ItemID:    in.ItemID,
		ItemType:  in.ItemType,
		MediaType: in.MediaType,
		Operation: in.Operation,
		ModelID:   in.ModelID,
		ModelName: in.ModelName,
		Quantity:  in.Quantity,
	}
	if entry.ModelName == "" {
		m, err := s.m.GetByID(ctx, entry.ModelID)
		if err != nil {
			return nil, err
		}
		if m != nil {
			entry.ModelName = m.Name
		}
	}

	id, err := s.cl.Create(ctx, nil, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return entry, nil
}
