package service

import (
	"context"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/transfer"
)

const (
	entityAIModel     = "ai_model"
	entityModelConfig = "model_config"
)

// AIModelService manages the priced model registry and the per-task model
// selection.
type AIModelService interface {
	ListModels(ctx context.Context, mediaType string) ([]*models.AIModel, error)
	GetModel(ctx context.Context, id string) (*models.AIModel, error)
	CreateModel(ctx context.Context, actor models.Actor, in *transfer.AIModelInput) (*models.AIModel, error)
	UpdateModel(ctx context.Context, actor models.Actor, id string, in *transfer.AIModelInput) (*models.AIModel, error)
	RemoveModel(ctx context.Context, actor models.Actor, id string) error

	ListConfigs(ctx context.Context, projectID string) ([]*models.ModelConfig, error)
	GetConfig(ctx context.Context, id string) (*models.ModelConfig, error)
	CreateConfig(ctx context.Context, actor models.Actor, in *transfer.ModelConfigInput) (*models.ModelConfig, error)
	UpdateConfig(ctx context.Context, actor models.Actor, id string, in *transfer.ModelConfigInput) (*models.ModelConfig, error)
	RemoveConfig(ctx context.Context, actor models.Actor, id string) error
}

type aiModelService struct {
	m  repository.AIModelRepository
	mc repository.ModelConfigRepository
	ar activityRecorder
}

func NewAIModelService(
	m repository.AIModelRepository,
	mc repository.ModelConfigRepository,
	al repository.ActivityLogRepository) AIModelService {
	return &aiModelService{
		m:  m,
		mc: mc,
		ar: activityRecorder{al: al},
	}
}

func (s *aiModelService) ListModels(ctx context.Context, mediaType string) ([]*models.AIModel, error) {
	return s.m.List(ctx, mediaType)
}

func (s *aiModelService) GetModel(ctx context.Context, id string) (*models.AIModel, error) {
	m, err := s.m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, notFound(entityAIModel)
	}
	return m, nil
}

func (s *aiModelService) CreateModel(ctx context.Context, actor models.Actor, in *transfer.AIModelInput) (*models.AIModel, error) {
	m := &models.AIModel{IsActive: true}
	applyAIModelInput(in, m)

	id, err := s.m.Create(ctx, nil, m)
	if err != nil {
		return nil, err
	}
	s.ar.record(ctx, actor, models.ActionCreate, entityAIModel, id, m.Name)

	return s.GetModel(ctx, id)
}

func (s *aiModelService) UpdateModel(ctx context.Context, actor models.Actor, id string, in *transfer.AIModelInput) (*models.AIModel, error) {
	m, err := s.GetModel(ctx, id)
	if err != nil {
		return nil, err
	}
	applyAIModelInput(in, m)

	if err := s.m.Update(ctx, m); err != nil {
		return nil, storeErr(err, entityAIModel)
	}
	s.ar.record(ctx, actor, models.ActionUpdate, entityAIModel, id, m.Name)

	return s.GetModel(ctx, id)
}

func (s *aiModelService) RemoveModel(ctx context.Context, actor models.Actor, id string) error {
	if err := s.m.Remove(ctx, id); err != nil {
		return storeErr(err, entityAIModel)
	}
	s.ar.record(ctx, actor, models.ActionDelete, entityAIModel, id, "")
	return nil
}

func (s *aiModelService) ListConfigs(ctx context.Context, projectID string) ([]*models.ModelConfig, error) {
	return s.mc.List(ctx, projectID)
}

func (s *aiModelService) GetConfig(ctx context.Context, id string) (*models.ModelConfig, error) {
	c, err := s.mc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound(entityModelConfig)
	}
	return c, nil
}

func (s *aiModelService) CreateConfig(ctx context.Context, actor models.Actor, in *transfer.ModelConfigInput) (*models.ModelConfig, error) {
	c := &models.ModelConfig{}
	applyModelConfigInput(in, c)
	if err := s.checkModel(ctx, c.ModelID); err != nil {
		return nil, err
	}

	id, err := s.mc.Create(ctx, nil, c)
	if err != nil {
		return nil, err
	}
	s.ar.record(ctx, actor, models.ActionCreate, entityModelConfig, id, c.Task)

	return s.GetConfig(ctx, id)
}

func (s *aiModelService) UpdateConfig(ctx context.Context, actor models.Actor, id string, in *transfer.ModelConfigInput) (*models.ModelConfig, error) {
	c, err := s.GetConfig(ctx, id)
	if err != nil {
		return nil, err
	}
	applyModelConfigInput(in, c)
	if err := s.checkModel(ctx, c.ModelID); err != nil {
		return nil, err
	}

	if err := s.mc.Update(ctx, c); err != nil {
		return nil, storeErr(err, entityModelConfig)
	}
	s.ar.record(ctx, actor, models.ActionUpdate, entityModelConfig, id, c.Task)

	return s.GetConfig(ctx, id)
}

func (s *aiModelService) RemoveConfig(ctx context.Context, actor models.Actor, id string) error {
	if err := s.mc.Remove(ctx, id); err != nil {
		return storeErr(err, entityModelConfig)
	}
	s.ar.record(ctx, actor, models.ActionDelete, entityModelConfig, id, "")
	return nil
}

func (s *aiModelService) checkModel(ctx context.Context, modelID string) error {
	m, err := s.m.GetByID(ctx, modelID)
	if err != nil {
		return err
	}
	if m == nil {
		return invalid("model %s does not exist", modelID)
	}
	return nil
}

func applyAIModelInput(in *transfer.AIModelInput, m *models.AIModel) {
	m.Name = in.Name
	m.Provider = in.Provider
	m.MediaType = in.MediaType
	m.Unit = in.Unit
	m.GeneratePrice = in.GeneratePrice
	m.EditPrice = in.EditPrice
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}
}

func applyModelConfigInput(in *transfer.ModelConfigInput, c *models.ModelConfig) {
	c.ProjectID = in.ProjectID
	c.Task = in.Task
	c.ModelID = in.ModelID
	c.Params = in.Params
}
