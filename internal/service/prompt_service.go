package service

import (
	"context"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/transfer"
)

const entityPrompt = "prompt"

type PromptService interface {
	List(ctx context.Context, projectID, promptType string) ([]*models.Prompt, error)
	Get(ctx context.Context, id string) (*models.Prompt, error)
	Create(ctx context.Context, actor models.Actor, in *transfer.PromptInput) (*models.Prompt, error)
	Update(ctx context.Context, actor models.Actor, id string, in *transfer.PromptInput) (*models.Prompt, error)
	Remove(ctx context.Context, actor models.Actor, id string) error
}

type promptService struct {
	p  repository.PromptRepository
	ar activityRecorder
}

func NewPromptService(p repository.PromptRepository, al repository.ActivityLogRepository) PromptService {
	return &promptService{
		p:  p,
		ar: activityRecorder{al: al},
	}
}

func (s *promptService) List(ctx context.Context, projectID, promptType string) ([]*models.Prompt, error) {
	return s.p.List(ctx, projectID, promptType)
}

func (s *promptService) Get(ctx context.Context, id string) (*models.Prompt, error) {
	prompt, err := s.p.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prompt == nil {
		return nil, notFound(entityPrompt)
	}
	return prompt, nil
}

func (s *promptService) Create(ctx context.Context, actor models.Actor, in *transfer.PromptInput) (*models.Prompt, error) {
	prompt := &models.Prompt{IsActive: true}
	applyPromptInput(in, prompt)

	id, err := s.p.Create(ctx, nil, prompt)
	if err != nil {
		return nil, err
	}
	s.ar.record(ctx, actor, models.ActionCreate, entityPrompt, id, prompt.Name)

	return s.Get(ctx, id)
}

func (s *promptService) Update(ctx context.Context, actor models.Actor, id string, in *transfer.PromptInput) (*models.Prompt, error) {
	prompt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyPromptInput(in, prompt)

	if err := s.p.Update(ctx, prompt); err != nil {
		return nil, storeErr(err, entityPrompt)
	}
	s.ar.record(ctx, actor, models.ActionUpdate, entityPrompt, id, prompt.Name)

	return s.Get(ctx, id)
}

func (s *promptService) Remove(ctx context.Context, actor models.Actor, id string) error {
	if err := s.p.Remove(ctx, id); err != nil {
		return storeErr(err, entityPrompt)
	}
	s.ar.record(ctx, actor, models.ActionDelete, entityPrompt, id, "")
	return nil
}

func applyPromptInput(in *transfer.PromptInput, prompt *models.Prompt) {
	prompt.ProjectID = in.ProjectID
	prompt.Name = in.Name
	prompt.Type = in.Type
	prompt.Platform = in.Platform
	prompt.Content = in.Content
	if in.IsActive != nil {
		prompt.IsActive = *in.IsActive
	}
}
