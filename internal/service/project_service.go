package service

import (
	"context"
	"strings"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/transfer"
)

const entityProject = "project"

type ProjectService interface {
	List(ctx context.Context) ([]*models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, actor models.Actor, in *transfer.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, actor models.Actor, id string, in *transfer.ProjectInput) (*models.Project, error)
	Remove(ctx context.Context, actor models.Actor, id string) error
}

type projectService struct {
	p  repository.ProjectRepository
	ar activityRecorder
}

func NewProjectService(p repository.ProjectRepository, al repository.ActivityLogRepository) ProjectService {
	return &projectService{
		p:  p,
		ar: activityRecorder{al: al},
	}
}

func (s *projectService) List(ctx context.Context) ([]*models.Project, error) {
	return s.p.List(ctx)
}

func (s *projectService) Get(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.p.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, notFound(entityProject)
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, actor models.Actor, in *transfer.ProjectInput) (*models.Project, error) {
	project := &models.Project{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Color:       in.Color,
	}
	if project.Name == "" {
		return nil, invalid("project name is required")
	}

	id, err := s.p.Create(ctx, nil, project)
	if err != nil {
		return nil, err
	}
	s.ar.record(ctx, actor, models.ActionCreate, entityProject, id, project.Name)

	return s.Get(ctx, id)
}

func (s *projectService) Update(ctx context.Context, actor models.Actor, id string, in *transfer.ProjectInput) (*models.Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Name = strings.TrimSpace(in.Name)
	project.Description = in.Description
	project.Color = in.Color
	if project.Name == "" {
		return nil, invalid("project name is required")
	}

	if err := s.p.Update(ctx, project); err != nil {
		return nil, storeErr(err, entityProject)
	}
	s.ar.record(ctx, actor, models.ActionUpdate, entityProject, id, project.Name)

	return s.Get(ctx, id)
}

func (s *projectService) Remove(ctx context.Context, actor models.Actor, id string) error {
	if err := s.p.Remove(ctx, id); err != nil {
		return storeErr(err, entityProject)
	}
	s.ar.record(ctx, actor, models.ActionDelete, entityProject, id, "")
	return nil
}
