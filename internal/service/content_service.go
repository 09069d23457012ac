package service

import (
	"context"
	"log/slog"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/queue"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/transfer"
	"github.com/maheshrc27/contentops/internal/webhook"
	"github.com/maheshrc27/contentops/internal/workflow"
)

type ContentService interface {
	List(ctx context.Context, filter models.ItemFilter) ([]*models.ContentItem, error)
	Get(ctx context.Context, id string) (*models.ContentItem, error)
	Create(ctx context.Context, actor models.Actor, in *transfer.ContentInput) (*models.ContentItem, error)
	Update(ctx context.Context, actor models.Actor, id string, in *transfer.ContentInput) (*models.ContentItem, error)
	Remove(ctx context.Context, actor models.Actor, id string) error
	Form(ctx context.Context, id string) (*workflow.Form, error)
	ApproveIdea(ctx context.Context, actor models.Actor, id string) (*models.ContentItem, error)
	ApproveContent(ctx context.Context, actor models.Actor, id string) (*models.ContentItem, error)
	SchedulePost(ctx context.Context, actor models.Actor, id string) error
	RemovePost(ctx context.Context, actor models.Actor, id string) error
	RefreshEngagement(ctx context.Context, actor models.Actor, id string) error
	EditAI(ctx context.Context, actor models.Actor, id, require string) error
}

type contentService struct {
	c  repository.ContentRepository
	p  repository.ProjectRepository
	d  queue.Dispatcher
	ar activityRecorder
}

func NewContentService(
	c repository.ContentRepository,
	p repository.ProjectRepository,
	al repository.ActivityLogRepository,
	d queue.Dispatcher) ContentService {
	return &contentService{
		c:  c,
		p:  p,
		d:  d,
		ar: activityRecorder{al: al},
	}
}

func (s *contentService) List(ctx context.Context, filter models.ItemFilter) ([]*models.ContentItem, error) {
	if filter.Status != "" && !workflow.Valid(filter.Status) {
		return nil, invalid("unknown status %q", filter.Status)
	}
	return s.c.List(ctx, filter)
}

func (s *contentService) Get(ctx context.Context, id string) (*models.ContentItem, error) {
	item, err := s.c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFound("content")
	}
	return item, nil
}

func (s *contentService) Create(ctx context.Context, actor models.Actor, in *transfer.ContentInput) (*models.ContentItem, error) {
	item := &models.ContentItem{}
	item.Status = workflow.StatusIdea
	applyContentInput(in, item)

	if err := checkItem(item.Status, workflow.MissingContent(item)); err != nil {
		return nil, err
	}
	if err := s.checkProject(ctx, item.ProjectID); err != nil {
		return nil, err
	}

	id, err := s.c.Create(ctx, nil, item)
	if err != nil {
		return nil, err
	}
	s.ar.record(ctx, actor, models.ActionCreate, models.ItemTypeContent, id, item.Status)

	return s.Get(ctx, id)
}

func (s *contentService) Update(ctx context.Context, actor models.Actor, id string, in *transfer.ContentInput) (*models.ContentItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	projectID := item.ProjectID
	applyContentInput(in, item)

	if err := checkItem(item.Status, workflow.MissingContent(item)); err != nil {
		return nil, err
	}
	if item.ProjectID == "" || item.ProjectID != projectID {
		if err := s.checkProject(ctx, item.ProjectID); err != nil {
			return nil, err
		}
	}

	if err := s.c.Update(ctx, item); err != nil {
		return nil, storeErr(err, "content")
	}
	s.ar.record(ctx, actor, models.ActionUpdate, models.ItemTypeContent, id, item.Status)

	return s.Get(ctx, id)
}

func (s *contentService) Remove(ctx context.Context, actor models.Actor, id string) error {
	if err := s.c.Remove(ctx, id); err != nil {
		return storeErr(err, "content")
	}
	s.ar.record(ctx, actor, models.ActionDelete, models.ItemTypeContent, id, "")
	return nil
}

func (s *contentService) Form(ctx context.Context, id string) (*workflow.Form, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	form := workflow.ContentForm(item)
	return &form, nil
}

func (s *contentService) ApproveIdea(ctx context.Context, actor models.Actor, id string) (*models.ContentItem, error) {
	return s.approve(ctx, actor, id, workflow.StatusIdeaApproved, models.ActionApproveIdea)
}

func (s *contentService) ApproveContent(ctx context.Context, actor models.Actor, id string) (*models.ContentItem, error) {
	return s.approve(ctx, actor, id, workflow.StatusContentApproved, models.ActionApproveContent)
}

func (s *contentService) approve(ctx context.Context, actor models.Actor, id, status, action string) (*models.ContentItem, error) {
	if err := s.c.Approve(ctx, id, status, actor.Email); err != nil {
		return nil, storeErr(err, "content")
	}
	s.ar.record(ctx, actor, action, models.ItemTypeContent, id, status)
	return s.Get(ctx, id)
}

func (s *contentService) SchedulePost(ctx context.Context, actor models.Actor, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if item.PostingTime == nil || item.Platform == "" {
		return invalid("posting time and platform are required to schedule")
	}

	payload := webhook.SchedulePost{PostingTime: postingTimeString(&item.ItemBase), Platform: item.Platform}
	if err := s.d.Dispatch(ctx, webhook.PathSchedulePost, payload, queue.Origin{Actor: actor}); err != nil {
		return err
	}
	s.ar.record(ctx, actor, models.ActionSchedulePost, models.ItemTypeContent, id, payload.PostingTime)
	return nil
}

func (s *contentService) RemovePost(ctx context.Context, actor models.Actor, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if item.PostURL == "" {
		return invalid("content has no post url")
	}

	payload := webhook.RemoveContentPost{
		PostURL:  item.PostURL,
		Platform: item.Platform,
		Project:  s.projectName(ctx, item.ProjectID),
	}
	origin := queue.Origin{
		Actor:      actor,
		Action:     models.ActionRemovePost,
		EntityType: models.ItemTypeContent,
		EntityID:   id,
	}
	return s.d.Dispatch(ctx, webhook.PathRemovePost, payload, origin)
}

func (s *contentService) RefreshEngagement(ctx context.Context, actor models.Actor, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	payload := webhook.Engagement{PostType: models.ItemTypeContent, ItemID: id}
	if err := s.d.Dispatch(ctx, webhook.PathEngagementTracker, payload, queue.Origin{Actor: actor}); err != nil {
		return err
	}
	s.ar.record(ctx, actor, models.ActionRefreshEngagement, models.ItemTypeContent, id, "")
	return nil
}

func (s *contentService) EditAI(ctx context.Context, actor models.Actor, id, require string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	payload := webhook.EditContentText{
		Type:        models.ItemTypeContent,
		Topic:       item.Topic,
		Content:     item.Content,
		ContentType: item.ContentType,
		ProjectID:   item.ProjectID,
		ID:          item.ID,
		Require:     require,
		Platform:    item.Platform,
	}
	if err := s.d.Dispatch(ctx, webhook.PathEditContentText, payload, queue.Origin{Actor: actor}); err != nil {
		return err
	}
	s.ar.record(ctx, actor, models.ActionEditAI, models.ItemTypeContent, id, require)
	return nil
}

func (s *contentService) checkProject(ctx context.Context, projectID string) error {
	if projectID == "" {
		return invalid("content needs a project")
	}
	project, err := s.p.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return invalid("project %s does not exist", projectID)
	}
	return nil
}

// projectName falls back to the id when the project cannot be read.
func (s *contentService) projectName(ctx context.Context, projectID string) string {
	project, err := s.p.GetByID(ctx, projectID)
	if err != nil || project == nil {
		if err != nil {
			slog.Info(err.Error())
		}
		return projectID
	}
	return project.Name
}

func applyContentInput(in *transfer.ContentInput, item *models.ContentItem) {
	if in == nil {
		return
	}
	applyItemInput(&in.ItemInput, &item.ItemBase)
	setString(&item.Platform, in.Platform)
}
