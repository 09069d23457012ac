package service

import (
	"context"
	"strings"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/queue"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/transfer"
	"github.com/maheshrc27/contentops/internal/webhook"
	"github.com/maheshrc27/contentops/internal/workflow"
)

type VideoService interface {
	List(ctx context.Context, filter models.ItemFilter) ([]*models.VideoItem, error)
	Get(ctx context.Context, id string) (*models.VideoItem, error)
	Create(ctx context.Context, actor models.Actor, in *transfer.VideoInput) (*models.VideoItem, error)
	Update(ctx context.Context, actor models.Actor, id string, in *transfer.VideoInput) (*models.VideoItem, error)
	Remove(ctx context.Context, actor models.Actor, id string) error
	Form(ctx context.Context, id string) (*workflow.Form, error)
	ApproveIdea(ctx context.Context, actor models.Actor, id string) (*models.VideoItem, error)
	ApproveContent(ctx context.Context, actor models.Actor, id string) (*models.VideoItem, error)
	SchedulePost(ctx context.Context, actor models.Actor, id string) error
	RemovePost(ctx context.Context, actor models.Actor, id string) error
	RefreshEngagement(ctx context.Context, actor models.Actor, id string) error
	EditAI(ctx context.Context, actor models.Actor, id, require string) error
}

type videoService struct {
	v  repository.VideoRepository
	p  repository.ProjectRepository
	d  queue.Dispatcher
	ar activityRecorder
}

func NewVideoService(
	v repository.VideoRepository,
	p repository.ProjectRepository,
	al repository.ActivityLogRepository,
	d queue.Dispatcher) VideoService {
	return &videoService{
		v:  v,
		p:  p,
		d:  d,
		ar: activityRecorder{al: al},
	}
}

func (s *videoService) List(ctx context.Context, filter models.ItemFilter) ([]*models.VideoItem, error) {
	if filter.Status != "" && !workflow.Valid(filter.Status) {
		return nil, invalid("unknown status %q", filter.Status)
	}
	return s.v.List(ctx, filter)
}

func (s *videoService) Get(ctx context.Context, id string) (*models.VideoItem, error) {
	item, err := s.v.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFound("video")
	}
	return item, nil
}

func (s *videoService) Create(ctx context.Context, actor models.Actor, in *transfer.VideoInput) (*models.VideoItem, error) {
	item := &models.VideoItem{Platforms: []string{}}
	item.Status = workflow.StatusIdea
	applyVideoInput(in, item)

	if err := checkItem(item.Status, workflow.MissingVideo(item)); err != nil {
		return nil, err
	}
	if err := s.checkProject(ctx, item.ProjectID); err != nil {
		return nil, err
	}

	id, err := s.v.Create(ctx, nil, item)
	if err != nil {
		return nil, err
	}
	s.ar.record(ctx, actor, models.ActionCreate, models.ItemTypeVideo, id, item.Status)

	return s.Get(ctx, id)
}

func (s *videoService) Update(ctx context.Context, actor models.Actor, id string, in *transfer.VideoInput) (*models.VideoItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	projectID := item.ProjectID
	applyVideoInput(in, item)

	if err := checkItem(item.Status, workflow.MissingVideo(item)); err != nil {
		return nil, err
	}
	if item.ProjectID == "" || item.ProjectID != projectID {
		if err := s.checkProject(ctx, item.ProjectID); err != nil {
			return nil, err
		}
	}

	if err := s.v.Update(ctx, item); err != nil {
		return nil, storeErr(err, "video")
	}
	s.ar.record(ctx, actor, models.ActionUpdate, models.ItemTypeVideo, id, item.Status)

	return s.Get(ctx, id)
}

func (s *videoService) Remove(ctx context.Context, actor models.Actor, id string) error {
	if err := s.v.Remove(ctx, id); err != nil {
		return storeErr(err, "video")
	}
	s.ar.record(ctx, actor, models.ActionDelete, models.ItemTypeVideo, id, "")
	return nil
}

func (s *videoService) Form(ctx context.Context, id string) (*workflow.Form, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	form := workflow.VideoForm(item)
	return &form, nil
}

func (s *videoService) ApproveIdea(ctx context.Context, actor models.Actor, id string) (*models.VideoItem, error) {
	return s.approve(ctx, actor, id, workflow.StatusIdeaApproved, models.ActionApproveIdea)
}

func (s *videoService) ApproveContent(ctx context.Context, actor models.Actor, id string) (*models.VideoItem, error) {
	return s.approve(ctx, actor, id, workflow.StatusContentApproved, models.ActionApproveContent)
}

func (s *videoService) approve(ctx context.Context, actor models.Actor, id, status, action string) (*models.VideoItem, error) {
	if err := s.v.Approve(ctx, id, status, actor.Email); err != nil {
		return nil, storeErr(err, "video")
	}
	s.ar.record(ctx, actor, action, models.ItemTypeVideo, id, status)
	return s.Get(ctx, id)
}

// SchedulePost sends platforms joined with commas, one trigger per video.
func (s *videoService) SchedulePost(ctx context.Context, actor models.Actor, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if item.PostingTime == nil || len(item.Platforms) == 0 {
		return invalid("posting time and platforms are required to schedule")
	}

	payload := webhook.SchedulePost{
		PostingTime: postingTimeString(&item.ItemBase),
		Platform:    strings.Join(item.Platforms, ","),
	}
	if err := s.d.Dispatch(ctx, webhook.PathSchedulePost, payload, queue.Origin{Actor: actor}); err != nil {
		return err
	}
	s.ar.record(ctx, actor, models.ActionSchedulePost, models.ItemTypeVideo, id, payload.PostingTime)
	return nil
}

func (s *videoService) RemovePost(ctx context.Context, actor models.Actor, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if item.PostID == "" && item.PostURL == "" {
		return invalid("video has not been posted")
	}

	payload := webhook.RemoveVideoPost{
		ItemID:    item.ID,
		PostID:    item.PostID,
		Platform:  strings.Join(item.Platforms, ","),
		AccountID: item.AccountID,
		PostURL:   item.PostURL,
	}
	origin := queue.Origin{
		Actor:      actor,
		Action:     models.ActionRemovePost,
		EntityType: models.ItemTypeVideo,
		EntityID:   id,
	}
	return s.d.Dispatch(ctx, webhook.PathRemovePost, payload, origin)
}

func (s *videoService) RefreshEngagement(ctx context.Context, actor models.Actor, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	payload := webhook.Engagement{PostType: models.ItemTypeVideo, ItemID: id}
	if err := s.d.Dispatch(ctx, webhook.PathEngagementTracker, payload, queue.Origin{Actor: actor}); err != nil {
		return err
	}
	s.ar.record(ctx, actor, models.ActionRefreshEngagement, models.ItemTypeVideo, id, "")
	return nil
}

func (s *videoService) EditAI(ctx context.Context, actor models.Actor, id, require string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	payload := webhook.EditContentText{
		Type:        models.ItemTypeVideo,
		Topic:       item.Topic,
		Content:     item.Content,
		ContentType: item.ContentType,
		ProjectID:   item.ProjectID,
		ID:          item.ID,
		Require:     require,
		Platform:    strings.Join(item.Platforms, ","),
	}
	if err := s.d.Dispatch(ctx, webhook.PathEditContentText, payload, queue.Origin{Actor: actor}); err != nil {
		return err
	}
	s.ar.record(ctx, actor, models.ActionEditAI, models.ItemTypeVideo, id, require)
	return nil
}

func (s *videoService) checkProject(ctx context.Context, projectID string) error {
	if projectID == "" {
		return invalid("video needs a project")
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

func applyVideoInput(in *transfer.VideoInput, item *models.VideoItem) {
	if in == nil {
		return
	}
	applyItemInput(&in.ItemInput, &item.ItemBase)
	if in.Platforms != nil {
		item.Platforms = cleanPlatforms(*in.Platforms)
	}
	if in.Duration != nil {
		item.Duration = *in.Duration
	}
	setString(&item.VideoLink, in.VideoLink)
}
