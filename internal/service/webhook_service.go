package service

import (
	"context"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/queue"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/transfer"
	"github.com/maheshrc27/contentops/internal/webhook"
)

// WebhookService forwards dashboard triggers to the automation system.
// Every call only enqueues; delivery happens on the worker.
type WebhookService interface {
	SchedulePost(ctx context.Context, actor models.Actor, req *transfer.SchedulePostRequest) error
	RemovePost(ctx context.Context, actor models.Actor, req *transfer.RemovePostRequest) error
	Engagement(ctx context.Context, actor models.Actor, req *transfer.EngagementRequest) error
	SearchIdeas(ctx context.Context, actor models.Actor, req *transfer.SearchIdeasRequest) error
	EditContentText(ctx context.Context, actor models.Actor, req *transfer.EditContentTextRequest) error
}

type webhookService struct {
	d  queue.Dispatcher
	ar activityRecorder
}

func NewWebhookService(d queue.Dispatcher, al repository.ActivityLogRepository) WebhookService {
	return &webhookService{
		d:  d,
		ar: activityRecorder{al: al},
	}
}

func (s *webhookService) SchedulePost(ctx context.Context, actor models.Actor, req *transfer.SchedulePostRequest) error {
	payload := webhook.SchedulePost{PostingTime: req.PostingTime, Platform: req.Platform}
	return s.d.Dispatch(ctx, webhook.PathSchedulePost, payload, queue.Origin{Actor: actor})
}

// RemovePost sends the video shape when the request names an item or post
// id, and the content shape otherwise.
func (s *webhookService) RemovePost(ctx context.Context, actor models.Actor, req *transfer.RemovePostRequest) error {
	if req.ItemID == "" && req.PostID == "" {
		payload := webhook.RemoveContentPost{PostURL: req.PostURL, Platform: req.Platform, Project: req.Project}
		return s.d.Dispatch(ctx, webhook.PathRemovePost, payload, queue.Origin{Actor: actor})
	}

	payload := webhook.RemoveVideoPost{
		ItemID:    req.ItemID,
		PostID:    req.PostID,
		Platform:  req.Platform,
		AccountID: req.AccountID,
		PostURL:   req.PostURL,
	}
	origin := queue.Origin{
		Actor:      actor,
		Action:     models.ActionRemovePost,
		EntityType: models.ItemTypeVideo,
		EntityID:   req.ItemID,
	}
	return s.d.Dispatch(ctx, webhook.PathRemovePost, payload, origin)
}

func (s *webhookService) Engagement(ctx context.Context, actor models.Actor, req *transfer.EngagementRequest) error {
	payload := webhook.Engagement{PostType: req.PostType, ItemID: req.ItemID}
	if err := s.d.Dispatch(ctx, webhook.PathEngagementTracker, payload, queue.Origin{Actor: actor}); err != nil {
		return err
	}
	if req.ItemID != "" {
		s.ar.record(ctx, actor, models.ActionRefreshEngagement, req.PostType, req.ItemID, "")
	}
	return nil
}

func (s *webhookService) SearchIdeas(ctx context.Context, actor models.Actor, req *transfer.SearchIdeasRequest) error {
	payload := webhook.SearchIdeas{PostType: req.PostType}
	if err := s.d.Dispatch(ctx, webhook.PathSearchIdeas, payload, queue.Origin{Actor: actor}); err != nil {
		return err
	}
	s.ar.record(ctx, actor, models.ActionSearchIdeas, req.PostType, "", "")
	return nil
}

func (s *webhookService) EditContentText(ctx context.Context, actor models.Actor, req *transfer.EditContentTextRequest) error {
	payload := webhook.EditContentText{
		Type:        req.Type,
		Topic:       req.Topic,
		Content:     req.Content,
		ContentType: req.ContentType,
		ProjectID:   req.ProjectID,
		ID:          req.ID,
		Require:     req.Require,
		Platform:    req.Platform,
	}
	if err := s.d.Dispatch(ctx, webhook.PathEditContentText, payload, queue.Origin{Actor: actor}); err != nil {
		return err
	}
	s.ar.record(ctx, actor, models.ActionEditAI, req.Type, req.ID, req.Require)
	return nil
}
