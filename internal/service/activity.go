package service

import (
	"context"
	"log/slog"

	"github.com/maheshrc27/contentops/internal/metrics"
	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/repository"
)

// activityRecorder writes an audit row after a mutation. A failed write is
// logged and never fails the mutation itself.
type activityRecorder struct {
	al repository.ActivityLogRepository
}

func (r activityRecorder) record(ctx context.Context, actor models.Actor, action, entityType, entityID, details string) {
	if r.al == nil {
		return
	}
	entry := &models.ActivityLog{
		UserID:     actor.UserID,
		UserEmail:  actor.Email,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
	if _, err := r.al.Create(ctx, nil, entry); err != nil {
		slog.Info(err.Error())
		return
	}
	metrics.RecordActivity(entityType, action)
}

type ActivityService interface {
	List(ctx context.Context, filter models.ActivityFilter) ([]*models.ActivityLog, error)
}

type activityService struct {
	al repository.ActivityLogRepository
}

func NewActivityService(al repository.ActivityLogRepository) ActivityService {
	return &activityService{al: al}
}

const maxActivityLimit = 500

func (s *activityService) List(ctx context.Context, filter models.ActivityFilter) ([]*models.ActivityLog, error) {
	if filter.Limit < 0 {
		return nil, invalid("limit must not be negative")
	}
	if filter.Limit > maxActivityLimit {
		filter.Limit = maxActivityLimit
	}
	return s.al.List(ctx, filter)
}
