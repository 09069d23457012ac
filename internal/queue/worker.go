package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/contentops/internal/metrics"
	"github.com/maheshrc27/contentops/internal/models"
)

func (q *Queue) HandleDispatchTask(ctx context.Context, task *asynq.Task) error {
	var payload DispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode dispatch payload: %v: %w", err, asynq.SkipRetry)
	}

	err := q.wh.SendRaw(ctx, payload.Path, payload.Body)
	metrics.RecordDispatch(payload.Path, err)
	if err != nil {
		slog.Error("webhook dispatch failed", "path", payload.Path, "entity_id", payload.EntityID, "error", err)
		return err
	}
	slog.Info("webhook dispatched", "path", payload.Path, "entity_id", payload.EntityID)

	q.recordActivity(ctx, payload)
	return nil
}

func (q *Queue) recordActivity(ctx context.Context, payload DispatchPayload) {
	if q.al == nil || payload.EntityID == "" || payload.Action == "" {
		return
	}

	entry := &models.ActivityLog{
		UserID:     payload.UserID,
		UserEmail:  payload.UserEmail,
		Action:     payload.Action,
		EntityType: payload.EntityType,
		EntityID:   payload.EntityID,
		Details:    payload.Path,
	}
	if _, err := q.al.Create(ctx, nil, entry); err != nil {
		slog.Info(err.Error())
		return
	}
	metrics.RecordActivity(payload.EntityType, payload.Action)
}
