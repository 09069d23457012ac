package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/contentops/internal/metrics"
)

// Dispatcher hands a webhook trigger off for asynchronous delivery.
type Dispatcher interface {
	Dispatch(ctx context.Context, path string, payload interface{}, origin Origin) error
}

type asynqDispatcher struct {
	client *asynq.Client
}

func NewDispatcher(client *asynq.Client) Dispatcher {
	return &asynqDispatcher{client: client}
}

func NewDispatchTask(path string, payload interface{}, origin Origin) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	taskPayload, err := json.Marshal(DispatchPayload{
		Path:       path,
		Body:       body,
		UserID:     origin.Actor.UserID,
		UserEmail:  origin.Actor.Email,
		Action:     origin.Action,
		EntityType: origin.EntityType,
		EntityID:   origin.EntityID,
	})
	if err != nil {
		return nil, err
	}
	// Triggers are fire-and-forget: a failed delivery is logged, never retried.
	return asynq.NewTask(TaskTypeDispatchWebhook, taskPayload, asynq.MaxRetry(0)), nil
}

func (d *asynqDispatcher) Dispatch(ctx context.Context, path string, payload interface{}, origin Origin) error {
	task, err := NewDispatchTask(path, payload, origin)
	if err != nil {
		return err
	}

	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	metrics.RecordEnqueued(path)
	slog.Debug("webhook enqueued", "path", path, "task_id", info.ID)
	return nil
}
