package queue

import (
	"context"
	"encoding/json"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/repository"
)

// Sender delivers an encoded trigger. *webhook.Client satisfies it.
type Sender interface {
	SendRaw(ctx context.Context, path string, body []byte) error
}

type Queue struct {
	wh Sender
	al repository.ActivityLogRepository
}

func NewQueue(wh Sender, al repository.ActivityLogRepository) *Queue {
	return &Queue{
		wh: wh,
		al: al,
	}
}

const TaskTypeDispatchWebhook = "webhook:dispatch"

// Origin records who triggered a dispatch and which item it concerns.
// It is optional; an empty EntityID skips the activity row.
type Origin struct {
	Actor      models.Actor
	Action     string
	EntityType string
	EntityID   string
}

type DispatchPayload struct {
	Path       string          `json:"path"`
	Body       json.RawMessage `json:"body"`
	UserID     string          `json:"user_id,omitempty"`
	UserEmail  string          `json:"user_email,omitempty"`
	Action     string          `json:"action,omitempty"`
	EntityType string          `json:"entity_type,omitempty"`
	EntityID   string          `json:"entity_id,omitempty"`
}
