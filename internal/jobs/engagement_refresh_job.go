package job

import (
	"context"
	"log/slog"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/queue"
	"github.com/maheshrc27/contentops/internal/webhook"
)

// EngagementRefreshJob asks the automation system to re-read engagement
// numbers for every posted content and video item.
type EngagementRefreshJob struct {
	dispatcher queue.Dispatcher
	postTypes  []string
}

func NewEngagementRefreshJob(dispatcher queue.Dispatcher) *EngagementRefreshJob {
	return &EngagementRefreshJob{
		dispatcher: dispatcher,
		postTypes:  []string{models.ItemTypeContent, models.ItemTypeVideo},
	}
}

func (j *EngagementRefreshJob) Refresh() {
	ctx := context.Background()

	for _, postType := range j.postTypes {
		payload := webhook.Engagement{PostType: postType}
		if err := j.dispatcher.Dispatch(ctx, webhook.PathEngagementTracker, payload, queue.Origin{}); err != nil {
			slog.Info("Unable to enqueue engagement refresh", "post_type", postType, "error", err)
		}
	}
}
