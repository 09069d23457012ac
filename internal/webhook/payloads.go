package webhook

// Trigger paths on the automation system.
const (
	PathSchedulePost      = "schedule-post"
	PathRemovePost        = "remove-post"
	PathEngagementTracker = "engagement-tracker"
	PathSearchIdeas       = "ai-search-ideas"
	PathEditContentText   = "edit-content-text"
)

// Paths lists every trigger the API forwards.
func Paths() []string {
	return []string{PathSchedulePost, PathRemovePost, PathEngagementTracker, PathSearchIdeas, PathEditContentText}
}

type SchedulePost struct {
	PostingTime string `json:"posting_time"`
	Platform    string `json:"platform"`
}

type RemoveContentPost struct {
	PostURL  string `json:"postUrl"`
	Platform string `json:"platform"`
	Project  string `json:"project"`
}

type RemoveVideoPost struct {
	ItemID    string `json:"itemId"`
	PostID    string `json:"postId"`
	Platform  string `json:"platform"`
	AccountID string `json:"accountId"`
	PostURL   string `json:"postUrl"`
}

// Engagement refreshes every posted item of PostType, or one item when ItemID is set.
type Engagement struct {
	PostType string `json:"postType"`
	ItemID   string `json:"itemId,omitempty"`
}

type SearchIdeas struct {
	PostType string `json:"postType"`
}

type EditContentText struct {
	Type        string `json:"type"`
	Topic       string `json:"topic"`
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
	ProjectID   string `json:"projectId"`
	ID          string `json:"id"`
	Require     string `json:"require"`
	Platform    string `json:"platform"`
}
