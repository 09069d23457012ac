package transfer

// Request bodies accepted by /api/webhook/* and forwarded unchanged.

type SchedulePostRequest struct {
	PostingTime string `json:"posting_time" validate:"required"`
	Platform    string `json:"platform" validate:"required"`
}

type RemovePostRequest struct {
	PostURL   string `json:"postUrl" validate:"required"`
	Platform  string `json:"platform" validate:"required"`
	Project   string `json:"project"`
	ItemID    string `json:"itemId"`
	PostID    string `json:"postId"`
	AccountID string `json:"accountId"`
}

type EngagementRequest struct {
	PostType string `json:"postType" validate:"required,oneof=content video"`
	ItemID   string `json:"itemId"`
}

type SearchIdeasRequest struct {
	PostType string `json:"postType" validate:"required,oneof=content video"`
}

type EditContentTextRequest struct {
	Type        string `json:"type" validate:"required"`
	Topic       string `json:"topic"`
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
	ProjectID   string `json:"projectId"`
	ID          string `json:"id" validate:"required"`
	Require     string `json:"require"`
	Platform    string `json:"platform"`
}
