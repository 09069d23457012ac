package models

import "time"

// ItemBase holds the fields content and video items share.
type ItemBase struct {
	ID           string     `db:"id" json:"id"`
	ProjectID    string     `db:"project_id" json:"projectId"`
	Status       string     `db:"status" json:"status"`
	Idea         string     `db:"idea" json:"idea"`
	Topic        string     `db:"topic" json:"topic"`
	Criteria     string     `db:"criteria" json:"criteria"`
	ContentType  string     `db:"content_type" json:"contentType"`
	Content      string     `db:"content" json:"content"`
	ImageLink    string     `db:"image_link" json:"imageLink"`
	AccountID    string     `db:"account_id" json:"accountId"`
	PostID       string     `db:"post_id" json:"postId"`
	PostURL      string     `db:"post_url" json:"postUrl"`
	ApprovedBy   string     `db:"approved_by" json:"approvedBy"`
	ApprovedAt   *time.Time `db:"approved_at" json:"approvedAt,omitempty"`
	PostingTime  *time.Time `db:"posting_time" json:"postingTime,omitempty"`
	PostedAt     *time.Time `db:"posted_at" json:"postedAt,omitempty"`
	Views        int64      `db:"views" json:"views"`
	Likes        int64      `db:"likes" json:"likes"`
	Comments     int64      `db:"comments" json:"comments"`
	Shares       int64      `db:"shares" json:"shares"`
	AIAnalysis   string     `db:"ai_analysis" json:"aiAnalysis"`
	AISuggestion string     `db:"ai_suggestion" json:"aiSuggestion"`
	ErrorMessage string     `db:"error_message" json:"errorMessage"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

type ContentItem struct {
	ItemBase
	Platform string `db:"platform" json:"platform"`
}

type VideoItem struct {
	ItemBase
	Platforms []string `db:"platforms" json:"platforms"`
	Duration  int      `db:"duration" json:"duration"`
	VideoLink string   `db:"video_link" json:"videoLink"`
}

// ItemFilter narrows list queries; empty fields are ignored.
type ItemFilter struct {
	ProjectID string
	Status    string
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type EngagementTotals struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
}

const (
	ItemTypeContent = "content"
	ItemTypeVideo   = "video"
)
