package models

import "time"

type ActivityLog struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"userId"`
	UserEmail  string    `db:"user_email" json:"userEmail"`
	Action     string    `db:"action" json:"action"`
	EntityType string    `db:"entity_type" json:"entityType"`
	EntityID   string    `db:"entity_id" json:"entityId"`
	Details    string    `db:"details" json:"details"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

type ActivityFilter struct {
	EntityType string
	EntityID   string
	UserID     string
	Limit      int
}

const (
	ActionCreate            = "create"
	ActionUpdate            = "update"
	ActionDelete            = "delete"
	ActionApproveIdea       = "approve_idea"
	ActionApproveContent    = "approve_content"
	ActionSchedulePost      = "schedule_post"
	ActionRemovePost        = "remove_post"
	ActionRefreshEngagement = "refresh_engagement"
	ActionEditAI            = "edit_ai"
	ActionSearchIdeas       = "search_ideas"
)
