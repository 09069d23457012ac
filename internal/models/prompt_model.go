package models

import "time"

type Prompt struct {
	ID        string    `db:"id" json:"id"`
	ProjectID string    `db:"project_id" json:"projectId"`
	Name      string    `db:"name" json:"name"`
	Type      string    `db:"type" json:"type"`
	Platform  string    `db:"platform" json:"platform"`
	Content   string    `db:"content" json:"content"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
