package models

import "time"

type Schedule struct {
	ID          string    `db:"id" json:"id"`
	ProjectID   string    `db:"project_id" json:"projectId"`
	Platform    string    `db:"platform" json:"platform"`
	Frequency   string    `db:"frequency" json:"frequency"`
	PostingDays string    `db:"posting_days" json:"postingDays"`
	PostingTime string    `db:"posting_time" json:"postingTime"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

const (
	FrequencyDaily      = "Ngày"
	FrequencyWeekly     = "Tuần"
	FrequencyMonthly    = "Tháng"
	FrequencyEvery3Days = "3 ngày/lần"
)
