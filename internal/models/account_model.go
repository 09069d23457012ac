package models

import "time"

type Account struct {
	ID          string    `db:"id" json:"id"`
	ProjectID   string    `db:"project_id" json:"projectId"`
	Platform    string    `db:"platform" json:"platform"`
	ChannelID   string    `db:"channel_id" json:"channelId"`
	ChannelName string    `db:"channel_name" json:"channelName"`
	ChannelLink string    `db:"channel_link" json:"channelLink"`
	AccessToken string    `db:"access_token" json:"-"` // encrypted at rest
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

const (
	PlatformFacebook  = "facebook"
	PlatformYoutube   = "youtube"
	PlatformTiktok    = "tiktok"
	PlatformInstagram = "instagram"
)
