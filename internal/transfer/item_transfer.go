package transfer

import "time"

// ItemInput carries the editable fields of content and video forms. Pointer
// fields distinguish "not sent" from "cleared" on update.
type ItemInput struct {
	ProjectID    *string    `json:"projectId" validate:"omitempty,uuid"`
	Status       *string    `json:"status"`
	Idea         *string    `json:"idea" validate:"omitempty,max=5000"`
	Topic        *string    `json:"topic" validate:"omitempty,max=500"`
	Criteria     *string    `json:"criteria"`
	ContentType  *string    `json:"contentType"`
	Content      *string    `json:"content"`
	ImageLink    *string    `json:"imageLink" validate:"omitempty,url"`
	AccountID    *string    `json:"accountId"`
	PostID       *string    `json:"postId"`
	PostURL      *string    `json:"postUrl" validate:"omitempty,url"`
	PostingTime  *time.Time `json:"postingTime"`
	PostedAt     *time.Time `json:"postedAt"`
	Views        *int64     `json:"views" validate:"omitempty,min=0"`
	Likes        *int64     `json:"likes" validate:"omitempty,min=0"`
	Comments     *int64     `json:"comments" validate:"omitempty,min=0"`
	Shares       *int64     `json:"shares" validate:"omitempty,min=0"`
	AIAnalysis   *string    `json:"aiAnalysis"`
	AISuggestion *string    `json:"aiSuggestion"`
	ErrorMessage *string    `json:"errorMessage"`
}

type ContentInput struct {
	ItemInput
	Platform *string `json:"platform"`
}

type VideoInput struct {
	ItemInput
	Platforms *[]string `json:"platforms"`
	Duration  *int      `json:"duration" validate:"omitempty,min=0"`
	VideoLink *string   `json:"videoLink" validate:"omitempty,url"`
}

// EditRequest asks the automation system to rewrite an item's text.
type EditRequest struct {
	Require string `json:"require" validate:"required"`
}
