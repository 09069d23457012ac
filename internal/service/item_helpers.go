package service

import (
	"strings"
	"time"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/transfer"
	"github.com/maheshrc27/contentops/internal/workflow"
)

// applyItemInput copies every field the client sent onto b.
func applyItemInput(in *transfer.ItemInput, b *models.ItemBase) {
	setString(&b.ProjectID, in.ProjectID)
	setString(&b.Status, in.Status)
	setString(&b.Idea, in.Idea)
	setString(&b.Topic, in.Topic)
	setString(&b.Criteria, in.Criteria)
	setString(&b.ContentType, in.ContentType)
	setString(&b.Content, in.Content)
	setString(&b.ImageLink, in.ImageLink)
	setString(&b.AccountID, in.AccountID)
	setString(&b.PostID, in.PostID)
	setString(&b.PostURL, in.PostURL)
	setString(&b.AIAnalysis, in.AIAnalysis)
	setString(&b.AISuggestion, in.AISuggestion)
	setString(&b.ErrorMessage, in.ErrorMessage)
	if in.PostingTime != nil {
		t := *in.PostingTime
		b.PostingTime = &t
	}
	if in.PostedAt != nil {
		t := *in.PostedAt
		b.PostedAt = &t
	}
	setInt64(&b.Views, in.Views)
	setInt64(&b.Likes, in.Likes)
	setInt64(&b.Comments, in.Comments)
	setInt64(&b.Shares, in.Shares)
}

// checkItem rejects statuses outside the lifecycle and reports missing
// required fields. Transitions are not checked.
func checkItem(status string, missing []string) error {
	if !workflow.Valid(status) {
		return invalid("unknown status %q", status)
	}
	if len(missing) > 0 {
		return invalid("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func setInt64(dst *int64, src *int64) {
	if src != nil {
		*dst = *src
	}
}

func cleanPlatforms(platforms []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, p := range platforms {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

func postingTimeString(b *models.ItemBase) string {
	if b.PostingTime == nil {
		return ""
	}
	return b.PostingTime.UTC().Format(time.RFC3339)
}
