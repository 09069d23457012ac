package repository

import "github.com/maheshrc27/contentops/internal/models"

// Columns shared by the contents and videos tables, in scan order.
const itemBaseColumns = `id, project_id, status, idea, topic, criteria, content_type, content,
	image_link, account_id, post_id, post_url, approved_by, approved_at, posting_time,
	posted_at, views, likes, comments, shares, ai_analysis, ai_suggestion, error_message,
	created_at, updated_at`

func itemBaseTargets(b *models.ItemBase) []interface{} {
	return []interface{}{
		&b.ID, &b.ProjectID, &b.Status, &b.Idea, &b.Topic, &b.Criteria, &b.ContentType, &b.Content,
		&b.ImageLink, &b.AccountID, &b.PostID, &b.PostURL, &b.ApprovedBy, &b.ApprovedAt, &b.PostingTime,
		&b.PostedAt, &b.Views, &b.Likes, &b.Comments, &b.Shares, &b.AIAnalysis, &b.AISuggestion, &b.ErrorMessage,
		&b.CreatedAt, &b.UpdatedAt,
	}
}

// itemBaseValues returns the writable base columns, starting at project_id.
func itemBaseValues(b *models.ItemBase) []interface{} {
	return []interface{}{
		b.ProjectID, b.Status, b.Idea, b.Topic, b.Criteria, b.ContentType, b.Content,
		b.ImageLink, b.AccountID, b.PostID, b.PostURL, b.ApprovedBy, b.ApprovedAt, b.PostingTime,
		b.PostedAt, b.Views, b.Likes, b.Comments, b.Shares, b.AIAnalysis, b.AISuggestion, b.ErrorMessage,
	}
}
