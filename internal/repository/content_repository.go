package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/contentops/internal/models"
)

type ContentRepository interface {
	Create(ctx context.Context, tx *sql.Tx, item *models.ContentItem) (string, error)
	GetByID(ctx context.Context, id string) (*models.ContentItem, error)
	List(ctx context.Context, filter models.ItemFilter) ([]*models.ContentItem, error)
	ListBetween(ctx context.Context, projectID string, from, to time.Time) ([]*models.ContentItem, error)
	Update(ctx context.Context, item *models.ContentItem) error
	Approve(ctx context.Context, id, status, approvedBy string) error
	CountByStatus(ctx context.Context, projectID string) ([]models.StatusCount, error)
	EngagementTotals(ctx context.Context, projectID string) (*models.EngagementTotals, error)
	Remove(ctx context.Context, id string) error
}

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

const contentColumns = itemBaseColumns + `, platform`

func scanContent(row interface{ Scan(...interface{}) error }) (*models.ContentItem, error) {
	var item models.ContentItem
	targets := append(itemBaseTargets(&item.ItemBase), &item.Platform)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *contentRepository) Create(ctx context.Context, tx *sql.Tx, item *models.ContentItem) (string, error) {
	query := `
		INSERT INTO contents (id, project_id, status, idea, topic, criteria, content_type, content,
			image_link, account_id, post_id, post_url, approved_by, approved_at, posting_time,
			posted_at, views, likes, comments, shares, ai_analysis, ai_suggestion, error_message, platform)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24)
	`
	id := uuid.NewString()
	args := append([]interface{}{id}, itemBaseValues(&item.ItemBase)...)
	args = append(args, item.Platform)

	if _, err := conn(r.db, tx).ExecContext(ctx, query, args...); err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*models.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM contents WHERE id = $1`

	item, err := scanContent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return item, nil
}

func (r *contentRepository) List(ctx context.Context, filter models.ItemFilter) ([]*models.ContentItem, error) {
	var w where
	if filter.ProjectID != "" {
		w.add("project_id = $%d", filter.ProjectID)
	}
	if filter.Status != "" {
		w.add("status = $%d", filter.Status)
	}
	query := `SELECT ` + contentColumns + ` FROM contents` + w.String() + ` ORDER BY created_at DESC`

	return r.query(ctx, query, w.args...)
}

func (r *contentRepository) ListBetween(ctx context.Context, projectID string, from, to time.Time) ([]*models.ContentItem, error) {
	var w where
	w.add("COALESCE(posted_at, posting_time) >= $%d", from)
	w.add("COALESCE(posted_at, posting_time) < $%d", to)
	if projectID != "" {
		w.add("project_id = $%d", projectID)
	}
	query := `SELECT ` + contentColumns + ` FROM contents` + w.String() + ` ORDER BY COALESCE(posted_at, posting_time)`

	return r.query(ctx, query, w.args...)
}

func (r *contentRepository) query(ctx context.Context, query string, args ...interface{}) ([]*models.ContentItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	items := []*models.ContentItem{}
	for rows.Next() {
		item, err := scanContent(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return items, nil
}

func (r *contentRepository) Update(ctx context.Context, item *models.ContentItem) error {
	query := `
		UPDATE contents
		SET project_id = $1, status = $2, idea = $3, topic = $4, criteria = $5, content_type = $6,
			content = $7, image_link = $8, account_id = $9, post_id = $10, post_url = $11,
			approved_by = $12, approved_at = $13, posting_time = $14, posted_at = $15, views = $16,
			likes = $17, comments = $18, shares = $19, ai_analysis = $20, ai_suggestion = $21,
			error_message = $22, platform = $23, updated_at = $24
		WHERE id = $25
	`
	args := append(itemBaseValues(&item.ItemBase), item.Platform, time.Now(), item.ID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}

func (r *contentRepository) Approve(ctx context.Context, id, status, approvedBy string) error {
	query := `
		UPDATE contents
		SET status = $1,
			approved_by = $2,
			approved_at = $3,
			updated_at = $3
		WHERE id = $4
	`
	result, err := r.db.ExecContext(ctx, query, status, approvedBy, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}

func (r *contentRepository) CountByStatus(ctx context.Context, projectID string) ([]models.StatusCount, error) {
	return countByStatus(ctx, r.db, "contents", projectID)
}

func (r *contentRepository) EngagementTotals(ctx context.Context, projectID string) (*models.EngagementTotals, error) {
	return engagementTotals(ctx, r.db, "contents", projectID)
}

func (r *contentRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contents WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}

// countByStatus and engagementTotals serve both item tables; table is never
// user input.
func countByStatus(ctx context.Context, db *sql.DB, table, projectID string) ([]models.StatusCount, error) {
	var w where
	if projectID != "" {
		w.add("project_id = $%d", projectID)
	}
	query := `SELECT status, COUNT(*) FROM ` + table + w.String() + ` GROUP BY status ORDER BY status`

	rows, err := db.QueryContext(ctx, query, w.args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	counts := []models.StatusCount{}
	for rows.Next() {
		var c models.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func engagementTotals(ctx context.Context, db *sql.DB, table, projectID string) (*models.EngagementTotals, error) {
	var w where
	if projectID != "" {
		w.add("project_id = $%d", projectID)
	}
	query := `SELECT COALESCE(SUM(views), 0), COALESCE(SUM(likes), 0), COALESCE(SUM(comments), 0),
		COALESCE(SUM(shares), 0) FROM ` + table + w.String()

	var t models.EngagementTotals
	if err := db.QueryRowContext(ctx, query, w.args...).Scan(&t.Views, &t.Likes, &t.Comments, &t.Shares); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return &t, nil
}
