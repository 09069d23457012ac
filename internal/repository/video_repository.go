package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/maheshrc27/contentops/internal/models"
)

type VideoRepository interface {
	Create(ctx context.Context, tx *sql.Tx, item *models.VideoItem) (string, error)
	GetByID(ctx context.Context, id string) (*models.VideoItem, error)
	List(ctx context.Context, filter models.ItemFilter) ([]*models.VideoItem, error)
	ListBetween(ctx context.Context, projectID string, from, to time.Time) ([]*models.VideoItem, error)
	Update(ctx context.Context, item *models.VideoItem) error
	Approve(ctx context.Context, id, status, approvedBy string) error
	CountByStatus(ctx context.Context, projectID string) ([]models.StatusCount, error)
	EngagementTotals(ctx context.Context, projectID string) (*models.EngagementTotals, error)
	Remove(ctx context.Context, id string) error
}

type videoRepository struct {
	db *sql.DB
}

func NewVideoRepository(db *sql.DB) VideoRepository {
	return &videoRepository{db: db}
}

const videoColumns = itemBaseColumns + `, platforms, duration, video_link`

func scanVideo(row interface{ Scan(...interface{}) error }) (*models.VideoItem, error) {
	var item models.VideoItem
	targets := append(itemBaseTargets(&item.ItemBase), pq.Array(&item.Platforms), &item.Duration, &item.VideoLink)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	if item.Platforms == nil {
		item.Platforms = []string{}
	}
	return &item, nil
}

func platformsArray(platforms []string) interface{} {
	if platforms == nil {
		platforms = []string{}
	}
	return pq.Array(platforms)
}

func (r *videoRepository) Create(ctx context.Context, tx *sql.Tx, item *models.VideoItem) (string, error) {
	query := `
		INSERT INTO videos (id, project_id, status, idea, topic, criteria, content_type, content,
			image_link, account_id, post_id, post_url, approved_by, approved_at, posting_time,
			posted_at, views, likes, comments, shares, ai_analysis, ai_suggestion, error_message,
			platforms, duration, video_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25, $26)
	`
	id := uuid.NewString()
	args := append([]interface{}{id}, itemBaseValues(&item.ItemBase)...)
	args = append(args, platformsArray(item.Platforms), item.Duration, item.VideoLink)

	if _, err := conn(r.db, tx).ExecContext(ctx, query, args...); err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *videoRepository) GetByID(ctx context.Context, id string) (*models.VideoItem, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	item, err := scanVideo(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return item, nil
}

func (r *videoRepository) List(ctx context.Context, filter models.ItemFilter) ([]*models.VideoItem, error) {
	var w where
	if filter.ProjectID != "" {
		w.add("project_id = $%d", filter.ProjectID)
	}
	if filter.Status != "" {
		w.add("status = $%d", filter.Status)
	}
	query := `SELECT ` + videoColumns + ` FROM videos` + w.String() + ` ORDER BY created_at DESC`

	return r.query(ctx, query, w.args...)
}

func (r *videoRepository) ListBetween(ctx context.Context, projectID string, from, to time.Time) ([]*models.VideoItem, error) {
	var w where
	w.add("COALESCE(posted_at, posting_time) >= $%d", from)
	w.add("COALESCE(posted_at, posting_time) < $%d", to)
	if projectID != "" {
		w.add("project_id = $%d", projectID)
	}
	query := `SELECT ` + videoColumns + ` FROM videos` + w.String() + ` ORDER BY COALESCE(posted_at, posting_time)`

	return r.query(ctx, query, w.args...)
}

func (r *videoRepository) query(ctx context.Context, query string, args ...interface{}) ([]*models.VideoItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	items := []*models.VideoItem{}
	for rows.Next() {
		item, err := scanVideo(rows)
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

func (r *videoRepository) Update(ctx context.Context, item *models.VideoItem) error {
	query := `
		UPDATE videos
		SET project_id = $1, status = $2, idea = $3, topic = $4, criteria = $5, content_type = $6,
			content = $7, image_link = $8, account_id = $9, post_id = $10, post_url = $11,
			approved_by = $12, approved_at = $13, posting_time = $14, posted_at = $15, views = $16,
			likes = $17, comments = $18, shares = $19, ai_analysis = $20, ai_suggestion = $21,
			error_message = $22, platforms = $23, duration = $24, video_link = $25, updated_at = $26
		WHERE id = $27
	`
	args := append(itemBaseValues(&item.ItemBase),
		platformsArray(item.Platforms), item.Duration, item.VideoLink, time.Now(), item.ID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}

func (r *videoRepository) Approve(ctx context.Context, id, status, approvedBy string) error {
	query := `
		UPDATE videos
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

func (r *videoRepository) CountByStatus(ctx context.Context, projectID string) ([]models.StatusCount, error) {
	return countByStatus(ctx, r.db, "videos", projectID)
}

func (r *videoRepository) EngagementTotals(ctx context.Context, projectID string) (*models.EngagementTotals, error) {
	return engagementTotals(ctx, r.db, "videos", projectID)
}

func (r *videoRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}
