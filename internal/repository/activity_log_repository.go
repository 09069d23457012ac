package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/maheshrc27/contentops/internal/models"
)

const defaultActivityLimit = 100

type ActivityLogRepository interface {
	Create(ctx context.Context, tx *sql.Tx, l *models.ActivityLog) (string, error)
	List(ctx context.Context, filter models.ActivityFilter) ([]*models.ActivityLog, error)
}

type activityLogRepository struct {
	db *sql.DB
}

func NewActivityLogRepository(db *sql.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, tx *sql.Tx, l *models.ActivityLog) (string, error) {
	query := `
		INSERT INTO activity_logs (id, user_id, user_email, action, entity_type, entity_id, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	id := uuid.NewString()
	_, err := conn(r.db, tx).ExecContext(ctx, query, id, l.UserID, l.UserEmail, l.Action, l.EntityType,
		l.EntityID, l.Details)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

// List returns the newest entries first. A non-positive limit means 100.
func (r *activityLogRepository) List(ctx context.Context, filter models.ActivityFilter) ([]*models.ActivityLog, error) {
	var w where
	if filter.EntityType != "" {
		w.add("entity_type = $%d", filter.EntityType)
	}
	if filter.EntityID != "" {
		w.add("entity_id = $%d", filter.EntityID)
	}
	if filter.UserID != "" {
		w.add("user_id = $%d", filter.UserID)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	query := `
		SELECT id, user_id, user_email, action, entity_type, entity_id, details, created_at
		FROM activity_logs` + w.String() + ` ORDER BY created_at DESC LIMIT ` + w.next(limit)

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	logs := []*models.ActivityLog{}
	for rows.Next() {
		var l models.ActivityLog
		err := rows.Scan(&l.ID, &l.UserID, &l.UserEmail, &l.Action, &l.EntityType, &l.EntityID, &l.Details, &l.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
