package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/maheshrc27/contentops/internal/models"
)

type CostLogRepository interface {
	Create(ctx context.Context, tx *sql.Tx, l *models.CostLog) (string, error)
	List(ctx context.Context, filter models.CostFilter) ([]*models.CostLog, error)
}

type costLogRepository struct {
	db *sql.DB
}

func NewCostLogRepository(db *sql.DB) CostLogRepository {
	return &costLogRepository{db: db}
}

func (r *costLogRepository) Create(ctx context.Context, tx *sql.Tx, l *models.CostLog) (string, error) {
	query := `
		INSERT INTO cost_logs (id, project_id, item_id, item_type, media_type, operation, model_id, model_name, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	id := uuid.NewString()
	_, err := conn(r.db, tx).ExecContext(ctx, query, id, l.ProjectID, l.ItemID, l.ItemType, l.MediaType,
		l.Operation, l.ModelID, l.ModelName, l.Quantity)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *costLogRepository) List(ctx context.Context, filter models.CostFilter) ([]*models.CostLog, error) {
	var w where
	if filter.ProjectID != "" {
		w.add("project_id = $%d", filter.ProjectID)
	}
	if !filter.From.IsZero() {
		w.add("created_at >= $%d", filter.From)
	}
	if !filter.To.IsZero() {
		w.add("created_at < $%d", filter.To)
	}
	query := `
		SELECT id, project_id, item_id, item_type, media_type, operation, model_id, model_name, quantity, created_at
		FROM cost_logs` + w.String() + ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	logs := []*models.CostLog{}
	for rows.Next() {
		var l models.CostLog
		err := rows.Scan(&l.ID, &l.ProjectID, &l.ItemID, &l.ItemType, &l.MediaType, &l.Operation,
			&l.ModelID, &l.ModelName, &l.Quantity, &l.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
