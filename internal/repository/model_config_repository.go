package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/contentops/internal/models"
)

type ModelConfigRepository interface {
	Create(ctx context.Context, tx *sql.Tx, c *models.ModelConfig) (string, error)
	GetByID(ctx context.Context, id string) (*models.ModelConfig, error)
	List(ctx context.Context, projectID string) ([]*models.ModelConfig, error)
	Update(ctx context.Context, c *models.ModelConfig) error
	Remove(ctx context.Context, id string) error
}

type modelConfigRepository struct {
	db *sql.DB
}

func NewModelConfigRepository(db *sql.DB) ModelConfigRepository {
	return &modelConfigRepository{db: db}
}

const modelConfigColumns = `id, project_id, task, model_id, params, created_at, updated_at`

func scanModelConfig(row interface{ Scan(...interface{}) error }) (*models.ModelConfig, error) {
	var c models.ModelConfig
	if err := row.Scan(&c.ID, &c.ProjectID, &c.Task, &c.ModelID, &c.Params, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *modelConfigRepository) Create(ctx context.Context, tx *sql.Tx, c *models.ModelConfig) (string, error) {
	query := `
		INSERT INTO model_configs (id, project_id, task, model_id, params)
		VALUES ($1, $2, $3, $4, $5)
	`
	id := uuid.NewString()
	if _, err := conn(r.db, tx).ExecContext(ctx, query, id, c.ProjectID, c.Task, c.ModelID, c.Params); err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *modelConfigRepository) GetByID(ctx context.Context, id string) (*models.ModelConfig, error) {
	query := `SELECT ` + modelConfigColumns + ` FROM model_configs WHERE id = $1`

	c, err := scanModelConfig(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return c, nil
}

// List returns configs for projectID plus the global ones (empty project).
func (r *modelConfigRepository) List(ctx context.Context, projectID string) ([]*models.ModelConfig, error) {
	var w where
	if projectID != "" {
		w.add("(project_id = $%d OR project_id = '')", projectID)
	}
	query := `SELECT ` + modelConfigColumns + ` FROM model_configs` + w.String() + ` ORDER BY task, project_id`

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	configs := []*models.ModelConfig{}
	for rows.Next() {
		c, err := scanModelConfig(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}

func (r *modelConfigRepository) Update(ctx context.Context, c *models.ModelConfig) error {
	query := `
		UPDATE model_configs
		SET project_id = $1,
			task = $2,
			model_id = $3,
			params = $4,
			updated_at = $5
		WHERE id = $6
	`
	result, err := r.db.ExecContext(ctx, query, c.ProjectID, c.Task, c.ModelID, c.Params, time.Now(), c.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}

func (r *modelConfigRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM model_configs WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}
