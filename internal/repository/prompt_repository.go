package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/contentops/internal/models"
)

type PromptRepository interface {
	Create(ctx context.Context, tx *sql.Tx, p *models.Prompt) (string, error)
	GetByID(ctx context.Context, id string) (*models.Prompt, error)
	List(ctx context.Context, projectID, promptType string) ([]*models.Prompt, error)
	Update(ctx context.Context, p *models.Prompt) error
	Remove(ctx context.Context, id string) error
}

type promptRepository struct {
	db *sql.DB
}

func NewPromptRepository(db *sql.DB) PromptRepository {
	return &promptRepository{db: db}
}

const promptColumns = `id, project_id, name, type, platform, content, is_active, created_at, updated_at`

func scanPrompt(row interface{ Scan(...interface{}) error }) (*models.Prompt, error) {
	var p models.Prompt
	err := row.Scan(&p.ID, &p.ProjectID, &p.Name, &p.Type, &p.Platform, &p.Content, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *promptRepository) Create(ctx context.Context, tx *sql.Tx, p *models.Prompt) (string, error) {
	query := `
		INSERT INTO prompts (id, project_id, name, type, platform, content, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	id := uuid.NewString()
	_, err := conn(r.db, tx).ExecContext(ctx, query, id, p.ProjectID, p.Name, p.Type, p.Platform, p.Content, p.IsActive)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *promptRepository) GetByID(ctx context.Context, id string) (*models.Prompt, error) {
	query := `SELECT ` + promptColumns + ` FROM prompts WHERE id = $1`

	p, err := scanPrompt(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return p, nil
}

func (r *promptRepository) List(ctx context.Context, projectID, promptType string) ([]*models.Prompt, error) {
	var w where
	if projectID != "" {
		w.add("project_id = $%d", projectID)
	}
	if promptType != "" {
		w.add("type = $%d", promptType)
	}
	query := `SELECT ` + promptColumns + ` FROM prompts` + w.String() + ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	prompts := []*models.Prompt{}
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}

func (r *promptRepository) Update(ctx context.Context, p *models.Prompt) error {
	query := `
		UPDATE prompts
		SET project_id = $1,
			name = $2,
			type = $3,
			platform = $4,
			content = $5,
			is_active = $6,
			updated_at = $7
		WHERE id = $8
	`
	result, err := r.db.ExecContext(ctx, query, p.ProjectID, p.Name, p.Type, p.Platform, p.Content,
		p.IsActive, time.Now(), p.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}

func (r *promptRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM prompts WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}
