package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/contentops/internal/models"
)

type AIModelRepository interface {
	Create(ctx context.Context, tx *sql.Tx, m *models.AIModel) (string, error)
	GetByID(ctx context.Context, id string) (*models.AIModel, error)
	List(ctx context.Context, mediaType string) ([]*models.AIModel, error)
	Update(ctx context.Context, m *models.AIModel) error
	Remove(ctx context.Context, id string) error
}

type aiModelRepository struct {
	db *sql.DB
}

func NewAIModelRepository(db *sql.DB) AIModelRepository {
	return &aiModelRepository{db: db}
}

const aiModelColumns = `id, name, provider, media_type, unit, generate_price, edit_price, is_active, created_at, updated_at`

func scanAIModel(row interface{ Scan(...interface{}) error }) (*models.AIModel, error) {
	var m models.AIModel
	err := row.Scan(&m.ID, &m.Name, &m.Provider, &m.MediaType, &m.Unit, &m.GeneratePrice, &m.EditPrice,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *aiModelRepository) Create(ctx context.Context, tx *sql.Tx, m *models.AIModel) (string, error) {
	query := `
		INSERT INTO ai_models (id, name, provider, media_type, unit, generate_price, edit_price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	id := uuid.NewString()
	_, err := conn(r.db, tx).ExecContext(ctx, query, id, m.Name, m.Provider, m.MediaType, m.Unit,
		m.GeneratePrice, m.EditPrice, m.IsActive)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *aiModelRepository) GetByID(ctx context.Context, id string) (*models.AIModel, error) {
	query := `SELECT ` + aiModelColumns + ` FROM ai_models WHERE id = $1`

	m, err := scanAIModel(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return m, nil
}

func (r *aiModelRepository) List(ctx context.Context, mediaType string) ([]*models.AIModel, error) {
	var w where
	if mediaType != "" {
		w.add("media_type = $%d", mediaType)
	}
	query := `SELECT ` + aiModelColumns + ` FROM ai_models` + w.String() + ` ORDER BY media_type, name`

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	list := []*models.AIModel{}
	for rows.Next() {
		m, err := scanAIModel(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *aiModelRepository) Update(ctx context.Context, m *models.AIModel) error {
	query := `
		UPDATE ai_models
		SET name = $1,
			provider = $2,
			media_type = $3,
			unit = $4,
			generate_price = $5,
			edit_price = $6,
			is_active = $7,
			updated_at = $8
		WHERE id = $9
	`
	result, err := r.db.ExecContext(ctx, query, m.Name, m.Provider, m.MediaType, m.Unit, m.GeneratePrice,
		m.EditPrice, m.IsActive, time.Now(), m.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}

func (r *aiModelRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ai_models WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}
