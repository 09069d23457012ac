package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/contentops/internal/models"
)

type AccountRepository interface {
	Create(ctx context.Context, tx *sql.Tx, a *models.Account) (string, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	List(ctx context.Context, projectID, platform string) ([]*models.Account, error)
	Update(ctx context.Context, a *models.Account) error
	Remove(ctx context.Context, id string) error
}

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, project_id, platform, channel_id, channel_name, channel_link, access_token,
	is_active, created_at, updated_at`

func scanAccount(row interface{ Scan(...interface{}) error }) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.ProjectID, &a.Platform, &a.ChannelID, &a.ChannelName, &a.ChannelLink,
		&a.AccessToken, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) Create(ctx context.Context, tx *sql.Tx, a *models.Account) (string, error) {
	query := `
		INSERT INTO accounts (id, project_id, platform, channel_id, channel_name, channel_link, access_token, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	id := uuid.NewString()
	_, err := conn(r.db, tx).ExecContext(ctx, query, id, a.ProjectID, a.Platform, a.ChannelID,
		a.ChannelName, a.ChannelLink, a.AccessToken, a.IsActive)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) List(ctx context.Context, projectID, platform string) ([]*models.Account, error) {
	var w where
	if projectID != "" {
		w.add("project_id = $%d", projectID)
	}
	if platform != "" {
		w.add("platform = $%d", platform)
	}
	query := `SELECT ` + accountColumns + ` FROM accounts` + w.String() + ` ORDER BY platform, channel_name`

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	accounts := []*models.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) Update(ctx context.Context, a *models.Account) error {
	query := `
		UPDATE accounts
		SET project_id = $1,
			platform = $2,
			channel_id = $3,
			channel_name = $4,
			channel_link = $5,
			access_token = $6,
			is_active = $7,
			updated_at = $8
		WHERE id = $9
	`
	result, err := r.db.ExecContext(ctx, query, a.ProjectID, a.Platform, a.ChannelID, a.ChannelName,
		a.ChannelLink, a.AccessToken, a.IsActive, time.Now(), a.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}

func (r *accountRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}
