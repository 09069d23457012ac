package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/contentops/internal/models"
)

type ScheduleRepository interface {
	Create(ctx context.Context, tx *sql.Tx, s *models.Schedule) (string, error)
	GetByID(ctx context.Context, id string) (*models.Schedule, error)
	List(ctx context.Context, projectID string, activeOnly bool) ([]*models.Schedule, error)
	Update(ctx context.Context, s *models.Schedule) error
	Remove(ctx context.Context, id string) error
}

type scheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `id, project_id, platform, frequency, posting_days, posting_time, is_active, created_at, updated_at`

func scanSchedule(row interface{ Scan(...interface{}) error }) (*models.Schedule, error) {
	var s models.Schedule
	err := row.Scan(&s.ID, &s.ProjectID, &s.Platform, &s.Frequency, &s.PostingDays, &s.PostingTime,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepository) Create(ctx context.Context, tx *sql.Tx, s *models.Schedule) (string, error) {
	query := `
		INSERT INTO schedules (id, project_id, platform, frequency, posting_days, posting_time, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	id := uuid.NewString()
	_, err := conn(r.db, tx).ExecContext(ctx, query, id, s.ProjectID, s.Platform, s.Frequency,
		s.PostingDays, s.PostingTime, s.IsActive)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`

	s, err := scanSchedule(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return s, nil
}

func (r *scheduleRepository) List(ctx context.Context, projectID string, activeOnly bool) ([]*models.Schedule, error) {
	var w where
	if projectID != "" {
		w.add("project_id = $%d", projectID)
	}
	if activeOnly {
		w.add("is_active = $%d", true)
	}
	query := `SELECT ` + scheduleColumns + ` FROM schedules` + w.String() + ` ORDER BY project_id, platform`

	rows, err := r.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	schedules := []*models.Schedule{}
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r *scheduleRepository) Update(ctx context.Context, s *models.Schedule) error {
	query := `
		UPDATE schedules
		SET project_id = $1,
			platform = $2,
			frequency = $3,
			posting_days = $4,
			posting_time = $5,
			is_active = $6,
			updated_at = $7
		WHERE id = $8
	`
	result, err := r.db.ExecContext(ctx, query, s.ProjectID, s.Platform, s.Frequency, s.PostingDays,
		s.PostingTime, s.IsActive, time.Now(), s.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}

func (r *scheduleRepository) Remove(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return checkAffected(result)
}
