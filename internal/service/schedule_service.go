package service

import (
	"context"
	"time"

	"github.com/maheshrc27/contentops/internal/calendar"
	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/repository"
	"github.com/maheshrc27/contentops/internal/transfer"
)

const entitySchedule = "schedule"

type ScheduleService interface {
	List(ctx context.Context, projectID string) ([]*models.Schedule, error)
	Get(ctx context.Context, id string) (*models.Schedule, error)
	Create(ctx context.Context, actor models.Actor, in *transfer.ScheduleInput) (*models.Schedule, error)
	Update(ctx context.Context, actor models.Actor, id string, in *transfer.ScheduleInput) (*models.Schedule, error)
	Remove(ctx context.Context, actor models.Actor, id string) error
	Calendar(ctx context.Context, year int, month time.Month, projectID string) ([]calendar.Day, error)
}

type scheduleService struct {
	s   repository.ScheduleRepository
	c   repository.ContentRepository
	v   repository.VideoRepository
	p   repository.ProjectRepository
	loc *time.Location
	ar  activityRecorder
}

func NewScheduleService(
	s repository.ScheduleRepository,
	c repository.ContentRepository,
	v repository.VideoRepository,
	p repository.ProjectRepository,
	al repository.ActivityLogRepository,
	loc *time.Location) ScheduleService {
	if loc == nil {
		loc = time.UTC
	}
	return &scheduleService{
		s:   s,
		c:   c,
		v:   v,
		p:   p,
		loc: loc,
		ar:  activityRecorder{al: al},
	}
}

func (s *scheduleService) List(ctx context.Context, projectID string) ([]*models.Schedule, error) {
	return s.s.List(ctx, projectID, false)
}

func (s *scheduleService) Get(ctx context.Context, id string) (*models.Schedule, error) {
	schedule, err := s.s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, notFound(entitySchedule)
	}
	return schedule, nil
}

func (s *scheduleService) Create(ctx context.Context, actor models.Actor, in *transfer.ScheduleInput) (*models.Schedule, error) {
	schedule := &models.Schedule{IsActive: true}
	applyScheduleInput(in, schedule)

	if err := s.checkProject(ctx, schedule.ProjectID); err != nil {
		return nil, err
	}

	id, err := s.s.Create(ctx, nil, schedule)
	if err != nil {
		return nil, err
	}
	s.ar.record(ctx, actor, models.ActionCreate, entitySchedule, id, schedule.Frequency)

	return s.Get(ctx, id)
}

func (s *scheduleService) Update(ctx context.Context, actor models.Actor, id string, in *transfer.ScheduleInput) (*models.Schedule, error) {
	schedule, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyScheduleInput(in, schedule)

	if err := s.checkProject(ctx, schedule.ProjectID); err != nil {
		return nil, err
	}

	if err := s.s.Update(ctx, schedule); err != nil {
		return nil, storeErr(err, entitySchedule)
	}
	s.ar.record(ctx, actor, models.ActionUpdate, entitySchedule, id, schedule.Frequency)

	return s.Get(ctx, id)
}

func (s *scheduleService) Remove(ctx context.Context, actor models.Actor, id string) error {
	if err := s.s.Remove(ctx, id); err != nil {
		return storeErr(err, entitySchedule)
	}
	s.ar.record(ctx, actor, models.ActionDelete, entitySchedule, id, "")
	return nil
}

// Calendar lays out active schedules and planned or published items for one
// month in the service's time zone.
func (s *scheduleService) Calendar(ctx context.Context, year int, month time.Month, projectID string) ([]calendar.Day, error) {
	if month < time.January || month > time.December {
		return nil, invalid("month must be between 1 and 12")
	}
	if year < 1970 || year > 9999 {
		return nil, invalid("year %d is out of range", year)
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, s.loc)
	to := from.AddDate(0, 1, 0)

	schedules, err := s.s.List(ctx, projectID, true)
	if err != nil {
		return nil, err
	}
	contents, err := s.c.ListBetween(ctx, projectID, from, to)
	if err != nil {
		return nil, err
	}
	videos, err := s.v.ListBetween(ctx, projectID, from, to)
	if err != nil {
		return nil, err
	}

	posts := make([]calendar.Post, 0, len(contents)+len(videos))
	for _, item := range contents {
		if post, ok := calendar.ContentPost(item); ok {
			posts = append(posts, post)
		}
	}
	for _, item := range videos {
		if post, ok := calendar.VideoPost(item); ok {
			posts = append(posts, post)
		}
	}

	return calendar.Month(year, month, s.loc, schedules, posts), nil
}

func (s *scheduleService) checkProject(ctx context.Context, projectID string) error {
	if projectID == "" {
		return invalid("schedule needs a project")
	}
	project, err := s.p.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return invalid("project %s does not exist", projectID)
	}
	return nil
}

func applyScheduleInput(in *transfer.ScheduleInput, schedule *models.Schedule) {
	schedule.ProjectID = in.ProjectID
	schedule.Platform = in.Platform
	schedule.Frequency = in.Frequency
	schedule.PostingDays = in.PostingDays
	schedule.PostingTime = in.PostingTime
	if in.IsActive != nil {
		schedule.IsActive = *in.IsActive
	}
}
