package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/queue"
	"github.com/maheshrc27/contentops/internal/repository"
)

var testActor = models.Actor{UserID: "u-admin", Email: "admin@example.com", Role: models.RoleAdmin}

type fakeProjects struct {
	rows map[string]*models.Project
	seq  int
}

func newFakeProjects(projects ...*models.Project) *fakeProjects {
	f := &fakeProjects{rows: map[string]*models.Project{}}
	for _, p := range projects {
		f.rows[p.ID] = p
	}
	return f
}

func (f *fakeProjects) Create(ctx context.Context, tx *sql.Tx, p *models.Project) (string, error) {
	f.seq++
	id := fmt.Sprintf("project-%d", f.seq)
	cp := *p
	cp.ID = id
	f.rows[id] = &cp
	return id, nil
}

func (f *fakeProjects) GetByID(ctx context.Context, id string) (*models.Project, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjects) List(ctx context.Context) ([]*models.Project, error) {
	out := []*models.Project{}
	for _, p := range f.rows {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjects) Update(ctx context.Context, p *models.Project) error {
	if _, ok := f.rows[p.ID]; !ok {
		return repository.ErrNoRowsAffected
	}
	cp := *p
	f.rows[p.ID] = &cp
	return nil
}

func (f *fakeProjects) Remove(ctx context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(f.rows, id)
	return nil
}

type fakeContents struct {
	rows   map[string]*models.ContentItem
	seq    int
	counts []models.StatusCount
	totals *models.EngagementTotals
}

func newFakeContents() *fakeContents {
	return &fakeContents{rows: map[string]*models.ContentItem{}}
}

func (f *fakeContents) Create(ctx context.Context, tx *sql.Tx, item *models.ContentItem) (string, error) {
	f.seq++
	id := fmt.Sprintf("content-%d", f.seq)
	cp := *item
	cp.ID = id
	f.rows[id] = &cp
	return id, nil
}

func (f *fakeContents) GetByID(ctx context.Context, id string) (*models.ContentItem, error) {
	item, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (f *fakeContents) List(ctx context.Context, filter models.ItemFilter) ([]*models.ContentItem, error) {
	out := []*models.ContentItem{}
	for _, item := range f.rows {
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeContents) ListBetween(ctx context.Context, projectID string, from, to time.Time) ([]*models.ContentItem, error) {
	out := []*models.ContentItem{}
	for _, item := range f.rows {
		at := item.PostingTime
		if item.PostedAt != nil {
			at = item.PostedAt
		}
		if at != nil && !at.Before(from) && at.Before(to) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeContents) Update(ctx context.Context, item *models.ContentItem) error {
	if _, ok := f.rows[item.ID]; !ok {
		return repository.ErrNoRowsAffected
	}
	cp := *item
	f.rows[item.ID] = &cp
	return nil
}

func (f *fakeContents) Approve(ctx context.Context, id, status, approvedBy string) error {
	item, ok := f.rows[id]
	if !ok {
		return repository.ErrNoRowsAffected
	}
	now := time.Now()
	item.Status = status
	item.ApprovedBy = approvedBy
	item.ApprovedAt = &now
	return nil
}

func (f *fakeContents) CountByStatus(ctx context.Context, projectID string) ([]models.StatusCount, error) {
	return f.counts, nil
}

func (f *fakeContents) EngagementTotals(ctx context.Context, projectID string) (*models.EngagementTotals, error) {
	if f.totals == nil {
		return &models.EngagementTotals{}, nil
	}
	return f.totals, nil
}

func (f *fakeContents) Remove(ctx context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(f.rows, id)
	return nil
}

type fakeVideos struct {
	rows   map[string]*models.VideoItem
	seq    int
	counts []models.StatusCount
}

func newFakeVideos() *fakeVideos {
	return &fakeVideos{rows: map[string]*models.VideoItem{}}
}

func (f *fakeVideos) Create(ctx context.Context, tx *sql.Tx, item *models.VideoItem) (string, error) {
	f.seq++
	id := fmt.Sprintf("video-%d", f.seq)
	cp := *item
	cp.ID = id
	f.rows[id] = &cp
	return id, nil
}

func (f *fakeVideos) GetByID(ctx context.Context, id string) (*models.VideoItem, error) {
	item, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (f *fakeVideos) List(ctx context.Context, filter models.ItemFilter) ([]*models.VideoItem, error) {
	out := []*models.VideoItem{}
	for _, item := range f.rows {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeVideos) ListBetween(ctx context.Context, projectID string, from, to time.Time) ([]*models.VideoItem, error) {
	out := []*models.VideoItem{}
	for _, item := range f.rows {
		at := item.PostingTime
		if item.PostedAt != nil {
			at = item.PostedAt
		}
		if at != nil && !at.Before(from) && at.Before(to) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeVideos) Update(ctx context.Context, item *models.VideoItem) error {
	if _, ok := f.rows[item.ID]; !ok {
		return repository.ErrNoRowsAffected
	}
	cp := *item
	f.rows[item.ID] = &cp
	return nil
}

func (f *fakeVideos) Approve(ctx context.Context, id, status, approvedBy string) error {
	item, ok := f.rows[id]
	if !ok {
		return repository.ErrNoRowsAffected
	}
	item.Status = status
	item.ApprovedBy = approvedBy
	return nil
}

func (f *fakeVideos) CountByStatus(ctx context.Context, projectID string) ([]models.StatusCount, error) {
	return f.counts, nil
}

func (f *fakeVideos) EngagementTotals(ctx context.Context, projectID string) (*models.EngagementTotals, error) {
	return &models.EngagementTotals{}, nil
}

func (f *fakeVideos) Remove(ctx context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(f.rows, id)
	return nil
}

type fakeActivity struct {
	mu      sync.Mutex
	entries []*models.ActivityLog
}

func (f *fakeActivity) Create(ctx context.Context, tx *sql.Tx, l *models.ActivityLog) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, l)
	return fmt.Sprintf("log-%d", len(f.entries)), nil
}

func (f *fakeActivity) List(ctx context.Context, filter models.ActivityFilter) ([]*models.ActivityLog, error) {
	return f.entries, nil
}

func (f *fakeActivity) actions() []string {
	out := []string{}
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}

type dispatched struct {
	path    string
	payload interface{}
	origin  queue.Origin
}

type fakeDispatcher struct {
	calls []dispatched
	err   error
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, path string, payload interface{}, origin queue.Origin) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, dispatched{path: path, payload: payload, origin: origin})
	return nil
}

type fakeAccounts struct {
	rows map[string]*models.Account
	seq  int
}

func (f *fakeAccounts) Create(ctx context.Context, tx *sql.Tx, a *models.Account) (string, error) {
	f.seq++
	id := fmt.Sprintf("account-%d", f.seq)
	cp := *a
	cp.ID = id
	f.rows[id] = &cp
	return id, nil
}

func (f *fakeAccounts) GetByID(ctx context.Context, id string) (*models.Account, error) {
	a, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccounts) List(ctx context.Context, projectID, platform string) ([]*models.Account, error) {
	out := []*models.Account{}
	for _, a := range f.rows {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAccounts) Update(ctx context.Context, a *models.Account) error {
	cp := *a
	f.rows[a.ID] = &cp
	return nil
}

func (f *fakeAccounts) Remove(ctx context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

type fakeUsers struct {
	rows map[string]*models.User
	seq  int
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{rows: map[string]*models.User{}}
	for _, u := range users {
		f.rows[u.ID] = u
	}
	return f
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*models.User, bool, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, false, nil
	}
	cp := *u
	return &cp, true, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	for _, u := range f.rows {
		if u.Email == email {
			cp := *u
			return &cp, true, nil
		}
	}
	return nil, false, nil
}

func (f *fakeUsers) List(ctx context.Context) ([]*models.User, error) {
	out := []*models.User{}
	for _, u := range f.rows {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) Count(ctx context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeUsers) Create(ctx context.Context, tx *sql.Tx, user *models.User) (string, error) {
	f.seq++
	id := fmt.Sprintf("user-%d", f.seq)
	cp := *user
	cp.ID = id
	f.rows[id] = &cp
	return id, nil
}

func (f *fakeUsers) Update(ctx context.Context, user *models.User) error {
	if _, ok := f.rows[user.ID]; !ok {
		return repository.ErrNoRowsAffected
	}
	cp := *user
	f.rows[user.ID] = &cp
	return nil
}

func (f *fakeUsers) Remove(ctx context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(f.rows, id)
	return nil
}

type fakeAIModels struct {
	rows []*models.AIModel
}

func (f *fakeAIModels) Create(ctx context.Context, tx *sql.Tx, m *models.AIModel) (string, error) {
	cp := *m
	cp.ID = fmt.Sprintf("model-%d", len(f.rows)+1)
	f.rows = append(f.rows, &cp)
	return cp.ID, nil
}

func (f *fakeAIModels) GetByID(ctx context.Context, id string) (*models.AIModel, error) {
	for _, m := range f.rows {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeAIModels) List(ctx context.Context, mediaType string) ([]*models.AIModel, error) {
	return f.rows, nil
}

func (f *fakeAIModels) Update(ctx context.Context, m *models.AIModel) error { return nil }

func (f *fakeAIModels) Remove(ctx context.Context, id string) error { return nil }

type fakeCostLogs struct {
	rows []*models.CostLog
}

func (f *fakeCostLogs) Create(ctx context.Context, tx *sql.Tx, l *models.CostLog) (string, error) {
	cp := *l
	cp.ID = fmt.Sprintf("cost-%d", len(f.rows)+1)
	f.rows = append(f.rows, &cp)
	return cp.ID, nil
}

func (f *fakeCostLogs) List(ctx context.Context, filter models.CostFilter) ([]*models.CostLog, error) {
	return f.rows, nil
}

type stubSchedules struct {
	rows       []*models.Schedule
	activeOnly bool
}

func (s *stubSchedules) Create(ctx context.Context, tx *sql.Tx, sc *models.Schedule) (string, error) {
	cp := *sc
	cp.ID = fmt.Sprintf("schedule-%d", len(s.rows)+1)
	s.rows = append(s.rows, &cp)
	return cp.ID, nil
}

func (s *stubSchedules) GetByID(ctx context.Context, id string) (*models.Schedule, error) {
	for _, sc := range s.rows {
		if sc.ID == id {
			return sc, nil
		}
	}
	return nil, nil
}

func (s *stubSchedules) List(ctx context.Context, projectID string, activeOnly bool) ([]*models.Schedule, error) {
	s.activeOnly = activeOnly
	return s.rows, nil
}

func (s *stubSchedules) Update(ctx context.Context, sc *models.Schedule) error { return nil }

func (s *stubSchedules) Remove(ctx context.Context, id string) error { return nil }
