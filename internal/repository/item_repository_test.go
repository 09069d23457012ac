package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/maheshrc27/contentops/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func columnNames(list string) []string {
	var names []string
	for _, part := range strings.Split(list, ",") {
		names = append(names, strings.TrimSpace(part))
	}
	return names
}

func anyArgs(n int) []driver.Value {
	args := make([]driver.Value, n)
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	return args
}

// platformsArg matches a text[] parameter holding exactly the given values.
type platformsArg []string

func (p platformsArg) Match(v driver.Value) bool {
	var got pq.StringArray
	if err := got.Scan(v); err != nil {
		return false
	}
	return reflect.DeepEqual([]string(got), []string(p))
}

// baseRow returns one value per itemBaseColumns entry, each distinct so a
// shifted scan target shows up as a wrong field.
func baseRow(approvedAt, postingTime, postedAt interface{}, created, updated time.Time) []driver.Value {
	return []driver.Value{
		"c1", "p1", "posted_successfully", "idea", "topic", "criteria", "reel", "body",
		"img", "a1", "post-1", "https://x/post-1", "boss@example.com", approvedAt, postingTime,
		postedAt, int64(10), int64(20), int64(30), int64(40), "analysis", "suggestion", "boom",
		created, updated,
	}
}

func TestBaseColumnsMatchTargets(t *testing.T) {
	var b models.ItemBase
	assert.Len(t, itemBaseTargets(&b), len(columnNames(itemBaseColumns)))
	// values skip id, created_at and updated_at
	assert.Len(t, itemBaseValues(&b), len(columnNames(itemBaseColumns))-3)
}

func TestContentGetByIDScansEveryColumn(t *testing.T) {
	db, mock := newMock(t)
	repo := NewContentRepository(db)

	approved := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	posting := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	created := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	values := append(baseRow(approved, posting, nil, created, updated), "facebook")
	rows := sqlmock.NewRows(columnNames(contentColumns)).AddRow(values...)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM contents WHERE id = $1`)).WithArgs("c1").WillReturnRows(rows)

	item, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, "c1", item.ID)
	assert.Equal(t, "p1", item.ProjectID)
	assert.Equal(t, "posted_successfully", item.Status)
	assert.Equal(t, "reel", item.ContentType)
	assert.Equal(t, "img", item.ImageLink)
	assert.Equal(t, "a1", item.AccountID)
	assert.Equal(t, "https://x/post-1", item.PostURL)
	assert.Equal(t, "boss@example.com", item.ApprovedBy)
	require.NotNil(t, item.ApprovedAt)
	assert.True(t, approved.Equal(*item.ApprovedAt))
	require.NotNil(t, item.PostingTime)
	assert.True(t, posting.Equal(*item.PostingTime))
	assert.Nil(t, item.PostedAt)
	assert.Equal(t, int64(10), item.Views)
	assert.Equal(t, int64(20), item.Likes)
	assert.Equal(t, int64(30), item.Comments)
	assert.Equal(t, int64(40), item.Shares)
	assert.Equal(t, "analysis", item.AIAnalysis)
	assert.Equal(t, "suggestion", item.AISuggestion)
	assert.Equal(t, "boom", item.ErrorMessage)
	assert.True(t, created.Equal(item.CreatedAt))
	assert.True(t, updated.Equal(item.UpdatedAt))
	assert.Equal(t, "facebook", item.Platform)
}

func TestContentGetByIDMissing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewContentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM contents WHERE id = $1`)).WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(columnNames(contentColumns)))

	item, err := repo.GetByID(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestContentCreateBindsEveryColumn(t *testing.T) {
	db, mock := newMock(t)
	repo := NewContentRepository(db)

	item := &models.ContentItem{
		ItemBase: models.ItemBase{ProjectID: "p1", Status: "idea", Idea: "launch"},
		Platform: "threads",
	}
	args := anyArgs(24)
	args[1] = "p1"
	args[2] = "idea"
	args[3] = "launch"
	args[23] = "threads"
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO contents`)).WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Create(context.Background(), nil, item)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestContentUpdatePlaceholders(t *testing.T) {
	db, mock := newMock(t)
	repo := NewContentRepository(db)

	item := &models.ContentItem{
		ItemBase: models.ItemBase{ID: "c1", ProjectID: "p1", Status: "posted_successfully", ErrorMessage: "late"},
		Platform: "instagram",
	}
	args := anyArgs(25)
	args[0] = "p1"
	args[1] = "posted_successfully"
	args[21] = "late"
	args[22] = "instagram"
	args[24] = "c1"

	mock.ExpectExec(regexp.QuoteMeta(`error_message = $22, platform = $23, updated_at = $24`)).WithArgs(args...).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), item))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE contents`)).WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(context.Background(), item), ErrNoRowsAffected)
}

func TestContentListBetweenIsHalfOpen(t *testing.T) {
	db, mock := newMock(t)
	repo := NewContentRepository(db)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM contents WHERE COALESCE(posted_at, posting_time) >= $1 AND COALESCE(posted_at, posting_time) < $2 AND project_id = $3 ORDER BY COALESCE(posted_at, posting_time)`)).
		WithArgs(from, to, "p1").
		WillReturnRows(sqlmock.NewRows(columnNames(contentColumns)))

	items, err := repo.ListBetween(context.Background(), "p1", from, to)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)

	mock.ExpectQuery(regexp.QuoteMeta(`COALESCE(posted_at, posting_time) < $2 ORDER BY`)).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows(columnNames(contentColumns)))

	_, err = repo.ListBetween(context.Background(), "", from, to)
	require.NoError(t, err)
}

func TestContentApproveAndRemove(t *testing.T) {
	db, mock := newMock(t)
	repo := NewContentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $4`)).
		WithArgs("idea_approved", "boss@example.com", sqlmock.AnyArg(), "c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Approve(context.Background(), "c1", "idea_approved", "boss@example.com"))

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM contents WHERE id = $1`)).WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Remove(context.Background(), "gone"), ErrNoRowsAffected)
}

func TestCheckAffected(t *testing.T) {
	assert.NoError(t, checkAffected(sqlmock.NewResult(0, 2)))
	assert.ErrorIs(t, checkAffected(sqlmock.NewResult(0, 0)), ErrNoRowsAffected)

	broken := errors.New("driver cannot count")
	assert.ErrorIs(t, checkAffected(sqlmock.NewErrorResult(broken)), broken)
}

func TestCountByStatusScopesToProject(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVideoRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, COUNT(*) FROM videos WHERE project_id = $1 GROUP BY status`)).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("idea", 3).AddRow("posted_successfully", 1))

	counts, err := repo.CountByStatus(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, []models.StatusCount{{Status: "idea", Count: 3}, {Status: "posted_successfully", Count: 1}}, counts)
}

func TestVideoPlatformsRoundTrip(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVideoRepository(db)

	created := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	values := append(baseRow(nil, nil, nil, created, created), []byte(`{youtube,tiktok}`), int64(95), "https://cdn/v.mp4")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM videos WHERE id = $1`)).WithArgs("v1").
		WillReturnRows(sqlmock.NewRows(columnNames(videoColumns)).AddRow(values...))

	item, err := repo.GetByID(context.Background(), "v1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, []string{"youtube", "tiktok"}, item.Platforms)
	assert.Equal(t, 95, item.Duration)
	assert.Equal(t, "https://cdn/v.mp4", item.VideoLink)
	assert.Nil(t, item.ApprovedAt)

	args := anyArgs(26)
	args[23] = platformsArg{"youtube", "tiktok"}
	args[24] = int64(95)
	args[25] = "https://cdn/v.mp4"
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO videos`)).WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err = repo.Create(context.Background(), nil, item)
	require.NoError(t, err)
}

func TestVideoNullPlatformsScanEmpty(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVideoRepository(db)

	created := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	values := append(baseRow(nil, nil, nil, created, created), nil, int64(0), "")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM videos`)).
		WillReturnRows(sqlmock.NewRows(columnNames(videoColumns)).AddRow(values...))

	items, err := repo.List(context.Background(), models.ItemFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.NotNil(t, items[0].Platforms)
	assert.Empty(t, items[0].Platforms)
}

func TestVideoUpdatePlaceholders(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVideoRepository(db)

	item := &models.VideoItem{
		ItemBase:  models.ItemBase{ID: "v1", ProjectID: "p1", Status: "content_approved"},
		Duration:  30,
		VideoLink: "https://cdn/v.mp4",
	}
	args := anyArgs(27)
	args[0] = "p1"
	args[1] = "content_approved"
	args[22] = platformsArg{}
	args[23] = int64(30)
	args[24] = "https://cdn/v.mp4"
	args[26] = "v1"

	mock.ExpectExec(regexp.QuoteMeta(`platforms = $23, duration = $24, video_link = $25, updated_at = $26`)).WithArgs(args...).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), item))
}
