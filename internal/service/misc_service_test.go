package service

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/maheshrc27/contentops/internal/transfer"
	"github.com/maheshrc27/contentops/internal/webhook"
	"github.com/maheshrc27/contentops/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsFillsEveryStatus(t *testing.T) {
	contents := newFakeContents()
	contents.counts = []models.StatusCount{{Status: workflow.StatusIdea, Count: 3}, {Status: workflow.StatusError, Count: 1}}
	contents.totals = &models.EngagementTotals{Views: 100, Likes: 7}
	videos := newFakeVideos()
	videos.counts = []models.StatusCount{{Status: workflow.StatusPostedSuccessfully, Count: 2}}

	stats, err := NewDashboardService(contents, videos).Stats(context.Background(), "")
	require.NoError(t, err)

	assert.Len(t, stats.Contents.ByStatus, len(workflow.Statuses()))
	assert.Equal(t, int64(3), stats.Contents.ByStatus[workflow.StatusIdea])
	assert.Equal(t, int64(0), stats.Contents.ByStatus[workflow.StatusRemoved])
	assert.Equal(t, int64(4), stats.Contents.Total)
	assert.Equal(t, int64(100), stats.Contents.Engagement.Views)
	assert.Equal(t, int64(2), stats.Videos.Total)
}

func TestUserServiceAdminRules(t *testing.T) {
	users := newFakeUsers(
		&models.User{ID: "u-admin", Email: "admin@example.com", Role: models.RoleAdmin},
		&models.User{ID: "u2", Email: "ed@example.com", Role: models.RoleViewer},
	)
	svc := NewUserService(users, &fakeActivity{})
	viewer := models.Actor{UserID: "u2", Role: models.RoleViewer}

	_, err := svc.Update(context.Background(), viewer, "u2", &transfer.UserUpdate{Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.RemoveUser(context.Background(), viewer, "u-admin"), ErrForbidden)

	_, err = svc.Update(context.Background(), testActor, "u-admin", &transfer.UserUpdate{Role: models.RoleViewer})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, svc.RemoveUser(context.Background(), testActor, "u-admin"), ErrInvalidInput)

	user, err := svc.Update(context.Background(), testActor, "u2", &transfer.UserUpdate{Role: models.RoleEditor})
	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, user.Role)

	require.NoError(t, svc.RemoveUser(context.Background(), testActor, "u2"))
	_, err = svc.GetUserInfo(context.Background(), "u2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthUpsertFirstUserIsAdmin(t *testing.T) {
	users := newFakeUsers()
	svc := &authService{u: users}

	first, err := svc.upsert(context.Background(), &transfer.GoogleUserInfo{ID: "g1", Email: "a@example.com", Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role)
	assert.NotEmpty(t, first.ID)

	second, err := svc.upsert(context.Background(), &transfer.GoogleUserInfo{ID: "g2", Email: "b@example.com"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleViewer, second.Role)

	again, err := svc.upsert(context.Background(), &transfer.GoogleUserInfo{ID: "g1", Email: "a@example.com", Picture: "p.png"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "p.png", users.rows[first.ID].ProfilePicture)
	assert.Len(t, users.rows, 2)
}

func TestWebhookServiceRemovePostShapes(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	svc := NewWebhookService(dispatcher, &fakeActivity{})

	require.NoError(t, svc.RemovePost(context.Background(), testActor, &transfer.RemovePostRequest{
		PostURL: "https://fb.com/1", Platform: "facebook", Project: "Cafe",
	}))
	require.NoError(t, svc.RemovePost(context.Background(), testActor, &transfer.RemovePostRequest{
		PostURL: "https://youtu.be/2", Platform: "youtube", ItemID: "v2", PostID: "yt2", AccountID: "a1",
	}))

	require.Len(t, dispatcher.calls, 2)
	assert.Equal(t, webhook.RemoveContentPost{PostURL: "https://fb.com/1", Platform: "facebook", Project: "Cafe"}, dispatcher.calls[0].payload)
	assert.Empty(t, dispatcher.calls[0].origin.EntityID)
	assert.IsType(t, webhook.RemoveVideoPost{}, dispatcher.calls[1].payload)
	assert.Equal(t, "v2", dispatcher.calls[1].origin.EntityID)
}

func TestWebhookServiceSearchIdeasLogsActivity(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	activity := &fakeActivity{}
	svc := NewWebhookService(dispatcher, activity)

	require.NoError(t, svc.SearchIdeas(context.Background(), testActor, &transfer.SearchIdeasRequest{PostType: "content"}))
	assert.Equal(t, webhook.PathSearchIdeas, dispatcher.calls[0].path)
	assert.Equal(t, []string{models.ActionSearchIdeas}, activity.actions())

	require.NoError(t, svc.Engagement(context.Background(), testActor, &transfer.EngagementRequest{PostType: "video"}))
	assert.Len(t, activity.entries, 1)
}

func TestScheduleCalendarPlacesPosts(t *testing.T) {
	contents := newFakeContents()
	at := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
	contents.rows["c1"] = &models.ContentItem{ItemBase: models.ItemBase{ID: "c1", ProjectID: "p1", PostingTime: &at}}
	schedules := &stubSchedules{rows: []*models.Schedule{
		{ID: "s1", ProjectID: "p1", Frequency: models.FrequencyDaily, PostingTime: "09:00", IsActive: true},
	}}
	svc := NewScheduleService(schedules, contents, newFakeVideos(), newFakeProjects(), &fakeActivity{}, time.UTC)

	days, err := svc.Calendar(context.Background(), 2024, time.February, "")
	require.NoError(t, err)
	require.Len(t, days, 29)
	assert.Len(t, days[9].Posts, 1)
	assert.Equal(t, "c1", days[9].Posts[0].ID)
	assert.Len(t, days[0].Entries, 1)
	assert.True(t, schedules.activeOnly)

	_, err = svc.Calendar(context.Background(), 2024, 13, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
