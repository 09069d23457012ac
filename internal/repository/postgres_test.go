package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/maheshrc27/contentops/internal/database"
	"github.com/maheshrc27/contentops/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openPostgres connects to POSTGRES_URI and applies the schema. Tests that
// need it are skipped when the variable is unset.
func openPostgres(t *testing.T) *sql.DB {
	t.Helper()
	uri := os.Getenv("POSTGRES_URI")
	if uri == "" {
		t.Skip("POSTGRES_URI not set")
	}
	ctx := context.Background()
	db, err := database.Open(ctx, uri)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(ctx, db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPostgresVideoWindowAndPlatforms(t *testing.T) {
	db := openPostgres(t)
	ctx := context.Background()

	projects := NewProjectRepository(db)
	projectID, err := projects.Create(ctx, nil, &models.Project{Name: "repository test"})
	require.NoError(t, err)
	t.Cleanup(func() { projects.Remove(ctx, projectID) })

	videos := NewVideoRepository(db)
	from := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	atStart := from
	atEnd := to
	postedInside := from.Add(48 * time.Hour)
	scheduledOutside := to.Add(time.Hour)

	create := func(posting, posted *time.Time, platforms []string) string {
		id, err := videos.Create(ctx, nil, &models.VideoItem{
			ItemBase:  models.ItemBase{ProjectID: projectID, Status: "content_approved", PostingTime: posting, PostedAt: posted},
			Platforms: platforms,
		})
		require.NoError(t, err)
		return id
	}
	first := create(&atStart, nil, []string{"youtube", "tiktok"})
	create(&atEnd, nil, nil)
	// posted_at wins over posting_time
	moved := create(&scheduledOutside, &postedInside, []string{"facebook"})

	items, err := videos.ListBetween(ctx, projectID, from, to)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0].ID)
	assert.Equal(t, []string{"youtube", "tiktok"}, items[0].Platforms)
	assert.Equal(t, moved, items[1].ID)

	all, err := videos.List(ctx, models.ItemFilter{ProjectID: projectID})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, v := range all {
		assert.NotNil(t, v.Platforms)
	}

	assert.ErrorIs(t, videos.Remove(ctx, "missing"), ErrNoRowsAffected)
}
