package workflow

import (
	"testing"
	"time"

	"github.com/maheshrc27/contentops/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, Valid(s), s)
	}
	assert.False(t, Valid(""))
	assert.False(t, Valid("published"))
	assert.False(t, Valid("IDEA"))
}

func TestFieldsByStatus(t *testing.T) {
	tests := []struct {
		status   string
		editable []string
	}{
		{StatusIdea, []string{FieldProject, FieldIdea, FieldTopic, FieldCriteria, FieldPlatform}},
		{StatusIdeaApproved, nil},
		{StatusAIGeneratingContent, nil},
		{StatusAwaitingContentApproval, []string{FieldContent, FieldImageLink, FieldPostingTime}},
		{StatusContentApproved, []string{FieldPostingTime, FieldAccount}},
		{StatusPostedSuccessfully, nil},
		{StatusRemoved, nil},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			fields := Fields(models.ItemTypeContent, tt.status)
			want := set(tt.editable...)
			for name, editable := range fields {
				assert.Equal(t, want[name], editable, "field %s", name)
			}
		})
	}
}

func TestFieldsErrorUnlocksEverything(t *testing.T) {
	for name, editable := range Fields(models.ItemTypeVideo, StatusError) {
		assert.True(t, editable, name)
	}
}

func TestVideoFieldsUsePlatforms(t *testing.T) {
	fields := Fields(models.ItemTypeVideo, StatusIdea)
	assert.True(t, fields[FieldPlatforms])
	_, hasSingle := fields[FieldPlatform]
	assert.False(t, hasSingle)
	assert.False(t, fields[FieldVideoLink])
}

func TestActions(t *testing.T) {
	assert.Equal(t, []string{ActionApproveIdea, ActionEditAI}, Actions(StatusIdea))
	assert.Equal(t, []string{ActionSchedulePost}, Actions(StatusContentApproved))
	assert.Equal(t, []string{ActionRemovePost, ActionRefreshEngagement}, Actions(StatusPostedSuccessfully))
	assert.Empty(t, Actions(StatusRemoved))
	assert.Empty(t, Actions("unknown"))
}

func TestMissingContent(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		item    models.ContentItem
		missing []string
	}{
		{
			name:    "idea without text",
			item:    models.ContentItem{ItemBase: models.ItemBase{Status: StatusIdea}},
			missing: []string{FieldProject, FieldIdea},
		},
		{
			name: "complete idea",
			item: models.ContentItem{ItemBase: models.ItemBase{Status: StatusIdea, ProjectID: "p1", Idea: "Autumn sale"}},
		},
		{
			name:    "awaiting approval without caption",
			item:    models.ContentItem{ItemBase: models.ItemBase{Status: StatusAwaitingContentApproval, Content: "  "}},
			missing: []string{FieldContent},
		},
		{
			name:    "approved without schedule",
			item:    models.ContentItem{ItemBase: models.ItemBase{Status: StatusContentApproved}},
			missing: []string{FieldPostingTime, FieldPlatform},
		},
		{
			name: "approved and scheduled",
			item: models.ContentItem{ItemBase: models.ItemBase{Status: StatusContentApproved, PostingTime: &now}, Platform: "facebook"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing := MissingContent(&tt.item)
			if len(tt.missing) == 0 {
				assert.Empty(t, missing)
				return
			}
			assert.Equal(t, tt.missing, missing)
		})
	}
}

func TestMissingVideo(t *testing.T) {
	item := models.VideoItem{ItemBase: models.ItemBase{Status: StatusAwaitingContentApproval}}
	assert.Equal(t, []string{FieldPlatforms, FieldVideoLink}, MissingVideo(&item))

	item.Platforms = []string{"youtube", "tiktok"}
	item.VideoLink = "https://cdn.example.com/v.mp4"
	assert.Empty(t, MissingVideo(&item))
}

func TestContentForm(t *testing.T) {
	form := ContentForm(&models.ContentItem{ItemBase: models.ItemBase{Status: StatusIdea, ProjectID: "p1"}})
	assert.False(t, form.Valid)
	assert.Equal(t, []string{FieldIdea}, form.Missing)
	assert.True(t, form.Fields[FieldIdea])
	assert.Equal(t, Actions(StatusIdea), form.Actions)
}
