package workflow

import (
	"strings"

	"github.com/maheshrc27/contentops/internal/models"
)

// Form field names, shared by content and video forms.
const (
	FieldProject     = "projectId"
	FieldIdea        = "idea"
	FieldTopic       = "topic"
	FieldCriteria    = "criteria"
	FieldPlatform    = "platform"
	FieldPlatforms   = "platforms"
	FieldContent     = "content"
	FieldImageLink   = "imageLink"
	FieldVideoLink   = "videoLink"
	FieldDuration    = "duration"
	FieldPostingTime = "postingTime"
	FieldAccount     = "accountId"
)

// Action names the dashboard buttons.
const (
	ActionApproveIdea       = "approve_idea"
	ActionApproveContent    = "approve_content"
	ActionSchedulePost      = "schedule_post"
	ActionRemovePost        = "remove_post"
	ActionRefreshEngagement = "refresh_engagement"
	ActionEditAI            = "edit_ai"
)

// FieldStates maps a field name to whether it is editable.
type FieldStates map[string]bool

// Form is what GET /:id/form returns for an item.
type Form struct {
	Status  string      `json:"status"`
	Fields  FieldStates `json:"fields"`
	Missing []string    `json:"missing"`
	Valid   bool        `json:"valid"`
	Actions []string    `json:"actions"`
}

func fieldsFor(kind string) []string {
	if kind == models.ItemTypeVideo {
		return []string{FieldProject, FieldIdea, FieldTopic, FieldCriteria, FieldPlatforms,
			FieldContent, FieldImageLink, FieldVideoLink, FieldDuration, FieldPostingTime, FieldAccount}
	}
	return []string{FieldProject, FieldIdea, FieldTopic, FieldCriteria, FieldPlatform,
		FieldContent, FieldImageLink, FieldPostingTime, FieldAccount}
}

func editableFor(kind, status string) map[string]bool {
	platform := FieldPlatform
	if kind == models.ItemTypeVideo {
		platform = FieldPlatforms
	}

	switch status {
	case StatusIdea:
		return set(FieldProject, FieldIdea, FieldTopic, FieldCriteria, platform)
	case StatusAwaitingContentApproval:
		return set(FieldContent, FieldImageLink, FieldVideoLink, FieldDuration, FieldPostingTime)
	case StatusContentApproved:
		return set(FieldPostingTime, FieldAccount)
	case StatusError:
		return set(fieldsFor(kind)...)
	default:
		return set()
	}
}

// Fields reports, for every field of the item kind, whether the status
// leaves it editable.
func Fields(kind, status string) FieldStates {
	editable := editableFor(kind, status)
	states := FieldStates{}
	for _, f := range fieldsFor(kind) {
		states[f] = editable[f]
	}
	return states
}

// Actions lists the buttons the dashboard shows for a status.
func Actions(status string) []string {
	switch status {
	case StatusIdea:
		return []string{ActionApproveIdea, ActionEditAI}
	case StatusAwaitingContentApproval:
		return []string{ActionApproveContent, ActionEditAI}
	case StatusContentApproved:
		return []string{ActionSchedulePost}
	case StatusPostedSuccessfully:
		return []string{ActionRemovePost, ActionRefreshEngagement}
	case StatusError:
		return []string{ActionEditAI}
	default:
		return []string{}
	}
}

// MissingContent lists the required fields a content item lacks for its status.
func MissingContent(item *models.ContentItem) []string {
	missing := missingBase(&item.ItemBase)
	switch item.Status {
	case StatusAwaitingContentApproval:
		if blank(item.Content) {
			missing = append(missing, FieldContent)
		}
	case StatusContentApproved:
		if blank(item.Platform) {
			missing = append(missing, FieldPlatform)
		}
	}
	return missing
}

// MissingVideo lists the required fields a video item lacks for its status.
func MissingVideo(item *models.VideoItem) []string {
	missing := missingBase(&item.ItemBase)
	if len(item.Platforms) == 0 {
		missing = append(missing, FieldPlatforms)
	}
	if item.Status == StatusAwaitingContentApproval && blank(item.VideoLink) {
		missing = append(missing, FieldVideoLink)
	}
	return missing
}

func missingBase(item *models.ItemBase) []string {
	missing := []string{}
	switch item.Status {
	case StatusIdea:
		if blank(item.ProjectID) {
			missing = append(missing, FieldProject)
		}
		if blank(item.Idea) {
			missing = append(missing, FieldIdea)
		}
	case StatusContentApproved:
		if item.PostingTime == nil {
			missing = append(missing, FieldPostingTime)
		}
	}
	return missing
}

func ContentForm(item *models.ContentItem) Form {
	missing := MissingContent(item)
	return Form{
		Status:  item.Status,
		Fields:  Fields(models.ItemTypeContent, item.Status),
		Missing: missing,
		Valid:   len(missing) == 0,
		Actions: Actions(item.Status),
	}
}

func VideoForm(item *models.VideoItem) Form {
	missing := MissingVideo(item)
	return Form{
		Status:  item.Status,
		Fields:  Fields(models.ItemTypeVideo, item.Status),
		Missing: missing,
		Valid:   len(missing) == 0,
		Actions: Actions(item.Status),
	}
}

func set(fields ...string) map[string]bool {
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	return m
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
