// Package workflow describes the content and video lifecycle: the closed set
// of statuses, which form fields each status leaves editable, which actions
// the dashboard offers, and which fields a submission must carry.
//
// Nothing here enforces transitions. Any status may be written to any item.
package workflow

const (
	StatusIdea                    = "idea"
	StatusIdeaApproved            = "idea_approved"
	StatusAIGeneratingContent     = "ai_generating_content"
	StatusAwaitingContentApproval = "awaiting_content_approval"
	StatusContentApproved         = "content_approved"
	StatusPostedSuccessfully      = "posted_successfully"
	StatusError                   = "error"
	StatusRemoved                 = "removed"
)

var statuses = []string{
	StatusIdea,
	StatusIdeaApproved,
	StatusAIGeneratingContent,
	StatusAwaitingContentApproval,
	StatusContentApproved,
	StatusPostedSuccessfully,
	StatusError,
	StatusRemoved,
}

// Statuses returns the lifecycle statuses in pipeline order.
func Statuses() []string {
	out := make([]string, len(statuses))
	copy(out, statuses)
	return out
}

func Valid(status string) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
