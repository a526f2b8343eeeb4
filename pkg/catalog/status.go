package catalog

// Status is the review-workflow state of an asset.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusPublished Status = "published"
)

// ValidStatus reports whether s is one of the known workflow states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusReview, StatusPublished:
		return true
	}
	return false
}

// CanTransition reports whether the review workflow allows moving an asset
// from one status to another. Drafts are submitted for review, reviewed
// assets are either published or sent back to draft. Published assets are
// immutable; a new version starts a new draft.
func CanTransition(from Status, to Status) bool {
	switch from {
	case StatusDraft:
		return to == StatusReview
	case StatusReview:
		return to == StatusPublished || to == StatusDraft
	}
	return false
}
