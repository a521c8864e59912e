package event

import "github.com/cityvent/events-api/internal/httperr"

// ===============================
// Event Status
// ===============================

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

// CanPublish: only drafts (or already-published events being
// re-committed with a new schedule) may be published.
func CanPublish(current Status) error {
	if current != StatusDraft && current != StatusPublished {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: a cancelled event stays cancelled.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusDraft
}
