package event

import (
	"context"

	"github.com/cityvent/events-api/internal/audit"
	domain "github.com/cityvent/events-api/internal/domain/event"
	"github.com/cityvent/events-api/internal/httperr"
	"github.com/cityvent/events-api/internal/models"
	"github.com/cityvent/events-api/internal/timezone"
)

type CancelEvent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelEvent(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelEvent {
	return &CancelEvent{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelEvent) Execute(
	ctx context.Context,
	organizerID uint,
	userID uint,
	eventID uint,
) (*models.Event, error) {

	org, err := uc.repo.GetOrganizerByID(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	ev, err := uc.repo.GetEventForOrganizer(ctx, eventID, organizerID)
	if err != nil {
		return nil, httperr.ErrBusiness("event_not_found")
	}

	now := timezone.NowIn(org.Timezone)
	if err := domain.Cancel(ev, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEvent(ctx, ev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizerID: organizerID,
		UserID:      &userID,
		Action:      "event_cancelled",
		Entity:      "event",
		EntityID:    &ev.ID,
	})

	return ev, nil
}
