package event

import (
	"context"

	domain "github.com/cityvent/events-api/internal/domain/event"
	"github.com/cityvent/events-api/internal/dto"
	"github.com/cityvent/events-api/internal/timezone"
)

// ListMyEvents is the organizer dashboard listing: every event of the
// organizer, drafts included, annotated with current liveness.
type ListMyEvents struct {
	repo domain.Repository
}

func NewListMyEvents(
	repo domain.Repository,
) *ListMyEvents {
	return &ListMyEvents{
		repo: repo,
	}
}

func (uc *ListMyEvents) Execute(
	ctx context.Context,
	organizerID uint,
) ([]dto.EventListDTO, error) {

	org, err := uc.repo.GetOrganizerByID(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	events, err := uc.repo.ListEventsForOrganizer(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(org.Timezone)

	out := make([]dto.EventListDTO, 0, len(events))
	for i := range events {
		ev := &events[i]
		win := domain.ResolveLive(ev, now)

		out = append(out, dto.EventListDTO{
			ID:          ev.ID,
			PublicID:    ev.PublicID,
			Title:       ev.Title,
			Status:      ev.Status,
			Category:    ev.Category,
			Venue:       ev.Venue,
			City:        ev.City,
			StartsAt:    ev.StartsAt,
			EndsAt:      ev.EndsAt,
			CoverURL:    ev.CoverURL,
			TicketPrice: ev.TicketPrice,
			IsLive:      win.IsLive,
			LiveUntil:   win.LiveUntil,
		})
	}

	return out, nil
}
