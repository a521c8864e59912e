package event

import (
	"context"
	"time"

	domain "github.com/cityvent/events-api/internal/domain/event"
	"github.com/cityvent/events-api/internal/dto"
	"github.com/cityvent/events-api/internal/httperr"
	"github.com/cityvent/events-api/internal/schedule"
)

// ListEventsByDate powers the public discovery feed: events whose
// active window touches the picked date span, each annotated with its
// current liveness.
type ListEventsByDate struct {
	repo domain.Repository
}

func NewListEventsByDate(
	repo domain.Repository,
) *ListEventsByDate {
	return &ListEventsByDate{
		repo: repo,
	}
}

func (uc *ListEventsByDate) Execute(
	ctx context.Context,
	filter domain.SearchFilter,
	picked schedule.DateRangeValue,
	now time.Time,
) ([]dto.EventListDTO, error) {

	if picked.StartDate == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	endKey := picked.EndDate
	if endKey == "" {
		endKey = picked.StartDate
	}

	days := schedule.EnumerateDays(picked.StartDate, endKey)
	if len(days) == 0 {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	loc := now.Location()
	first, _ := time.ParseInLocation(schedule.DateLayout, days[0], loc)
	last, _ := time.ParseInLocation(schedule.DateLayout, days[len(days)-1], loc)
	periodEnd := last.AddDate(0, 0, 1)

	events, err := uc.repo.ListPublishedForPeriod(ctx, filter, first, periodEnd)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EventListDTO, 0, len(events))
	for i := range events {
		ev := &events[i]
		win := domain.ResolveLive(ev, now)

		out = append(out, dto.EventListDTO{
			PublicID:    ev.PublicID,
			Title:       ev.Title,
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
