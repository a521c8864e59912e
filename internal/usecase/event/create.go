package event

import (
	"context"
	"time"

	"github.com/cityvent/events-api/internal/audit"
	domain "github.com/cityvent/events-api/internal/domain/event"
	"github.com/cityvent/events-api/internal/httperr"
	"github.com/cityvent/events-api/internal/models"
	"github.com/cityvent/events-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateEventInput struct {
	OrganizerID uint
	UserID      uint

	Title       string
	Description string
	Category    string

	Venue   string
	Address string
	City    string

	StartDate string // YYYY-MM-DD
	StartTime string // HH:mm
	EndDate   string
	EndTime   string

	TicketPrice float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateEvent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateEvent(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateEvent {
	return &CreateEvent{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateEvent) Execute(
	ctx context.Context,
	in CreateEventInput,
) (*models.Event, error) {

	org, err := uc.repo.GetOrganizerByID(ctx, in.OrganizerID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(org.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.StartDate+" "+in.StartTime,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	var end *time.Time
	if in.EndDate != "" {
		endTime := in.EndTime
		if endTime == "" {
			endTime = "23:59"
		}
		parsed, err := time.ParseInLocation(
			"2006-01-02 15:04",
			in.EndDate+" "+endTime,
			loc,
		)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		if !parsed.After(start) {
			return nil, httperr.ErrBusiness("end_before_start")
		}
		end = &parsed
	}

	if in.TicketPrice < 0 {
		return nil, httperr.ErrBusiness("invalid_ticket_price")
	}

	ev := &models.Event{
		OrganizerID: in.OrganizerID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Venue:       in.Venue,
		Address:     in.Address,
		City:        in.City,
		StartsAt:    start,
		EndsAt:      end,
		Status:      string(domain.InitialStatus()),
		TicketPrice: in.TicketPrice,
	}

	if err := uc.repo.CreateEvent(ctx, ev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizerID: in.OrganizerID,
		UserID:      &in.UserID,
		Action:      "event_created",
		Entity:      "event",
		EntityID:    &ev.ID,
	})

	return ev, nil
}
