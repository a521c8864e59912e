package event

import (
	"context"

	"github.com/cityvent/events-api/internal/audit"
	domain "github.com/cityvent/events-api/internal/domain/event"
	"github.com/cityvent/events-api/internal/httperr"
	"github.com/cityvent/events-api/internal/models"
	"github.com/cityvent/events-api/internal/schedule"
	"github.com/cityvent/events-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// PublishScheduleInput carries the whole authoring draft as submitted
// at commit time. Overrides only matter in variable_daily mode.
type PublishScheduleInput struct {
	OrganizerID uint
	UserID      uint
	EventID     uint

	Mode         schedule.Mode
	DefaultHours schedule.RawSlot
	OpenDays     []int
	Overrides    map[string]schedule.RawSlot
}

// ======================================================
// USE CASE
// ======================================================

type PublishSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPublishSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *PublishSchedule {
	return &PublishSchedule{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *PublishSchedule) Execute(
	ctx context.Context,
	in PublishScheduleInput,
) (*models.Event, error) {

	org, err := uc.repo.GetOrganizerByID(ctx, in.OrganizerID)
	if err != nil {
		return nil, err
	}

	ev, err := uc.repo.GetEventForOrganizer(ctx, in.EventID, in.OrganizerID)
	if err != nil {
		return nil, httperr.ErrBusiness("event_not_found")
	}

	// 1. Rebuild the draft from the submitted authoring state.
	draft := schedule.NewScheduleDraft()
	draft.SetMode(in.Mode)

	if slot := schedule.ParseSlot(in.DefaultHours); slot != nil {
		draft.SetDefaultHours(*slot)
	} else if in.DefaultHours != (schedule.RawSlot{}) {
		return nil, httperr.ErrBusiness("invalid_default_hours")
	}

	if len(in.OpenDays) > 0 {
		draft.SetOpenDays(in.OpenDays)
	}

	for date, raw := range in.Overrides {
		if slot := schedule.ParseSlot(raw); slot != nil {
			draft.ToggleOverride(date, true)
			draft.SetOverride(date, *slot)
		}
	}

	// 2. Clamp overrides to the event's active span before projecting.
	loc := timezone.Location(org.Timezone)
	startKey := ev.StartsAt.In(loc).Format(schedule.DateLayout)
	endKey := startKey
	if ev.EndsAt != nil {
		endKey = ev.EndsAt.In(loc).Format(schedule.DateLayout)
	}
	draft.PruneOutsideRange(startKey, endKey)

	// 3. Project and commit. The new row list replaces the old one.
	rows := schedule.BuildRows(draft, startKey, endKey)

	now := timezone.NowIn(org.Timezone)
	if err := domain.Publish(ev, rows, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEvent(ctx, ev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizerID: in.OrganizerID,
		UserID:      &in.UserID,
		Action:      "event_published",
		Entity:      "event",
		EntityID:    &ev.ID,
		Metadata: map[string]any{
			"mode": string(draft.Mode),
			"rows": len(rows),
		},
	})

	return ev, nil
}
