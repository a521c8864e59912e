package event

import (
	"time"

	"github.com/cityvent/events-api/internal/models"
	"github.com/cityvent/events-api/internal/schedule"
)

// ===============================
// Domain Actions
// ===============================

// Publish commits a new operating-hours list onto the event and moves
// it to published. The previous list is replaced, never merged.
func Publish(ev *models.Event, rows schedule.RowList, now time.Time) error {
	if err := CanPublish(Status(ev.Status)); err != nil {
		return err
	}

	ev.OperatingHours = rows
	ev.Status = string(StatusPublished)
	ev.PublishedAt = &now
	return nil
}

func Cancel(ev *models.Event, now time.Time) error {
	if err := CanCancel(Status(ev.Status)); err != nil {
		return err
	}

	ev.Status = string(StatusCancelled)
	ev.CancelledAt = &now
	return nil
}

// ResolveLive evaluates the event's liveness at the given instant.
// Timestamps go through the engine as RFC3339 so the stored instants
// survive the round trip unchanged.
func ResolveLive(ev *models.Event, now time.Time) schedule.LiveWindow {
	if Status(ev.Status) != StatusPublished {
		return schedule.LiveWindow{}
	}

	startsAt := ""
	if !ev.StartsAt.IsZero() {
		startsAt = ev.StartsAt.Format(time.RFC3339)
	}

	endsAt := ""
	if ev.EndsAt != nil {
		endsAt = ev.EndsAt.Format(time.RFC3339)
	}

	return schedule.ResolveLiveWindow(startsAt, endsAt, ev.OperatingHours, now)
}
