package event

import (
	"testing"
	"time"

	"github.com/cityvent/events-api/internal/models"
	"github.com/cityvent/events-api/internal/schedule"
)

func TestPublishFromDraft(t *testing.T) {
	ev := &models.Event{Status: string(StatusDraft)}
	rows := schedule.RowList{schedule.SingleDayRow{
		Date:  "2025-06-10",
		Slots: []schedule.TimeSlot{{Opens: "09:00", Closes: "18:00"}},
	}}

	now := time.Now()
	if err := Publish(ev, rows, now); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if ev.Status != string(StatusPublished) {
		t.Errorf("status = %s", ev.Status)
	}
	if ev.PublishedAt == nil || len(ev.OperatingHours) != 1 {
		t.Errorf("publish did not commit rows: %+v", ev)
	}
}

func TestRepublishReplacesRows(t *testing.T) {
	ev := &models.Event{Status: string(StatusDraft)}
	first := schedule.RowList{schedule.FixedRow{
		OpenDays: []int{1, 2, 3},
		Slots:    []schedule.TimeSlot{{Opens: "09:00", Closes: "18:00"}},
	}}
	second := schedule.RowList{schedule.FixedRow{
		OpenDays: []int{6, 7},
		Slots:    []schedule.TimeSlot{{Opens: "10:00", Closes: "22:00"}},
	}}

	now := time.Now()
	if err := Publish(ev, first, now); err != nil {
		t.Fatalf("first publish: %v", err)
	}
	if err := Publish(ev, second, now); err != nil {
		t.Fatalf("second publish: %v", err)
	}

	if len(ev.OperatingHours) != 1 {
		t.Fatalf("rows = %+v", ev.OperatingHours)
	}
	fixed, ok := ev.OperatingHours[0].(schedule.FixedRow)
	if !ok || len(fixed.OpenDays) != 2 {
		t.Errorf("second commit did not replace the first: %+v", ev.OperatingHours)
	}
}

func TestCancelledEventCannotPublish(t *testing.T) {
	ev := &models.Event{Status: string(StatusCancelled)}

	if err := Publish(ev, nil, time.Now()); err == nil {
		t.Error("published a cancelled event")
	}
	if err := Cancel(ev, time.Now()); err == nil {
		t.Error("cancelled a cancelled event")
	}
}

func TestResolveLiveIgnoresDrafts(t *testing.T) {
	start := time.Now().Add(-time.Hour)
	ev := &models.Event{
		Status:   string(StatusDraft),
		StartsAt: start,
	}

	if win := ResolveLive(ev, time.Now()); win.IsLive {
		t.Error("a draft event resolved as live")
	}
}

func TestResolveLivePublishedWithoutHours(t *testing.T) {
	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	ev := &models.Event{
		Status:   string(StatusPublished),
		StartsAt: start,
		EndsAt:   &end,
	}

	win := ResolveLive(ev, time.Now())
	if !win.IsLive {
		t.Fatal("published event without hours should be live inside its window")
	}
	if win.LiveUntil == nil || !win.LiveUntil.Truncate(time.Second).Equal(end.Truncate(time.Second)) {
		t.Errorf("live until = %v, want %v", win.LiveUntil, end)
	}
}
