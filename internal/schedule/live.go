package schedule

import "time"

// LiveWindow is the resolver's verdict for one instant. LiveUntil is
// nil when the event is not live, or live with no upper bound.
type LiveWindow struct {
	IsLive    bool       `json:"is_live"`
	LiveUntil *time.Time `json:"live_until"`
}

var notLive = LiveWindow{}

// instant layouts accepted for starts_at / ends_at. Zone-less layouts
// are read on the caller's local clock, which is the contract for
// event timestamps.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseInstant(raw string, loc *time.Location) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ISOWeekday maps a time to 1=Monday .. 7=Sunday.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ResolveLiveWindow decides whether an event is live at the given
// instant and, if so, until when. It never fails: malformed rows or
// timestamps simply do not apply, and the worst case is a not-live
// verdict.
//
// Precedence for "today's hours", first match wins:
//
//  1. day rows matching today's date (all of them, slots pooled)
//  2. a single_day row matching today's date
//  3. a fixed row whose open-day set contains today's ISO weekday;
//     a fixed row that exists but excludes today yields an explicitly
//     empty slot set, not a fall-through
//
// When no row applies at all the event counts as live for its whole
// [start, end] window.
func ResolveLiveWindow(startsAt, endsAt string, rows RowList, now time.Time) LiveWindow {
	start, ok := parseInstant(startsAt, now.Location())
	if !ok {
		return notLive
	}
	if now.Before(start) {
		return notLive
	}

	end, hasEnd := parseInstant(endsAt, now.Location())
	if hasEnd && now.After(end) {
		return notLive
	}

	slots, applies := slotsForDay(rows, now)
	if !applies {
		// No structured hours: open for the whole event window.
		win := LiveWindow{IsLive: true}
		if hasEnd {
			until := end
			win.LiveUntil = &until
		}
		return win
	}

	var until time.Time
	live := false
	for _, slot := range slots {
		slotStart, slotEnd := slot.AnchorOn(now)
		if now.Before(slotStart) || now.After(slotEnd) {
			continue
		}
		// Overlapping slots: stay live as long as any of them holds.
		if !live || slotEnd.After(until) {
			until = slotEnd
		}
		live = true
	}

	if !live {
		return notLive
	}

	if hasEnd && end.Before(until) {
		until = end
	}
	return LiveWindow{IsLive: true, LiveUntil: &until}
}

// slotsForDay resolves the slot set applicable to now's calendar day.
// The second result reports whether any rule applied; a rule can apply
// with an empty slot set (weekday excluded by a fixed row).
func slotsForDay(rows RowList, now time.Time) ([]TimeSlot, bool) {
	today := now.Format(DateLayout)
	weekday := ISOWeekday(now)

	var pooled []TimeSlot
	for _, row := range rows {
		if r, ok := row.(DayRow); ok && r.Date == today {
			pooled = append(pooled, validSlots(r.Slots)...)
		}
	}
	if len(pooled) > 0 {
		return pooled, true
	}

	for _, row := range rows {
		if r, ok := row.(SingleDayRow); ok && r.Date == today {
			if slots := validSlots(r.Slots); len(slots) > 0 {
				return slots, true
			}
		}
	}

	sawFixed := false
	for _, row := range rows {
		r, ok := row.(FixedRow)
		if !ok {
			continue
		}
		sawFixed = true
		for _, wd := range r.OpenDays {
			if wd == weekday {
				if slots := validSlots(r.Slots); len(slots) > 0 {
					return slots, true
				}
			}
		}
	}
	if sawFixed {
		// A recurring pattern exists and today is not on it.
		return nil, true
	}

	return nil, false
}

func validSlots(slots []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Valid() {
			out = append(out, s)
		}
	}
	return out
}
