package schedule

import "time"

// DateLayout is the date-key format used throughout the engine.
const DateLayout = "2006-01-02"

// ScheduleDay is one editable row of the authoring calendar, derived
// from the draft. Never persisted; recomputed whenever the draft or
// the active range changes.
type ScheduleDay struct {
	Date     string `json:"date"`
	Start    string `json:"start"`
	End      string `json:"end"`
	IsCustom bool   `json:"is_custom"`
}

func parseDateKey(date string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EnumerateDays returns every calendar date from start to end,
// inclusive of both endpoints, in ascending order. Stepping is by
// calendar day (AddDate), not by elapsed 24h periods. Invalid input
// or an end before the start yields an empty result.
func EnumerateDays(start, end string) []string {
	from, ok := parseDateKey(start)
	if !ok {
		return nil
	}
	to, ok := parseDateKey(end)
	if !ok {
		return nil
	}

	var days []string
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		days = append(days, cur.Format(DateLayout))
	}
	return days
}

// BuildScheduleDays merges the draft's overrides onto its default
// hours, one row per enumerated date. A date with an override gets
// IsCustom=true and the override's hours; everything else falls back
// to the default slot.
func BuildScheduleDays(start, end string, d *ScheduleDraft) []ScheduleDay {
	dates := EnumerateDays(start, end)
	out := make([]ScheduleDay, 0, len(dates))

	for _, date := range dates {
		if slot, ok := d.Overrides[date]; ok {
			out = append(out, ScheduleDay{
				Date:     date,
				Start:    slot.Opens,
				End:      slot.Closes,
				IsCustom: true,
			})
			continue
		}

		out = append(out, ScheduleDay{
			Date:  date,
			Start: d.DefaultSlot.Opens,
			End:   d.DefaultSlot.Closes,
		})
	}

	return out
}
