package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// RowKind tags a persisted operating-hours row.
type RowKind string

const (
	RowKindDay       RowKind = "day"        // explicit hours for one date
	RowKindSingleDay RowKind = "single_day" // the whole event is one date
	RowKindFixed     RowKind = "fixed"      // weekly recurring pattern
)

// Row is one persisted operating-hours rule. The set of variants is
// closed: DayRow, SingleDayRow and FixedRow. Resolution precedence is
// day > single_day > fixed (see ResolveLiveWindow).
type Row interface {
	Kind() RowKind
}

type DayRow struct {
	Date  string
	Slots []TimeSlot
}

func (DayRow) Kind() RowKind { return RowKindDay }

type SingleDayRow struct {
	Date  string
	Slots []TimeSlot
}

func (SingleDayRow) Kind() RowKind { return RowKindSingleDay }

type FixedRow struct {
	OpenDays []int // ISO weekday, 1=Mon .. 7=Sun
	Slots    []TimeSlot
}

func (FixedRow) Kind() RowKind { return RowKindFixed }

// RowList is an event's ordered operating-hours rules. Order encodes
// precedence among rows of the same kind. The list is replaced
// wholesale on every authoring commit, never mutated in place.
type RowList []Row

type rowJSON struct {
	Kind     RowKind   `json:"kind"`
	Date     string    `json:"date,omitempty"`
	OpenDays []int     `json:"open_days,omitempty"`
	Slots    []RawSlot `json:"slots"`
}

func (l RowList) MarshalJSON() ([]byte, error) {
	out := make([]rowJSON, 0, len(l))

	for _, row := range l {
		switch r := row.(type) {
		case DayRow:
			out = append(out, rowJSON{Kind: RowKindDay, Date: r.Date, Slots: rawSlots(r.Slots)})
		case SingleDayRow:
			out = append(out, rowJSON{Kind: RowKindSingleDay, Date: r.Date, Slots: rawSlots(r.Slots)})
		case FixedRow:
			out = append(out, rowJSON{Kind: RowKindFixed, OpenDays: r.OpenDays, Slots: rawSlots(r.Slots)})
		default:
			return nil, fmt.Errorf("schedule: unknown row type %T", row)
		}
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes tolerantly: rows with an unknown kind, a bad
// date, or no valid slot are dropped instead of failing the whole
// list. The store is not trusted to enforce per-row shape.
func (l *RowList) UnmarshalJSON(data []byte) error {
	var raw []rowJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rows := make(RowList, 0, len(raw))
	for _, r := range raw {
		slots := parseSlots(r.Slots)
		if len(slots) == 0 {
			continue
		}

		switch r.Kind {
		case RowKindDay:
			if _, ok := parseDateKey(r.Date); ok {
				rows = append(rows, DayRow{Date: r.Date, Slots: slots})
			}
		case RowKindSingleDay:
			if _, ok := parseDateKey(r.Date); ok {
				rows = append(rows, SingleDayRow{Date: r.Date, Slots: slots})
			}
		case RowKindFixed:
			days := make([]int, 0, len(r.OpenDays))
			for _, wd := range r.OpenDays {
				if wd >= 1 && wd <= 7 {
					days = append(days, wd)
				}
			}
			rows = append(rows, FixedRow{OpenDays: days, Slots: slots})
		}
	}

	*l = rows
	return nil
}

// Value / Scan let gorm store the list in a jsonb column.

func (l RowList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *RowList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("schedule: unsupported operating_hours column type")
	}
}

func rawSlots(slots []TimeSlot) []RawSlot {
	out := make([]RawSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, RawSlot{Opens: s.Opens, Closes: s.Closes})
	}
	return out
}

func parseSlots(raw []RawSlot) []TimeSlot {
	out := make([]TimeSlot, 0, len(raw))
	for _, r := range raw {
		if s := ParseSlot(r); s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// BuildRows projects a committed draft into persisted rows for the
// given active range:
//
//   - single_day: one single_day row on the range start
//   - recurring_weekly: one fixed row with the open-day set
//   - variable_daily: one day row per override, plus a fixed fallback
//     carrying the default hours for the non-overridden dates
//
// Every date of the range resolves back to the intended hours when the
// result is fed through ResolveLiveWindow.
func BuildRows(d *ScheduleDraft, start, end string) RowList {
	defaultSlots := []TimeSlot{d.DefaultSlot}

	switch d.Mode {
	case ModeRecurringWeekly:
		return RowList{FixedRow{OpenDays: d.OpenDayList(), Slots: defaultSlots}}

	case ModeVariableDaily:
		var rows RowList
		for _, date := range EnumerateDays(start, end) {
			if slot, ok := d.Overrides[date]; ok {
				rows = append(rows, DayRow{Date: date, Slots: []TimeSlot{slot}})
			}
		}
		allDays := []int{1, 2, 3, 4, 5, 6, 7}
		rows = append(rows, FixedRow{OpenDays: allDays, Slots: defaultSlots})
		return rows

	default: // single_day
		return RowList{SingleDayRow{Date: start, Slots: defaultSlots}}
	}
}
