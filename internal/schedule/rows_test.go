package schedule

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRowListDecodeTolerant(t *testing.T) {
	payload := `[
		{"kind":"day","date":"2025-06-10","slots":[{"opens":"09:00","closes":"17:00"}]},
		{"kind":"happy_hour","slots":[{"opens":"18:00","closes":"20:00"}]},
		{"kind":"day","date":"junk","slots":[{"opens":"09:00","closes":"17:00"}]},
		{"kind":"day","date":"2025-06-11","slots":[{"opens":"17:00","closes":"09:00"}]},
		{"kind":"fixed","open_days":[0,2,9],"slots":[{"start":"10:00","end":"12:00"}]}
	]`

	var rows RowList
	if err := json.Unmarshal([]byte(payload), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 surviving rows, got %d: %+v", len(rows), rows)
	}

	day, ok := rows[0].(DayRow)
	if !ok || day.Date != "2025-06-10" {
		t.Errorf("rows[0] = %+v", rows[0])
	}

	fixed, ok := rows[1].(FixedRow)
	if !ok {
		t.Fatalf("rows[1] = %+v", rows[1])
	}
	if len(fixed.OpenDays) != 1 || fixed.OpenDays[0] != 2 {
		t.Errorf("open days not filtered: %v", fixed.OpenDays)
	}
	if len(fixed.Slots) != 1 || fixed.Slots[0].Opens != "10:00" {
		t.Errorf("start/end field names not accepted: %+v", fixed.Slots)
	}
}

func TestRowListJSONRoundTrip(t *testing.T) {
	rows := RowList{
		DayRow{Date: "2025-06-10", Slots: []TimeSlot{{Opens: "14:00", Closes: "16:00"}}},
		SingleDayRow{Date: "2025-06-11", Slots: []TimeSlot{{Opens: "09:00", Closes: "12:00"}}},
		FixedRow{OpenDays: []int{1, 3, 5}, Slots: []TimeSlot{{Opens: "09:00", Closes: "18:00"}}},
	}

	data, err := json.Marshal(rows)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back RowList
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(back) != 3 {
		t.Fatalf("round trip lost rows: %+v", back)
	}
	if back[0].Kind() != RowKindDay || back[1].Kind() != RowKindSingleDay || back[2].Kind() != RowKindFixed {
		t.Errorf("kinds changed: %v %v %v", back[0].Kind(), back[1].Kind(), back[2].Kind())
	}
}

func TestRowListScanValue(t *testing.T) {
	rows := RowList{FixedRow{OpenDays: []int{6, 7}, Slots: []TimeSlot{{Opens: "10:00", Closes: "22:00"}}}}

	v, err := rows.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var back RowList
	if err := back.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(back) != 1 || back[0].Kind() != RowKindFixed {
		t.Errorf("scan result: %+v", back)
	}

	var empty RowList
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if empty != nil {
		t.Errorf("scan nil produced %+v", empty)
	}
}

func TestBuildRowsSingleDay(t *testing.T) {
	d := NewScheduleDraft()
	rows := BuildRows(d, "2025-06-10", "2025-06-10")

	if len(rows) != 1 {
		t.Fatalf("rows = %+v", rows)
	}
	sd, ok := rows[0].(SingleDayRow)
	if !ok || sd.Date != "2025-06-10" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
}

func TestBuildRowsRecurringWeekly(t *testing.T) {
	d := NewScheduleDraft()
	d.SetMode(ModeRecurringWeekly)
	d.SetOpenDays([]int{2, 4})

	rows := BuildRows(d, "2025-06-10", "2025-06-30")
	if len(rows) != 1 {
		t.Fatalf("rows = %+v", rows)
	}
	fixed, ok := rows[0].(FixedRow)
	if !ok {
		t.Fatalf("rows[0] = %+v", rows[0])
	}
	if len(fixed.OpenDays) != 2 || fixed.OpenDays[0] != 2 || fixed.OpenDays[1] != 4 {
		t.Errorf("open days = %v", fixed.OpenDays)
	}
}

// Committing a variable-daily draft must produce rows that resolve
// every date in the range back to the intended hours.
func TestBuildRowsVariableDailyResolvesIntendedHours(t *testing.T) {
	d := NewScheduleDraft()
	d.SetMode(ModeVariableDaily)
	d.SetDefaultHours(TimeSlot{Opens: "09:00", Closes: "18:00"})
	d.SetOverride("2025-06-11", TimeSlot{Opens: "20:00", Closes: "23:00"})

	rows := BuildRows(d, "2025-06-10", "2025-06-12")

	check := func(day time.Time, live bool) {
		t.Helper()
		win := ResolveLiveWindow("2025-06-10T00:00", "2025-06-12T23:59", rows, day)
		if win.IsLive != live {
			t.Errorf("at %v live = %v, want %v", day, win.IsLive, live)
		}
	}

	// Default days follow the default hours.
	check(localTime(2025, time.June, 10, 10, 0), true)
	check(localTime(2025, time.June, 10, 19, 0), false)

	// The overridden day follows its override, not the default.
	check(localTime(2025, time.June, 11, 10, 0), false)
	check(localTime(2025, time.June, 11, 21, 0), true)

	check(localTime(2025, time.June, 12, 10, 0), true)
}
