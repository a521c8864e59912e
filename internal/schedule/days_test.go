package schedule

import "testing"

func TestEnumerateDaysSingle(t *testing.T) {
	days := EnumerateDays("2025-06-10", "2025-06-10")
	if len(days) != 1 || days[0] != "2025-06-10" {
		t.Fatalf("EnumerateDays(D, D) = %v", days)
	}
}

func TestEnumerateDaysWeek(t *testing.T) {
	days := EnumerateDays("2025-06-10", "2025-06-16")
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %v", days)
	}

	want := []string{
		"2025-06-10", "2025-06-11", "2025-06-12", "2025-06-13",
		"2025-06-14", "2025-06-15", "2025-06-16",
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("days[%d] = %s, want %s", i, days[i], want[i])
		}
	}
}

func TestEnumerateDaysAcrossMonthEnd(t *testing.T) {
	days := EnumerateDays("2025-06-29", "2025-07-02")
	want := []string{"2025-06-29", "2025-06-30", "2025-07-01", "2025-07-02"}
	if len(days) != len(want) {
		t.Fatalf("days = %v", days)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("days[%d] = %s, want %s", i, days[i], want[i])
		}
	}
}

func TestEnumerateDaysDegenerate(t *testing.T) {
	if days := EnumerateDays("2025-06-10", "2025-06-05"); len(days) != 0 {
		t.Errorf("reversed range produced %v", days)
	}
	if days := EnumerateDays("not-a-date", "2025-06-05"); len(days) != 0 {
		t.Errorf("bad start produced %v", days)
	}
	if days := EnumerateDays("2025-06-05", ""); len(days) != 0 {
		t.Errorf("empty end produced %v", days)
	}
}

func TestBuildScheduleDaysMergesOverrides(t *testing.T) {
	d := NewScheduleDraft()
	d.SetDefaultHours(TimeSlot{Opens: "09:00", Closes: "18:00"})
	d.SetOverride("2025-06-11", TimeSlot{Opens: "14:00", Closes: "22:00"})

	rows := BuildScheduleDays("2025-06-10", "2025-06-12", d)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].IsCustom || rows[0].Start != "09:00" || rows[0].End != "18:00" {
		t.Errorf("default day wrong: %+v", rows[0])
	}
	if !rows[1].IsCustom || rows[1].Start != "14:00" || rows[1].End != "22:00" {
		t.Errorf("override day wrong: %+v", rows[1])
	}
	if rows[2].Date != "2025-06-12" || rows[2].IsCustom {
		t.Errorf("trailing day wrong: %+v", rows[2])
	}
}
