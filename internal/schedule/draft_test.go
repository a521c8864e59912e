package schedule

import "testing"

func TestNewScheduleDraftDefaults(t *testing.T) {
	d := NewScheduleDraft()

	if d.Mode != ModeSingleDay {
		t.Errorf("default mode = %s", d.Mode)
	}
	if d.DefaultSlot != DefaultHours {
		t.Errorf("default slot = %+v", d.DefaultSlot)
	}
	if len(d.Overrides) != 0 {
		t.Errorf("fresh draft has overrides: %v", d.Overrides)
	}
	for wd := 1; wd <= 7; wd++ {
		if !d.OpenDays[wd] {
			t.Errorf("weekday %d not open by default", wd)
		}
	}
}

func TestSetModeRejectsUnknown(t *testing.T) {
	d := NewScheduleDraft()
	d.SetMode(ModeRecurringWeekly)
	d.SetMode("biweekly")

	if d.Mode != ModeRecurringWeekly {
		t.Errorf("mode = %s, want recurring_weekly kept", d.Mode)
	}
}

func TestSetDefaultHoursKeepsOverrides(t *testing.T) {
	d := NewScheduleDraft()
	d.ToggleOverride("2025-06-12", true)

	d.SetDefaultHours(TimeSlot{Opens: "10:00", Closes: "20:00"})

	if d.DefaultSlot.Opens != "10:00" || d.DefaultSlot.Closes != "20:00" {
		t.Errorf("default not replaced: %+v", d.DefaultSlot)
	}
	if _, ok := d.Overrides["2025-06-12"]; !ok {
		t.Error("changing default hours destroyed an override")
	}
}

func TestSetDefaultHoursIgnoresInvalid(t *testing.T) {
	d := NewScheduleDraft()
	d.SetDefaultHours(TimeSlot{Opens: "20:00", Closes: "10:00"})

	if d.DefaultSlot != DefaultHours {
		t.Errorf("invalid default replaced the slot: %+v", d.DefaultSlot)
	}
}

func TestSetOpenDaysFiltersRange(t *testing.T) {
	d := NewScheduleDraft()
	d.SetOpenDays([]int{0, 1, 3, 8, 7})

	got := d.OpenDayList()
	want := []int{1, 3, 7}
	if len(got) != len(want) {
		t.Fatalf("open days = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("open days = %v, want %v", got, want)
		}
	}
}

func TestToggleOverrideSeedsFromDefault(t *testing.T) {
	d := NewScheduleDraft()
	d.SetDefaultHours(TimeSlot{Opens: "08:00", Closes: "17:00"})

	d.ToggleOverride("2025-06-12", true)

	slot, ok := d.Overrides["2025-06-12"]
	if !ok {
		t.Fatal("override not created")
	}
	if slot.Opens != "08:00" || slot.Closes != "17:00" {
		t.Errorf("override not seeded from default: %+v", slot)
	}
}

func TestToggleOverrideRoundTrip(t *testing.T) {
	d := NewScheduleDraft()
	d.ToggleOverride("2025-06-12", true)
	d.ToggleOverride("2025-06-12", false)

	if _, ok := d.Overrides["2025-06-12"]; ok {
		t.Error("toggle on/off left an override behind")
	}
}

func TestSetOverridePatchesFields(t *testing.T) {
	d := NewScheduleDraft()
	d.SetOverride("2025-06-12", TimeSlot{Closes: "21:00"})

	slot := d.Overrides["2025-06-12"]
	if slot.Opens != DefaultHours.Opens || slot.Closes != "21:00" {
		t.Errorf("partial patch result: %+v", slot)
	}

	// A patch that would invert the interval is ignored.
	d.SetOverride("2025-06-12", TimeSlot{Opens: "22:00"})
	if d.Overrides["2025-06-12"].Opens != DefaultHours.Opens {
		t.Error("invalid patch was applied")
	}
}

func TestPruneOutsideRange(t *testing.T) {
	d := NewScheduleDraft()
	d.ToggleOverride("2025-06-10", true)
	d.ToggleOverride("2025-06-20", true)

	d.PruneOutsideRange("2025-06-09", "2025-06-15")

	if _, ok := d.Overrides["2025-06-10"]; !ok {
		t.Error("in-range override was pruned")
	}
	if _, ok := d.Overrides["2025-06-20"]; ok {
		t.Error("out-of-range override survived")
	}

	// Re-expanding the range does not resurrect dropped overrides.
	d.PruneOutsideRange("2025-06-01", "2025-06-30")
	if _, ok := d.Overrides["2025-06-20"]; ok {
		t.Error("pruned override came back")
	}
}

func TestPruneIsIdempotent(t *testing.T) {
	d := NewScheduleDraft()
	d.ToggleOverride("2025-06-10", true)

	d.PruneOutsideRange("2025-06-09", "2025-06-15")
	first := len(d.Overrides)
	d.PruneOutsideRange("2025-06-09", "2025-06-15")

	if len(d.Overrides) != first {
		t.Errorf("second prune changed the draft: %d -> %d", first, len(d.Overrides))
	}
}

func TestSettersDoNotAliasCollections(t *testing.T) {
	d := NewScheduleDraft()
	d.ToggleOverride("2025-06-10", true)

	snapshot := d.Overrides
	d.ToggleOverride("2025-06-11", true)

	if _, ok := snapshot["2025-06-11"]; ok {
		t.Error("setter mutated a previously handed-out map")
	}
}
