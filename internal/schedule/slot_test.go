package schedule

import "testing"

func TestParseSlotValid(t *testing.T) {
	cases := []RawSlot{
		{Opens: "09:00", Closes: "18:00"},
		{Start: "09:00", End: "18:00"},
		{Opens: "00:00", Closes: "23:59"},
		{Opens: "12:30", Closes: "12:31"},
	}

	for _, raw := range cases {
		slot := ParseSlot(raw)
		if slot == nil {
			t.Fatalf("ParseSlot(%+v) = nil, want slot", raw)
		}
		if !slot.Valid() {
			t.Errorf("ParseSlot(%+v) produced invalid slot %+v", raw, slot)
		}
	}
}

func TestParseSlotRoundTrip(t *testing.T) {
	slot := ParseSlot(RawSlot{Opens: "07:15", Closes: "22:45"})
	if slot == nil {
		t.Fatal("expected slot")
	}
	if slot.Opens != "07:15" || slot.Closes != "22:45" {
		t.Errorf("round trip changed slot: %+v", slot)
	}
}

func TestParseSlotInvalid(t *testing.T) {
	cases := []RawSlot{
		{},
		{Opens: "09:00"},
		{Closes: "18:00"},
		{Opens: "18:00", Closes: "09:00"}, // reversed
		{Opens: "12:00", Closes: "12:00"}, // zero length
		{Opens: "9:00", Closes: "18:00"},  // missing zero pad
		{Opens: "24:00", Closes: "25:00"},
		{Opens: "09:60", Closes: "10:00"},
		{Opens: "0900", Closes: "1800"},
		{Opens: "morning", Closes: "night"},
	}

	for _, raw := range cases {
		if slot := ParseSlot(raw); slot != nil {
			t.Errorf("ParseSlot(%+v) = %+v, want nil", raw, slot)
		}
	}
}

func TestParseSlotPrefersOpensCloses(t *testing.T) {
	slot := ParseSlot(RawSlot{Opens: "08:00", Closes: "10:00", Start: "11:00", End: "12:00"})
	if slot == nil {
		t.Fatal("expected slot")
	}
	if slot.Opens != "08:00" || slot.Closes != "10:00" {
		t.Errorf("opens/closes should win over start/end, got %+v", slot)
	}
}

func TestMinuteOfDay(t *testing.T) {
	if m, ok := MinuteOfDay("13:45"); !ok || m != 13*60+45 {
		t.Errorf("MinuteOfDay(13:45) = %d, %v", m, ok)
	}
	if _, ok := MinuteOfDay("13:4"); ok {
		t.Error("MinuteOfDay accepted short minute")
	}
}
