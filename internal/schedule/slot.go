package schedule

import "time"

// TimeSlot is a single open/close interval inside one calendar day,
// minute granularity, 24h local clock. Closes is always strictly after
// Opens; overnight slots are not representable.
type TimeSlot struct {
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}

// RawSlot is the wire/authoring shape of a slot. Draft payloads use
// start/end, persisted rows use opens/closes; both are accepted.
type RawSlot struct {
	Opens  string `json:"opens,omitempty"`
	Closes string `json:"closes,omitempty"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

// ParseSlot validates a raw slot and returns nil on any failure.
// Callers filter nils; slot parsing never errors.
func ParseSlot(raw RawSlot) *TimeSlot {
	opens := raw.Opens
	if opens == "" {
		opens = raw.Start
	}
	closes := raw.Closes
	if closes == "" {
		closes = raw.End
	}

	openMin, ok := MinuteOfDay(opens)
	if !ok {
		return nil
	}
	closeMin, ok := MinuteOfDay(closes)
	if !ok {
		return nil
	}

	if closeMin <= openMin {
		return nil
	}

	return &TimeSlot{Opens: opens, Closes: closes}
}

// MinuteOfDay parses an HH:MM clock string into minutes since midnight.
func MinuteOfDay(hm string) (int, bool) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, false
	}

	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}

	return t.Hour()*60 + t.Minute(), true
}

// Valid reports whether the slot still satisfies the HH:MM and
// chronological-order rules.
func (s TimeSlot) Valid() bool {
	return ParseSlot(RawSlot{Opens: s.Opens, Closes: s.Closes}) != nil
}

// AnchorOn projects the slot's clock times onto a concrete date.
func (s TimeSlot) AnchorOn(date time.Time) (time.Time, time.Time) {
	anchor := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			date.Location(),
		)
	}

	return anchor(s.Opens), anchor(s.Closes)
}
