package schedule

// Mode selects how an event's hours are resolved for a given date.
type Mode string

const (
	// ModeSingleDay applies one slot list to the whole active range.
	ModeSingleDay Mode = "single_day"

	// ModeRecurringWeekly applies the default hours only on weekdays
	// present in the open-day set.
	ModeRecurringWeekly Mode = "recurring_weekly"

	// ModeVariableDaily allows per-date overrides on top of the default.
	ModeVariableDaily Mode = "variable_daily"
)

// DefaultHours is the slot a fresh draft starts with.
var DefaultHours = TimeSlot{Opens: "09:00", Closes: "18:00"}

// ScheduleDraft is the mutable authoring state for an event's hours.
// It lives only for the duration of an authoring session; on commit it
// is projected into operating-hours rows (BuildRows) and discarded.
//
// Setters replace collections instead of mutating them in place, so a
// snapshot handed out earlier never changes under the caller.
type ScheduleDraft struct {
	Mode         Mode
	DefaultSlot  TimeSlot
	OpenDays     map[int]bool       // ISO weekday, 1=Mon .. 7=Sun
	Overrides    map[string]TimeSlot // date key -> custom hours
}

func NewScheduleDraft() *ScheduleDraft {
	d := &ScheduleDraft{}
	d.Reset()
	return d
}

// Reset restores the session defaults: single day, every weekday open,
// 09:00-18:00, no overrides.
func (d *ScheduleDraft) Reset() {
	d.Mode = ModeSingleDay
	d.DefaultSlot = DefaultHours

	days := make(map[int]bool, 7)
	for wd := 1; wd <= 7; wd++ {
		days[wd] = true
	}
	d.OpenDays = days
	d.Overrides = map[string]TimeSlot{}
}

func (d *ScheduleDraft) SetMode(m Mode) {
	switch m {
	case ModeSingleDay, ModeRecurringWeekly, ModeVariableDaily:
		d.Mode = m
	}
}

// SetDefaultHours replaces the default slot. Invalid input is ignored
// so the draft always holds a usable slot. Existing overrides are kept.
func (d *ScheduleDraft) SetDefaultHours(slot TimeSlot) {
	if parsed := ParseSlot(RawSlot{Opens: slot.Opens, Closes: slot.Closes}); parsed != nil {
		d.DefaultSlot = *parsed
	}
}

// SetOpenDays replaces the open-day set. Values outside 1..7 are dropped.
func (d *ScheduleDraft) SetOpenDays(days []int) {
	next := make(map[int]bool, len(days))
	for _, wd := range days {
		if wd >= 1 && wd <= 7 {
			next[wd] = true
		}
	}
	d.OpenDays = next
}

// OpenDayList returns the open-day set as a sorted slice.
func (d *ScheduleDraft) OpenDayList() []int {
	out := make([]int, 0, len(d.OpenDays))
	for wd := 1; wd <= 7; wd++ {
		if d.OpenDays[wd] {
			out = append(out, wd)
		}
	}
	return out
}

// SetOverride patches the override for a date. Empty fields in the
// patch inherit from the existing override, or from the default hours
// when the date had none. A patch producing an invalid slot is ignored.
func (d *ScheduleDraft) SetOverride(date string, patch TimeSlot) {
	if _, ok := parseDateKey(date); !ok {
		return
	}

	base, ok := d.Overrides[date]
	if !ok {
		base = d.DefaultSlot
	}

	if patch.Opens != "" {
		base.Opens = patch.Opens
	}
	if patch.Closes != "" {
		base.Closes = patch.Closes
	}

	parsed := ParseSlot(RawSlot{Opens: base.Opens, Closes: base.Closes})
	if parsed == nil {
		return
	}

	next := copyOverrides(d.Overrides)
	next[date] = *parsed
	d.Overrides = next
}

// ToggleOverride marks a date as customized or not. Activating seeds
// the override with the current default hours so editing starts from
// there; deactivating removes the entry entirely.
func (d *ScheduleDraft) ToggleOverride(date string, active bool) {
	if _, ok := parseDateKey(date); !ok {
		return
	}

	next := copyOverrides(d.Overrides)
	if active {
		if _, exists := next[date]; !exists {
			next[date] = d.DefaultSlot
		}
	} else {
		delete(next, date)
	}
	d.Overrides = next
}

func (d *ScheduleDraft) ClearOverride(date string) {
	d.ToggleOverride(date, false)
}

// PruneOutsideRange drops overrides whose date is no longer inside the
// active range. Runs as a reaction to range changes and is idempotent:
// pruning twice against the same range changes nothing.
func (d *ScheduleDraft) PruneOutsideRange(start, end string) {
	valid := make(map[string]bool)
	for _, date := range EnumerateDays(start, end) {
		valid[date] = true
	}

	next := make(map[string]TimeSlot, len(d.Overrides))
	for date, slot := range d.Overrides {
		if valid[date] {
			next[date] = slot
		}
	}
	d.Overrides = next
}

func copyOverrides(src map[string]TimeSlot) map[string]TimeSlot {
	dst := make(map[string]TimeSlot, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
