package schedule

// SelectionMode controls whether the selector picks one date or a
// start/end pair.
type SelectionMode string

const (
	SelectSingle SelectionMode = "single"
	SelectRange  SelectionMode = "range"
)

// DateRangeValue is the selector's current pick. Empty strings mean
// "not set"; EndDate is only meaningful in range mode once StartDate
// is set.
type DateRangeValue struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// RangeSelector is the date-picking state machine shared by the
// authoring calendar (an event's active span) and the search filter.
type RangeSelector struct {
	Mode  SelectionMode
	value DateRangeValue
}

func NewRangeSelector(mode SelectionMode) *RangeSelector {
	if mode != SelectRange {
		mode = SelectSingle
	}
	return &RangeSelector{Mode: mode}
}

// Press handles one day tap. In single mode every press replaces the
// pick. In range mode the first press opens a pair, a later press
// completes it, and a press on or before the current start restarts
// the pair from that date (a backward pick redefines the start, it is
// not an error).
func (s *RangeSelector) Press(date string) {
	pressed, ok := parseDateKey(date)
	if !ok {
		return
	}

	if s.Mode == SelectSingle {
		s.value = DateRangeValue{StartDate: date}
		return
	}

	if s.value.StartDate == "" || s.value.EndDate != "" {
		s.value = DateRangeValue{StartDate: date}
		return
	}

	start, _ := parseDateKey(s.value.StartDate)
	if !pressed.After(start) {
		s.value = DateRangeValue{StartDate: date}
		return
	}

	s.value.EndDate = date
}

func (s *RangeSelector) Reset() {
	s.value = DateRangeValue{}
}

func (s *RangeSelector) Value() DateRangeValue {
	return s.value
}

// MarkedDate tags one highlighted calendar day; the first and last day
// of the span carry endpoint flags for styling.
type MarkedDate struct {
	Date        string `json:"date"`
	StartingDay bool   `json:"starting_day"`
	EndingDay   bool   `json:"ending_day"`
}

// MarkedDates returns every date of the current span, inclusive. With
// only a start picked the span is that single day, marked as both
// endpoints.
func (s *RangeSelector) MarkedDates() []MarkedDate {
	if s.value.StartDate == "" {
		return nil
	}

	end := s.value.EndDate
	if end == "" {
		end = s.value.StartDate
	}

	dates := EnumerateDays(s.value.StartDate, end)
	out := make([]MarkedDate, 0, len(dates))
	for i, date := range dates {
		out = append(out, MarkedDate{
			Date:        date,
			StartingDay: i == 0,
			EndingDay:   i == len(dates)-1,
		})
	}
	return out
}
