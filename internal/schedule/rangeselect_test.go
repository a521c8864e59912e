package schedule

import "testing"

func TestRangeSelectorSingleMode(t *testing.T) {
	s := NewRangeSelector(SelectSingle)
	s.Press("2025-06-10")
	s.Press("2025-06-15")

	v := s.Value()
	if v.StartDate != "2025-06-15" || v.EndDate != "" {
		t.Errorf("single mode value = %+v", v)
	}
}

func TestRangeSelectorForwardPair(t *testing.T) {
	s := NewRangeSelector(SelectRange)
	s.Press("2025-06-10")
	s.Press("2025-06-15")

	v := s.Value()
	if v.StartDate != "2025-06-10" || v.EndDate != "2025-06-15" {
		t.Errorf("pair = %+v", v)
	}
}

func TestRangeSelectorBackwardPickRestarts(t *testing.T) {
	s := NewRangeSelector(SelectRange)
	s.Press("2025-06-10")
	s.Press("2025-06-05")

	v := s.Value()
	if v.StartDate != "2025-06-05" || v.EndDate != "" {
		t.Errorf("backward pick = %+v, want restarted pair", v)
	}
}

func TestRangeSelectorSameDayRestarts(t *testing.T) {
	s := NewRangeSelector(SelectRange)
	s.Press("2025-06-10")
	s.Press("2025-06-10")

	v := s.Value()
	if v.StartDate != "2025-06-10" || v.EndDate != "" {
		t.Errorf("same-day pick = %+v", v)
	}
}

func TestRangeSelectorCompletePairStartsNew(t *testing.T) {
	s := NewRangeSelector(SelectRange)
	s.Press("2025-06-10")
	s.Press("2025-06-15")
	s.Press("2025-06-20")

	v := s.Value()
	if v.StartDate != "2025-06-20" || v.EndDate != "" {
		t.Errorf("press after complete pair = %+v", v)
	}
}

func TestRangeSelectorIgnoresInvalidDate(t *testing.T) {
	s := NewRangeSelector(SelectRange)
	s.Press("2025-06-10")
	s.Press("garbage")

	v := s.Value()
	if v.StartDate != "2025-06-10" || v.EndDate != "" {
		t.Errorf("invalid press changed state: %+v", v)
	}
}

func TestRangeSelectorReset(t *testing.T) {
	s := NewRangeSelector(SelectRange)
	s.Press("2025-06-10")
	s.Press("2025-06-15")
	s.Reset()

	if v := s.Value(); v.StartDate != "" || v.EndDate != "" {
		t.Errorf("reset left %+v", v)
	}
}

func TestMarkedDatesSpan(t *testing.T) {
	s := NewRangeSelector(SelectRange)
	s.Press("2025-06-10")
	s.Press("2025-06-12")

	marked := s.MarkedDates()
	if len(marked) != 3 {
		t.Fatalf("marked = %v", marked)
	}
	if !marked[0].StartingDay || marked[0].EndingDay {
		t.Errorf("first mark = %+v", marked[0])
	}
	if marked[1].StartingDay || marked[1].EndingDay {
		t.Errorf("middle mark = %+v", marked[1])
	}
	if marked[2].StartingDay || !marked[2].EndingDay {
		t.Errorf("last mark = %+v", marked[2])
	}
}

func TestMarkedDatesStartOnly(t *testing.T) {
	s := NewRangeSelector(SelectRange)
	s.Press("2025-06-10")

	marked := s.MarkedDates()
	if len(marked) != 1 {
		t.Fatalf("marked = %v", marked)
	}
	if !marked[0].StartingDay || !marked[0].EndingDay {
		t.Errorf("single-day span should carry both endpoint tags: %+v", marked[0])
	}
}
