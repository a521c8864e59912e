package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cityvent/events-api/internal/httperr"
	"github.com/cityvent/events-api/internal/schedule"
)

// ScheduleHandler serves the authoring calendar: given the draft state
// the editor holds client-side, it returns the per-day rows and the
// highlighted span, so every editing surface renders the same merge
// the commit will persist.
type ScheduleHandler struct{}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

type SchedulePreviewRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"`

	Mode         schedule.Mode               `json:"mode"`
	DefaultHours schedule.RawSlot            `json:"default_hours"`
	OpenDays     []int                       `json:"open_days"`
	Overrides    map[string]schedule.RawSlot `json:"overrides"`
}

func (h *ScheduleHandler) Preview(c *gin.Context) {
	var req SchedulePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid draft payload.")
		return
	}

	endDate := req.EndDate
	if endDate == "" {
		endDate = req.StartDate
	}

	draft := schedule.NewScheduleDraft()
	draft.SetMode(req.Mode)
	if slot := schedule.ParseSlot(req.DefaultHours); slot != nil {
		draft.SetDefaultHours(*slot)
	}
	if len(req.OpenDays) > 0 {
		draft.SetOpenDays(req.OpenDays)
	}
	for date, raw := range req.Overrides {
		if slot := schedule.ParseSlot(raw); slot != nil {
			draft.ToggleOverride(date, true)
			draft.SetOverride(date, *slot)
		}
	}
	draft.PruneOutsideRange(req.StartDate, endDate)

	days := schedule.BuildScheduleDays(req.StartDate, endDate, draft)
	if len(days) == 0 {
		httperr.BadRequest(c, "invalid_date_range", "Invalid date range.")
		return
	}

	// Same span the calendar highlights while picking.
	selector := schedule.NewRangeSelector(schedule.SelectRange)
	selector.Press(req.StartDate)
	selector.Press(endDate)

	c.JSON(http.StatusOK, gin.H{
		"days":         days,
		"marked_dates": selector.MarkedDates(),
	})
}
