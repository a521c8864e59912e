package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cityvent/events-api/internal/httperr"
	"github.com/cityvent/events-api/internal/middleware"
	"github.com/cityvent/events-api/internal/schedule"
	ucEvent "github.com/cityvent/events-api/internal/usecase/event"
)

// ======================================================
// HANDLER
// ======================================================

type EventHandler struct {
	createUC  *ucEvent.CreateEvent
	publishUC *ucEvent.PublishSchedule
	cancelUC  *ucEvent.CancelEvent
	listUC    *ucEvent.ListMyEvents
}

func NewEventHandler(
	createUC *ucEvent.CreateEvent,
	publishUC *ucEvent.PublishSchedule,
	cancelUC *ucEvent.CancelEvent,
	listUC *ucEvent.ListMyEvents,
) *EventHandler {
	return &EventHandler{
		createUC:  createUC,
		publishUC: publishUC,
		cancelUC:  cancelUC,
		listUC:    listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`

	Venue   string `json:"venue"`
	Address string `json:"address"`
	City    string `json:"city" binding:"required"`

	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:mm
	EndDate   string `json:"end_date"`
	EndTime   string `json:"end_time"`

	TicketPrice float64 `json:"ticket_price"`
}

type PublishScheduleRequest struct {
	Mode         schedule.Mode               `json:"mode" binding:"required"`
	DefaultHours schedule.RawSlot            `json:"default_hours"`
	OpenDays     []int                       `json:"open_days"`
	Overrides    map[string]schedule.RawSlot `json:"overrides"`
}

// ======================================================
// CREATE
// ======================================================

func (h *EventHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	organizerID := c.MustGet(middleware.ContextOrganizerID).(uint)

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid event payload.")
		return
	}

	ev, err := h.createUC.Execute(c.Request.Context(), ucEvent.CreateEventInput{
		OrganizerID: organizerID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Venue:       req.Venue,
		Address:     req.Address,
		City:        req.City,
		StartDate:   req.StartDate,
		StartTime:   req.StartTime,
		EndDate:     req.EndDate,
		EndTime:     req.EndTime,
		TicketPrice: req.TicketPrice,
	})
	if err != nil {
		if code, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, code, "Could not create the event.")
			return
		}
		httperr.Internal(c, "failed_to_create_event", "Error creating event.")
		return
	}

	c.JSON(http.StatusCreated, ev)
}

// ======================================================
// PUBLISH (schedule commit)
// ======================================================

func (h *EventHandler) PublishSchedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	organizerID := c.MustGet(middleware.ContextOrganizerID).(uint)

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_event_id", "Invalid event id.")
		return
	}

	var req PublishScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule payload.")
		return
	}

	ev, err := h.publishUC.Execute(c.Request.Context(), ucEvent.PublishScheduleInput{
		OrganizerID:  organizerID,
		UserID:       userID,
		EventID:      uint(eventID),
		Mode:         req.Mode,
		DefaultHours: req.DefaultHours,
		OpenDays:     req.OpenDays,
		Overrides:    req.Overrides,
	})
	if err != nil {
		if code, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, code, "Could not publish the schedule.")
			return
		}
		httperr.Internal(c, "failed_to_publish_event", "Error publishing event.")
		return
	}

	c.JSON(http.StatusOK, ev)
}

// ======================================================
// CANCEL
// ======================================================

func (h *EventHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	organizerID := c.MustGet(middleware.ContextOrganizerID).(uint)

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_event_id", "Invalid event id.")
		return
	}

	ev, err := h.cancelUC.Execute(
		c.Request.Context(),
		organizerID,
		userID,
		uint(eventID),
	)
	if err != nil {
		if code, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, code, "Could not cancel the event.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_event", "Error cancelling event.")
		return
	}

	c.JSON(http.StatusOK, ev)
}

// ======================================================
// LIST MINE
// ======================================================

func (h *EventHandler) ListMine(c *gin.Context) {
	organizerID := c.MustGet(middleware.ContextOrganizerID).(uint)

	events, err := h.listUC.Execute(c.Request.Context(), organizerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_events", "Error listing events.")
		return
	}

	c.JSON(http.StatusOK, events)
}
