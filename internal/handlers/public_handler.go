package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/cityvent/events-api/internal/domain/event"
	"github.com/cityvent/events-api/internal/httperr"
	"github.com/cityvent/events-api/internal/httpresp"
	"github.com/cityvent/events-api/internal/models"
	"github.com/cityvent/events-api/internal/schedule"
	"github.com/cityvent/events-api/internal/timezone"
	ucEvent "github.com/cityvent/events-api/internal/usecase/event"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db     *gorm.DB
	listUC *ucEvent.ListEventsByDate
	liveUC *ucEvent.GetLiveStatus
}

func NewPublicHandler(
	db *gorm.DB,
	listUC *ucEvent.ListEventsByDate,
	liveUC *ucEvent.GetLiveStatus,
) *PublicHandler {
	return &PublicHandler{
		db:     db,
		listUC: listUC,
		liveUC: liveUC,
	}
}

////////////////////////////////////////////////////////
// DISCOVERY FEED
////////////////////////////////////////////////////////

// ListByDate serves GET /api/public/events?date=...&end_date=...
// The two query dates run through the same selector the calendar UI
// uses, so a backward pair degrades to a fresh single-day pick instead
// of an error.
func (h *PublicHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "A date is required.")
		return
	}

	selector := schedule.NewRangeSelector(schedule.SelectRange)
	selector.Press(dateStr)
	if endStr := c.Query("end_date"); endStr != "" {
		selector.Press(endStr)
	}

	picked := selector.Value()
	if picked.StartDate == "" {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	filter := domain.SearchFilter{
		City:     c.Query("city"),
		Category: c.Query("category"),
	}

	events, err := h.listUC.Execute(
		c.Request.Context(),
		filter,
		picked,
		timezone.Now(),
	)
	if err != nil {
		if code, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, code, "Invalid search.")
			return
		}
		httperr.Internal(c, "failed_to_list_events", "Error listing events.")
		return
	}

	httpresp.List(c, events)
}

////////////////////////////////////////////////////////
// LIVE STATUS
////////////////////////////////////////////////////////

// LiveStatus serves GET /api/public/events/:public_id/live — the
// status badge endpoint clients poll while the screen is open.
func (h *PublicHandler) LiveStatus(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("public_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_event_id", "Invalid event id.")
		return
	}

	out, err := h.liveUC.Execute(c.Request.Context(), publicID)
	if err != nil {
		if httperr.IsBusiness(err, "event_not_found") {
			httperr.NotFound(c, "event_not_found", "Event not found.")
			return
		}
		httperr.Internal(c, "failed_to_resolve_status", "Error resolving status.")
		return
	}

	c.JSON(http.StatusOK, out)
}

////////////////////////////////////////////////////////
// EVENT PAGE
////////////////////////////////////////////////////////

func (h *PublicHandler) GetEvent(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("public_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_event_id", "Invalid event id.")
		return
	}

	var ev models.Event
	if err := h.db.
		Where("public_id = ? AND status = ?", publicID, string(domain.StatusPublished)).
		First(&ev).Error; err != nil {
		httperr.NotFound(c, "event_not_found", "Event not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"public_id":       ev.PublicID,
		"title":           ev.Title,
		"description":     ev.Description,
		"category":        ev.Category,
		"venue":           ev.Venue,
		"address":         ev.Address,
		"city":            ev.City,
		"cover_url":       ev.CoverURL,
		"ticket_price":    ev.TicketPrice,
		"starts_at":       ev.StartsAt,
		"ends_at":         ev.EndsAt,
		"operating_hours": ev.OperatingHours,
	})
}
