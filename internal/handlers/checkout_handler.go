package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/cityvent/events-api/internal/domain/event"
	"github.com/cityvent/events-api/internal/httperr"
	"github.com/cityvent/events-api/internal/models"
	"github.com/cityvent/events-api/internal/payments"
)

type CheckoutHandler struct {
	db       *gorm.DB
	checkout *payments.Checkout
}

func NewCheckoutHandler(db *gorm.DB, checkout *payments.Checkout) *CheckoutHandler {
	return &CheckoutHandler{
		db:       db,
		checkout: checkout,
	}
}

type CreateCheckoutRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=10"`
}

// Create handles POST /api/public/events/:public_id/checkout for paid
// events, returning the payment init point the buyer is sent to.
func (h *CheckoutHandler) Create(c *gin.Context) {
	if h.checkout == nil {
		httperr.Internal(c, "payments_disabled", "Payments are not configured.")
		return
	}

	publicID, err := uuid.Parse(c.Param("public_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_event_id", "Invalid event id.")
		return
	}

	var req CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid checkout payload.")
		return
	}

	var ev models.Event
	if err := h.db.
		Where("public_id = ? AND status = ?", publicID, string(domain.StatusPublished)).
		First(&ev).Error; err != nil {
		httperr.NotFound(c, "event_not_found", "Event not found.")
		return
	}

	if ev.TicketPrice <= 0 {
		httperr.BadRequest(c, "event_is_free", "This event does not sell tickets.")
		return
	}

	initPoint, err := h.checkout.CreatePreference(c.Request.Context(), &ev, req.Quantity)
	if err != nil {
		httperr.Internal(c, "failed_to_create_checkout", "Error creating checkout.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"init_point": initPoint})
}
