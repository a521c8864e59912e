package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cityvent/events-api/internal/audit"
	"github.com/cityvent/events-api/internal/httperr"
	"github.com/cityvent/events-api/internal/media"
	"github.com/cityvent/events-api/internal/middleware"
	"github.com/cityvent/events-api/internal/models"
)

// maxUploadBytes caps the raw upload before decoding.
const maxUploadBytes = 10 << 20

type MediaHandler struct {
	db      *gorm.DB
	storage *media.Storage
	audit   *audit.Dispatcher
}

func NewMediaHandler(
	db *gorm.DB,
	storage *media.Storage,
	dispatcher *audit.Dispatcher,
) *MediaHandler {
	return &MediaHandler{
		db:      db,
		storage: storage,
		audit:   dispatcher,
	}
}

// UploadCover handles PUT /api/me/events/:id/cover with a multipart
// "image" field: decode, scale, re-encode as webp, push to the bucket
// and store the resulting URL on the event.
func (h *MediaHandler) UploadCover(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	organizerID := c.MustGet(middleware.ContextOrganizerID).(uint)

	if h.storage == nil {
		httperr.Internal(c, "media_storage_disabled", "Media storage is not configured.")
		return
	}

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_event_id", "Invalid event id.")
		return
	}

	var ev models.Event
	if err := h.db.
		Where("id = ? AND organizer_id = ?", eventID, organizerID).
		First(&ev).Error; err != nil {
		httperr.NotFound(c, "event_not_found", "Event not found.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil || file.Size > maxUploadBytes {
		httperr.BadRequest(c, "invalid_image", "Image missing or too large.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Error reading image.")
		return
	}
	defer src.Close()

	encoded, err := media.ProcessCover(src)
	if err != nil {
		if code, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, code, "Unsupported image.")
			return
		}
		httperr.Internal(c, "failed_to_process_image", "Error processing image.")
		return
	}

	key := fmt.Sprintf("covers/%s/%s.webp", ev.PublicID, uuid.NewString())
	url, err := h.storage.UploadCover(c.Request.Context(), key, encoded)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Error uploading image.")
		return
	}

	ev.CoverURL = url
	if err := h.db.Save(&ev).Error; err != nil {
		httperr.Internal(c, "failed_to_save_event", "Error saving event.")
		return
	}

	h.audit.Dispatch(audit.Event{
		OrganizerID: organizerID,
		UserID:      &userID,
		Action:      "event_cover_updated",
		Entity:      "event",
		EntityID:    &ev.ID,
	})

	c.JSON(http.StatusOK, gin.H{"cover_url": url})
}
