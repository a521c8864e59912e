package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cityvent/events-api/internal/models"
)

type Repository interface {
	// -------- Organizer --------
	GetOrganizerByID(
		ctx context.Context,
		id uint,
	) (*models.Organizer, error)

	GetOrganizerBySlug(
		ctx context.Context,
		slug string,
	) (*models.Organizer, error)

	// -------- Event (authoring) --------
	CreateEvent(
		ctx context.Context,
		ev *models.Event,
	) error

	GetEventForOrganizer(
		ctx context.Context,
		eventID uint,
		organizerID uint,
	) (*models.Event, error)

	UpdateEvent(
		ctx context.Context,
		ev *models.Event,
	) error

	// -------- Event (discovery) --------
	GetEventByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.Event, error)

	ListPublishedForPeriod(
		ctx context.Context,
		filter SearchFilter,
		start time.Time,
		end time.Time,
	) ([]models.Event, error)

	ListEventsForOrganizer(
		ctx context.Context,
		organizerID uint,
	) ([]models.Event, error)
}

// SearchFilter narrows the public discovery feed. Empty fields match
// everything.
type SearchFilter struct {
	City     string
	Category string
}
