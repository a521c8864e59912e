package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/cityvent/events-api/internal/domain/event"
	"github.com/cityvent/events-api/internal/httperr"
	"github.com/cityvent/events-api/internal/models"
)

const pgUniqueViolation = "23505"

type EventGormRepository struct {
	db *gorm.DB
}

func NewEventGormRepository(db *gorm.DB) *EventGormRepository {
	return &EventGormRepository{db: db}
}

// --------------------------------------------------
// Organizer
// --------------------------------------------------

func (r *EventGormRepository) GetOrganizerByID(
	ctx context.Context,
	id uint,
) (*models.Organizer, error) {

	var org models.Organizer
	if err := r.db.WithContext(ctx).First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *EventGormRepository) GetOrganizerBySlug(
	ctx context.Context,
	slug string,
) (*models.Organizer, error) {

	var org models.Organizer
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// --------------------------------------------------
// Event (authoring)
// --------------------------------------------------

func (r *EventGormRepository) CreateEvent(
	ctx context.Context,
	ev *models.Event,
) error {

	if err := r.db.WithContext(ctx).Create(ev).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return httperr.ErrBusiness("event_already_exists")
		}
		return err
	}
	return nil
}

func (r *EventGormRepository) GetEventForOrganizer(
	ctx context.Context,
	eventID uint,
	organizerID uint,
) (*models.Event, error) {

	var ev models.Event
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organizer_id = ?", eventID, organizerID).
		First(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *EventGormRepository) UpdateEvent(
	ctx context.Context,
	ev *models.Event,
) error {
	return r.db.WithContext(ctx).Save(ev).Error
}

// --------------------------------------------------
// Event (discovery)
// --------------------------------------------------

func (r *EventGormRepository) GetEventByPublicID(
	ctx context.Context,
	publicID uuid.UUID,
) (*models.Event, error) {

	var ev models.Event
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

// ListPublishedForPeriod returns published events whose active window
// overlaps [start, end). Events without an end date stay listed for as
// long as they have started.
func (r *EventGormRepository) ListPublishedForPeriod(
	ctx context.Context,
	filter domain.SearchFilter,
	start time.Time,
	end time.Time,
) ([]models.Event, error) {

	q := r.db.WithContext(ctx).
		Where("status = ?", string(domain.StatusPublished)).
		Where("starts_at < ?", end).
		Where("ends_at IS NULL OR ends_at >= ?", start)

	if filter.City != "" {
		q = q.Where("LOWER(city) = LOWER(?)", filter.City)
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", filter.Category)
	}

	var events []models.Event
	if err := q.Order("starts_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventGormRepository) ListEventsForOrganizer(
	ctx context.Context,
	organizerID uint,
) ([]models.Event, error) {

	var events []models.Event
	if err := r.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("starts_at ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Compile-time check
var _ domain.Repository = (*EventGormRepository)(nil)
