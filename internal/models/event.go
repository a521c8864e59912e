package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cityvent/events-api/internal/schedule"
)

type Event struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"public_id"`

	OrganizerID uint      `json:"organizer_id"`
	Organizer   Organizer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"organizer"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"size:2000" json:"description"`
	Category    string `gorm:"size:50" json:"category"`

	Venue   string `gorm:"size:150" json:"venue"`
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100;index" json:"city"`

	StartsAt time.Time  `gorm:"index" json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`

	// Ordered operating-hours rules; replaced wholesale on every
	// schedule commit, never edited row by row.
	OperatingHours schedule.RowList `gorm:"type:jsonb" json:"operating_hours"`

	Status string `gorm:"size:20;default:'draft'" json:"status"`

	TicketPrice float64 `json:"ticket_price"`
	CoverURL    string  `gorm:"size:500" json:"cover_url"`

	PublishedAt *time.Time `json:"published_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.PublicID == uuid.Nil {
		e.PublicID = uuid.New()
	}
	return nil
}
