package dto

import (
	"time"

	"github.com/google/uuid"
)

type EventListDTO struct {
	ID          uint       `json:"id,omitempty"`
	PublicID    uuid.UUID  `json:"public_id"`
	Title       string     `json:"title"`
	Status      string     `json:"status,omitempty"`
	Category    string     `json:"category"`
	Venue       string     `json:"venue"`
	City        string     `json:"city"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	CoverURL    string     `json:"cover_url"`
	TicketPrice float64    `json:"ticket_price"`
	IsLive      bool       `json:"is_live"`
	LiveUntil   *time.Time `json:"live_until"`
}
