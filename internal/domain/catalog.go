package domain

import "time"

// Service is the catalog entry a booking is made against. The catalog is
// managed elsewhere; bookings only need "exists, is active, belongs to a
// category".
type Service struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	CategoryID string     `json:"category_id"`
	BasePrice  float64    `json:"base_price"`
	Duration   int        `json:"duration"` // minutes
	IsActive   bool       `json:"is_active"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
