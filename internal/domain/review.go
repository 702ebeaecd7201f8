package domain

import "time"

// Review closes the loop on a completed booking. At most one review per
// booking; ProviderID is copied from the booking at creation.
type Review struct {
	ID         string            `json:"id"`
	BookingID  string            `json:"booking_id"`
	UserID     string            `json:"user_id"`
	ProviderID ProviderAccountID `json:"provider_id"`
	Rating     int               `json:"rating"`
	Comment    string            `json:"comment,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type CreateReviewInput struct {
	BookingID string
	Rating    int
	Comment   string
}

// ProviderReviews is the listForProvider result. AverageRating and
// TotalReviews are the cached profile aggregates, not recomputed at read
// time.
type ProviderReviews struct {
	ProviderID    ProviderAccountID `json:"provider_id"`
	TotalReviews  int               `json:"total_reviews"`
	AverageRating float64           `json:"average_rating"`
	Reviews       []*Review         `json:"reviews"`
}
