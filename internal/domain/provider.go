package domain

import (
	"fmt"
	"time"
)

// ProviderAccountID is the account id of a provider. Bookings and reviews
// reference providers by this id only; a ProviderProfile's own row id must
// never be stored or compared in that role.
type ProviderAccountID string

type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "AVAILABLE"
	AvailabilityBusy        AvailabilityStatus = "BUSY"
	AvailabilityUnavailable AvailabilityStatus = "UNAVAILABLE"
)

// DaySchedule is one day's working window. Start and End are HH:MM.
type DaySchedule struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// WeeklySchedule maps a closed set of lowercase day names to an optional
// working window.
type WeeklySchedule map[string]DaySchedule

var weekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Validate checks day keys, HH:MM format and start < end.
func (w WeeklySchedule) Validate() error {
	known := make(map[string]struct{}, len(weekDays))
	for _, d := range weekDays {
		known[d] = struct{}{}
	}

	for day, sched := range w {
		if _, ok := known[day]; !ok {
			return fmt.Errorf("%w: unknown day %q", ErrValidation, day)
		}
		start, err := parseClock(sched.Start)
		if err != nil {
			return fmt.Errorf("%w: %s start: %v", ErrValidation, day, err)
		}
		end, err := parseClock(sched.End)
		if err != nil {
			return fmt.Errorf("%w: %s end: %v", ErrValidation, day, err)
		}
		if start >= end {
			return fmt.Errorf("%w: %s: start must be before end", ErrValidation, day)
		}
	}

	return nil
}

// parseClock parses HH:MM into minutes since midnight.
func parseClock(s string) (int, error) {
	if len(s) != 5 {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ProviderProfile is the one-to-one provider extension of an Account with
// role PROVIDER. Rating and TotalReviews are derived from reviews and cached
// here.
type ProviderProfile struct {
	ID                 string             `json:"id"`
	UserID             ProviderAccountID  `json:"user_id"`
	Verified           bool               `json:"verified"`
	Services           []string           `json:"services"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	Rating             float64            `json:"rating"`
	TotalReviews       int                `json:"total_reviews"`
	Expertise          string             `json:"expertise,omitempty"`
	Bio                string             `json:"bio,omitempty"`
	WeeklySchedule     WeeklySchedule     `json:"weekly_schedule,omitempty"`
	RejectionReason    string             `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type ApplyProviderInput struct {
	Services       []string
	Expertise      string
	Bio            string
	WeeklySchedule WeeklySchedule
}

// ProviderLocation is a realtime position update. It is fanned out to the
// notification sink and never persisted.
type ProviderLocation struct {
	ProviderID ProviderAccountID `json:"provider_id"`
	BookingID  string            `json:"booking_id,omitempty"`
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	Timestamp  time.Time         `json:"timestamp"`
}
