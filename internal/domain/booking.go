package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusAccepted  BookingStatus = "ACCEPTED"
	BookingStatusOnTheWay  BookingStatus = "ON_THE_WAY"
	BookingStatusStarted   BookingStatus = "STARTED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// BookingStatuses lists every recognized status.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAccepted,
	BookingStatusOnTheWay,
	BookingStatusStarted,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

// bookingTransitions is the lifecycle table. COMPLETED and CANCELLED are
// terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusAccepted, BookingStatusCancelled},
	BookingStatusAccepted:  {BookingStatusOnTheWay},
	BookingStatusOnTheWay:  {BookingStatusStarted},
	BookingStatusStarted:   {BookingStatusCompleted},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

// Valid reports whether s is a recognized booking status.
func (s BookingStatus) Valid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// AllowedNext returns the statuses reachable from s, sorted for stable error
// messages.
func (s BookingStatus) AllowedNext() []BookingStatus {
	next := make([]BookingStatus, len(bookingTransitions[s]))
	copy(next, bookingTransitions[s])
	sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
	return next
}

// ValidateTransition checks the lifecycle table. A transition to the same
// status is always a valid no-op; anything not in the table fails with a
// forbidden-class error naming the current status and the reachable set.
func ValidateTransition(current, next BookingStatus) error {
	if current == next {
		return nil
	}

	for _, allowed := range bookingTransitions[current] {
		if allowed == next {
			return nil
		}
	}

	allowed := current.AllowedNext()
	names := make([]string, len(allowed))
	for i, s := range allowed {
		names[i] = string(s)
	}
	return fmt.Errorf("%w: cannot change from %s to %s, valid transitions from %s are: %s",
		ErrInvalidTransition, current, next, current, strings.Join(names, ", "))
}

// Booking is a scheduled engagement between a customer and a provider.
// ProviderID is the provider's account id. Price is captured at creation and
// never recomputed from the catalog. Revision guards concurrent status
// writes.
type Booking struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	ProviderID  ProviderAccountID `json:"provider_id"`
	ServiceID   string            `json:"service_id"`
	Status      BookingStatus     `json:"status"`
	ScheduledAt time.Time         `json:"scheduled_at"`
	Price       float64           `json:"price"`
	Address     string            `json:"address,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Revision    int64             `json:"revision"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type CreateBookingInput struct {
	ProviderID  ProviderAccountID
	ServiceID   string
	ScheduledAt time.Time
	Price       float64
	Address     string
	Notes       string
}
