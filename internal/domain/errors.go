package domain

import "errors"

// Not found: the referenced record does not exist or is soft-deleted.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrProviderNotFound = errors.New("provider profile not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingsNotFound = errors.New("bookings not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrReviewNotFound   = errors.New("review not found")
)

// Forbidden: the principal is authenticated but lacks rights over this
// record. Invalid lifecycle transitions are deliberately forbidden-class, not
// validation-class.
var (
	ErrForbidden          = errors.New("forbidden")
	ErrAccountSuspended   = errors.New("account is suspended")
	ErrUnverifiedProvider = errors.New("cannot book with unverified provider")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
)

// Validation: well-formed request, semantically invalid.
var ErrValidation = errors.New("validation error")

// Conflict: uniqueness violation or lost concurrent write.
var (
	ErrProviderExists   = errors.New("provider profile already exists")
	ErrReviewExists     = errors.New("booking has already been reviewed")
	ErrConcurrentUpdate = errors.New("record was modified concurrently, retry")
)
