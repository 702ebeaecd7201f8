package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/0thman3698/on-demand-backend/internal/domain"
	"github.com/0thman3698/on-demand-backend/internal/service/ports"
)

type BookingService struct {
	accessPolicy
	bookings ports.BookingRepo
	accounts ports.AccountRepo
	catalog  ports.CatalogRepo
	notifier ports.BookingNotifier
	logger   logger.Logger
}

func NewBookingService(
	bookings ports.BookingRepo,
	accounts ports.AccountRepo,
	providers ports.ProviderRepo,
	catalog ports.CatalogRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		accessPolicy: accessPolicy{providers: providers},
		bookings:     bookings,
		accounts:     accounts,
		catalog:      catalog,
		notifier:     notifier,
		logger:       logger,
	}
}

// Create opens a new booking in PENDING. The customer must be an active USER
// account, the provider must have a verified profile, the catalog service
// must be active and the schedule must be strictly in the future. Price is
// captured as given, not recomputed from the catalog.
func (s *BookingService) Create(ctx context.Context, userID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	if _, err := requireActiveAccount(ctx, s.accounts, userID, domain.RoleUser); err != nil {
		return nil, err
	}

	profile, err := s.providers.GetByUserID(ctx, input.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("check provider: %w", err)
	}
	if !profile.Verified {
		return nil, domain.ErrUnverifiedProvider
	}

	svc, err := s.catalog.GetServiceByID(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}
	if !svc.IsActive {
		return nil, fmt.Errorf("%w: service %s is not active", domain.ErrValidation, svc.ID)
	}

	if !input.ScheduledAt.After(time.Now()) {
		return nil, fmt.Errorf("%w: scheduled date must be in the future", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		UserID:      userID,
		ProviderID:  input.ProviderID,
		ServiceID:   input.ServiceID,
		Status:      domain.BookingStatusPending,
		ScheduledAt: input.ScheduledAt,
		Price:       input.Price,
		Address:     input.Address,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", userID),
		logger.String("provider_id", string(input.ProviderID)),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// UpdateStatus advances the lifecycle. Only the assigned provider may
// request a transition; settlement is the one other writer and goes through
// the payment coordinator instead.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID, requesterID string, next domain.BookingStatus) (*domain.Booking, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, next)
	}

	if _, err := requireActiveAccount(ctx, s.accounts, requesterID, domain.RoleProvider); err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err := s.authorizeBooking(ctx, booking, domain.Principal{AccountID: requesterID, Role: domain.RoleProvider}); err != nil {
		return nil, err
	}

	if err := domain.ValidateTransition(booking.Status, next); err != nil {
		return nil, err
	}

	if booking.Status == next {
		// Idempotent re-submission, nothing to write.
		return booking, nil
	}

	if err := s.bookings.UpdateStatus(ctx, booking.ID, next, booking.Revision); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	prev := booking.Status
	booking.Status = next
	booking.Revision++

	s.logger.Info("booking status updated",
		logger.String("booking_id", booking.ID),
		logger.String("from", string(prev)),
		logger.String("to", string(next)),
	)

	if next == domain.BookingStatusAccepted {
		go s.notifier.NotifyBookingAccepted(context.WithoutCancel(ctx), booking)
	}
	go s.notifier.NotifyBookingStatusUpdated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// Get loads a booking and applies the ownership rules for the principal.
func (s *BookingService) Get(ctx context.Context, bookingID string, p domain.Principal) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err := s.authorizeBooking(ctx, booking, p); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// ListForProvider returns the provider's bookings. A provider with zero
// bookings is a not-found, not an empty list.
func (s *BookingService) ListForProvider(ctx context.Context, providerAccountID string) ([]*domain.Booking, error) {
	profile, err := s.providers.GetByUserID(ctx, domain.ProviderAccountID(providerAccountID))
	if err != nil {
		return nil, fmt.Errorf("resolve provider profile: %w", err)
	}

	bookings, err := s.bookings.ListByProvider(ctx, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("list provider bookings: %w", err)
	}
	if len(bookings) == 0 {
		return nil, domain.ErrBookingsNotFound
	}

	return bookings, nil
}
