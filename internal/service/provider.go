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

type ProviderService struct {
	providers ports.ProviderRepo
	accounts  ports.AccountRepo
	catalog   ports.CatalogRepo
	notifier  ports.BookingNotifier
	logger    logger.Logger
}

func NewProviderService(
	providers ports.ProviderRepo,
	accounts ports.AccountRepo,
	catalog ports.CatalogRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *ProviderService {
	return &ProviderService{
		providers: providers,
		accounts:  accounts,
		catalog:   catalog,
		notifier:  notifier,
		logger:    logger,
	}
}

// Apply submits a provider application. The profile starts unverified;
// moderation flips the flag through the admin module.
func (s *ProviderService) Apply(ctx context.Context, userID string, input domain.ApplyProviderInput) (*domain.ProviderProfile, error) {
	if _, err := requireActiveAccount(ctx, s.accounts, userID, domain.RoleProvider); err != nil {
		return nil, err
	}

	if input.WeeklySchedule != nil {
		if err := input.WeeklySchedule.Validate(); err != nil {
			return nil, err
		}
	}

	for _, serviceID := range input.Services {
		svc, err := s.catalog.GetServiceByID(ctx, serviceID)
		if err != nil {
			return nil, fmt.Errorf("check service %s: %w", serviceID, err)
		}
		if !svc.IsActive {
			return nil, fmt.Errorf("%w: service %s is not active", domain.ErrValidation, serviceID)
		}
	}

	now := time.Now().UTC()
	profile := &domain.ProviderProfile{
		ID:                 uuid.New().String(),
		UserID:             domain.ProviderAccountID(userID),
		Verified:           false,
		Services:           input.Services,
		AvailabilityStatus: domain.AvailabilityAvailable,
		Expertise:          input.Expertise,
		Bio:                input.Bio,
		WeeklySchedule:     input.WeeklySchedule,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.providers.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create provider profile: %w", err)
	}

	s.logger.Info("provider application submitted",
		logger.String("provider_id", userID),
	)

	return profile, nil
}

func (s *ProviderService) GetProfile(ctx context.Context, userID string) (*domain.ProviderProfile, error) {
	return s.providers.GetByUserID(ctx, domain.ProviderAccountID(userID))
}

func (s *ProviderService) UpdateAvailability(ctx context.Context, userID string, status domain.AvailabilityStatus) error {
	switch status {
	case domain.AvailabilityAvailable, domain.AvailabilityBusy, domain.AvailabilityUnavailable:
	default:
		return fmt.Errorf("%w: unknown availability status %q", domain.ErrValidation, status)
	}

	if _, err := s.providers.GetByUserID(ctx, domain.ProviderAccountID(userID)); err != nil {
		return err
	}

	return s.providers.UpdateAvailability(ctx, domain.ProviderAccountID(userID), status)
}

// UpdateLocation fans a position update out to the realtime sink. Locations
// are never persisted.
func (s *ProviderService) UpdateLocation(ctx context.Context, userID string, lat, lng float64, bookingID string) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: coordinates out of range", domain.ErrValidation)
	}

	if _, err := s.providers.GetByUserID(ctx, domain.ProviderAccountID(userID)); err != nil {
		return err
	}

	loc := domain.ProviderLocation{
		ProviderID: domain.ProviderAccountID(userID),
		BookingID:  bookingID,
		Latitude:   lat,
		Longitude:  lng,
		Timestamp:  time.Now().UTC(),
	}
	go s.notifier.NotifyProviderLocation(context.WithoutCancel(ctx), loc)

	return nil
}
