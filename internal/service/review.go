package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/0thman3698/on-demand-backend/internal/domain"
	"github.com/0thman3698/on-demand-backend/internal/service/ports"
)

type ReviewService struct {
	reviews   ports.ReviewRepo
	bookings  ports.BookingRepo
	accounts  ports.AccountRepo
	providers ports.ProviderRepo
	logger    logger.Logger
}

func NewReviewService(
	reviews ports.ReviewRepo,
	bookings ports.BookingRepo,
	accounts ports.AccountRepo,
	providers ports.ProviderRepo,
	logger logger.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:   reviews,
		bookings:  bookings,
		accounts:  accounts,
		providers: providers,
		logger:    logger,
	}
}

// Create attaches the single review a completed booking may carry, then
// recomputes the provider's cached rating aggregate.
func (s *ReviewService) Create(ctx context.Context, userID string, input domain.CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	if _, err := requireActiveAccount(ctx, s.accounts, userID, domain.RoleUser); err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, fmt.Errorf("%w: you can only review your own bookings", domain.ErrForbidden)
	}

	// Checked at review time, not "was ever completed".
	if booking.Status != domain.BookingStatusCompleted {
		return nil, fmt.Errorf("%w: cannot review booking with status %s, booking must be COMPLETED",
			domain.ErrValidation, booking.Status)
	}

	now := time.Now().UTC()
	review := &domain.Review{
		ID:         uuid.New().String(),
		BookingID:  booking.ID,
		UserID:     userID,
		ProviderID: booking.ProviderID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	if err := s.recomputeProviderRating(ctx, booking.ProviderID); err != nil {
		// The review is already persisted; a stale aggregate heals on the
		// next review.
		s.logger.Error("failed to recompute provider rating",
			logger.String("provider_id", string(booking.ProviderID)),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("review created",
		logger.String("review_id", review.ID),
		logger.String("booking_id", booking.ID),
		logger.Int("rating", review.Rating),
	)

	return review, nil
}

// ListForProvider returns all reviews plus the cached aggregate from the
// profile. The cache is the source of truth for display.
func (s *ReviewService) ListForProvider(ctx context.Context, providerAccountID string) (*domain.ProviderReviews, error) {
	profile, err := s.providers.GetByUserID(ctx, domain.ProviderAccountID(providerAccountID))
	if err != nil {
		return nil, fmt.Errorf("resolve provider profile: %w", err)
	}

	reviews, err := s.reviews.ListByProvider(ctx, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return &domain.ProviderReviews{
		ProviderID:    profile.UserID,
		TotalReviews:  profile.TotalReviews,
		AverageRating: profile.Rating,
		Reviews:       reviews,
	}, nil
}

// recomputeProviderRating is a full scan over the provider's reviews, not an
// incremental running average.
func (s *ReviewService) recomputeProviderRating(ctx context.Context, providerID domain.ProviderAccountID) error {
	reviews, err := s.reviews.ListByProvider(ctx, providerID)
	if err != nil {
		return fmt.Errorf("list reviews: %w", err)
	}
	if len(reviews) == 0 {
		return nil
	}

	var total int
	for _, r := range reviews {
		total += r.Rating
	}
	avg := math.Round(float64(total)/float64(len(reviews))*100) / 100

	if err := s.providers.UpdateRating(ctx, providerID, avg, len(reviews)); err != nil {
		return fmt.Errorf("update provider rating: %w", err)
	}
	return nil
}
