package ports

import (
	"context"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

type ProviderRepo interface {
	Create(ctx context.Context, p *domain.ProviderProfile) error
	GetByUserID(ctx context.Context, userID domain.ProviderAccountID) (*domain.ProviderProfile, error)
	ListPending(ctx context.Context) ([]*domain.ProviderProfile, error)
	SetVerified(ctx context.Context, userID domain.ProviderAccountID, verified bool, reason string) error
	UpdateAvailability(ctx context.Context, userID domain.ProviderAccountID, status domain.AvailabilityStatus) error
	UpdateRating(ctx context.Context, userID domain.ProviderAccountID, rating float64, totalReviews int) error
}
