package ports

import (
	"context"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) error
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Review, error)
	ListByProvider(ctx context.Context, providerID domain.ProviderAccountID) ([]*domain.Review, error)
}
