package ports

import (
	"context"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// UpdateStatus is a compare-and-swap on the revision read with the
	// booking; a stale revision fails with domain.ErrConcurrentUpdate.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, revision int64) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListByProvider(ctx context.Context, providerID domain.ProviderAccountID) ([]*domain.Booking, error)
}
