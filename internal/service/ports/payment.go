package ports

import (
	"context"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error)
	GetByIntentID(ctx context.Context, intentID string) (*domain.Payment, error)
	// Settle marks the payment SUCCEEDED and forces the linked booking to
	// COMPLETED unless it already is, in a single transaction. The payment
	// write is a compare-and-swap on p.Revision.
	Settle(ctx context.Context, p *domain.Payment) error
	MarkFailed(ctx context.Context, p *domain.Payment) error
	MarkCancelled(ctx context.Context, p *domain.Payment) error
}
