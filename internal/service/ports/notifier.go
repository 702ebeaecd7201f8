package ports

import (
	"context"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

// BookingNotifier fans booking events out to the realtime sink. Delivery is
// best-effort and never part of an operation's outcome.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingAccepted(ctx context.Context, b *domain.Booking)
	NotifyBookingStatusUpdated(ctx context.Context, b *domain.Booking)
	NotifyProviderLocation(ctx context.Context, loc domain.ProviderLocation)
}

// OpsAlerter raises human-facing alerts for settlement trouble.
type OpsAlerter interface {
	AlertPaymentFailed(ctx context.Context, p *domain.Payment, reason string)
	AlertSettlementError(ctx context.Context, intentID string, err error)
}
