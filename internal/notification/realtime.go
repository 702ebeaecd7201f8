package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

// Routing keys delivered to the realtime fan-out. Consumers route them to
// the matching user/provider/booking rooms.
const (
	routingBookingCreated   = "booking.created"
	routingBookingAccepted  = "booking.accepted"
	routingStatusUpdated    = "booking.status.updated"
	routingProviderLocation = "provider.location.updated"
)

// RealtimePublisher pushes booking events onto a topic exchange. Delivery is
// best-effort: publish errors are logged and dropped, never surfaced to the
// operation that triggered them.
type RealtimePublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

func NewRealtimePublisher(url, exchange string, logger logger.Logger) (*RealtimePublisher, error) {
	if url == "" {
		logger.Warn("rabbitmq url is empty, realtime events disabled")
		return &RealtimePublisher{logger: logger}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &RealtimePublisher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

type bookingEvent struct {
	BookingID  string `json:"booking_id"`
	UserID     string `json:"user_id"`
	ProviderID string `json:"provider_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

func (p *RealtimePublisher) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, routingBookingCreated, newBookingEvent(b))
}

func (p *RealtimePublisher) NotifyBookingAccepted(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, routingBookingAccepted, newBookingEvent(b))
}

func (p *RealtimePublisher) NotifyBookingStatusUpdated(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, routingStatusUpdated, newBookingEvent(b))
}

func (p *RealtimePublisher) NotifyProviderLocation(ctx context.Context, loc domain.ProviderLocation) {
	p.publish(ctx, routingProviderLocation, loc)
}

func newBookingEvent(b *domain.Booking) bookingEvent {
	return bookingEvent{
		BookingID:  b.ID,
		UserID:     b.UserID,
		ProviderID: string(b.ProviderID),
		Status:     string(b.Status),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func (p *RealtimePublisher) publish(ctx context.Context, key string, v any) {
	if p.ch == nil {
		p.logger.Debug("realtime event skipped (publisher disabled)", logger.String("key", key))
		return
	}

	body, err := json.Marshal(v)
	if err != nil {
		p.logger.Error("failed to marshal realtime event",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		p.logger.Error("failed to publish realtime event",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (p *RealtimePublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
