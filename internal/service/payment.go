package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/0thman3698/on-demand-backend/internal/domain"
	"github.com/0thman3698/on-demand-backend/internal/service/ports"
)

// Environment selects the coordinator's trust posture. Development relaxes
// signature verification and echoes client secrets; production verifies
// strictly and echoes nothing.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// PaymentConfig is injected at construction. Business rules never read
// ambient process state.
type PaymentConfig struct {
	Environment   Environment
	Provider      string // gateway name used as the intent id prefix
	WebhookSecret string
	AppURL        string
}

type PaymentService struct {
	accessPolicy
	payments ports.PaymentRepo
	bookings ports.BookingRepo
	accounts ports.AccountRepo
	alerter  ports.OpsAlerter
	cfg      PaymentConfig
	logger   logger.Logger
}

func NewPaymentService(
	payments ports.PaymentRepo,
	bookings ports.BookingRepo,
	accounts ports.AccountRepo,
	providers ports.ProviderRepo,
	alerter ports.OpsAlerter,
	cfg PaymentConfig,
	logger logger.Logger,
) *PaymentService {
	if cfg.Provider == "" {
		cfg.Provider = "stripe"
	}
	return &PaymentService{
		accessPolicy: accessPolicy{providers: providers},
		payments:     payments,
		bookings:     bookings,
		accounts:     accounts,
		alerter:      alerter,
		cfg:          cfg,
		logger:       logger,
	}
}

// CreateIntent mints a payment intent for a PENDING or ACCEPTED booking owned
// by the requester. An existing active payment is returned unchanged so
// client retries stay safe; only a FAILED payment falls through to a fresh
// intent.
func (s *PaymentService) CreateIntent(ctx context.Context, userID string, input domain.CreateIntentInput) (*domain.PaymentIntent, error) {
	if _, err := requireActiveAccount(ctx, s.accounts, userID, domain.RoleUser); err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, fmt.Errorf("%w: you can only create payment for your own bookings", domain.ErrForbidden)
	}

	if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusAccepted {
		return nil, fmt.Errorf("%w: cannot create payment for booking with status %s, booking must be PENDING or ACCEPTED",
			domain.ErrValidation, booking.Status)
	}

	existing, err := s.payments.GetByBookingID(ctx, booking.ID)
	if err != nil && !errors.Is(err, domain.ErrPaymentNotFound) {
		return nil, fmt.Errorf("check existing payment: %w", err)
	}
	if existing != nil {
		switch existing.Status {
		case domain.PaymentStatusSucceeded:
			return s.intentResponse(existing, "Payment already completed"), nil
		case domain.PaymentStatusPending, domain.PaymentStatusProcessing:
			return s.intentResponse(existing, "Payment intent already exists"), nil
		}
		// FAILED: mint a replacement intent.
	}

	intentID := s.newIntentID()
	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:              uuid.New().String(),
		BookingID:       booking.ID,
		UserID:          userID,
		Amount:          booking.Price,
		Status:          domain.PaymentStatusPending,
		Method:          input.Method,
		PaymentIntentID: intentID,
		ClientSecret:    fmt.Sprintf("%s_secret_%s", intentID, randomToken()),
		PaymentLink:     fmt.Sprintf("%s/payments/confirm/%s", s.cfg.AppURL, intentID),
		Provider:        s.cfg.Provider,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.logger.Info("payment intent created",
		logger.String("payment_id", payment.ID),
		logger.String("booking_id", booking.ID),
		logger.String("payment_intent_id", intentID),
	)

	return s.intentResponse(payment, ""), nil
}

// HandleWebhook applies a settlement event. It must stay safe under
// at-least-once delivery: a payment already SUCCEEDED or CANCELLED short-
// circuits without mutation.
func (s *PaymentService) HandleWebhook(ctx context.Context, evt domain.WebhookEvent) (*domain.WebhookResult, error) {
	if err := s.verifySignature(evt); err != nil {
		return nil, err
	}

	payment, err := s.payments.GetByIntentID(ctx, evt.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("resolve payment: %w", err)
	}

	if payment.Status == domain.PaymentStatusSucceeded || payment.Status == domain.PaymentStatusCancelled {
		return &domain.WebhookResult{
			Message:   "Payment already processed",
			PaymentID: payment.ID,
			Status:    payment.Status,
		}, nil
	}

	switch evt.Event {
	case domain.WebhookEventSucceeded, domain.WebhookEventIntentSucceeded:
		return s.handleSuccess(ctx, payment, evt)
	case domain.WebhookEventFailed, domain.WebhookEventIntentFailed:
		return s.handleFailure(ctx, payment, evt)
	case domain.WebhookEventCancelled, domain.WebhookEventIntentCancelled:
		return s.handleCancellation(ctx, payment, evt)
	default:
		return nil, fmt.Errorf("%w: unsupported webhook event: %s", domain.ErrValidation, evt.Event)
	}
}

// GetByBooking returns the payment for a booking the principal may see.
func (s *PaymentService) GetByBooking(ctx context.Context, bookingID string, p domain.Principal) (*domain.Payment, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err := s.authorizeBooking(ctx, booking, p); err != nil {
		return nil, err
	}

	return s.payments.GetByBookingID(ctx, bookingID)
}

func (s *PaymentService) handleSuccess(ctx context.Context, payment *domain.Payment, evt domain.WebhookEvent) (*domain.WebhookResult, error) {
	paidAt := time.Now().UTC()
	payment.Status = domain.PaymentStatusSucceeded
	payment.TransactionID = evt.TransactionID
	payment.PaidAt = &paidAt
	payment.Metadata = evt.Data

	// One transaction: the payment settles and the booking completes
	// together, or neither does. Settlement is the authoritative completion
	// signal and the only non-provider writer of booking status.
	if err := s.payments.Settle(ctx, payment); err != nil {
		go s.alerter.AlertSettlementError(context.WithoutCancel(ctx), payment.PaymentIntentID, err)
		return nil, fmt.Errorf("settle payment: %w", err)
	}

	s.logger.Info("payment settled",
		logger.String("payment_id", payment.ID),
		logger.String("booking_id", payment.BookingID),
		logger.String("transaction_id", payment.TransactionID),
	)

	return &domain.WebhookResult{
		Message:   "Payment processed successfully",
		PaymentID: payment.ID,
		BookingID: payment.BookingID,
		Status:    payment.Status,
	}, nil
}

func (s *PaymentService) handleFailure(ctx context.Context, payment *domain.Payment, evt domain.WebhookEvent) (*domain.WebhookResult, error) {
	payment.Status = domain.PaymentStatusFailed
	payment.FailureReason = failureReason(evt.Data)
	payment.Metadata = evt.Data

	if err := s.payments.MarkFailed(ctx, payment); err != nil {
		return nil, fmt.Errorf("mark payment failed: %w", err)
	}

	s.logger.Warn("payment failed",
		logger.String("payment_id", payment.ID),
		logger.String("reason", payment.FailureReason),
	)
	go s.alerter.AlertPaymentFailed(context.WithoutCancel(ctx), payment, payment.FailureReason)

	return &domain.WebhookResult{
		Message:       "Payment failed",
		PaymentID:     payment.ID,
		Status:        payment.Status,
		FailureReason: payment.FailureReason,
	}, nil
}

func (s *PaymentService) handleCancellation(ctx context.Context, payment *domain.Payment, evt domain.WebhookEvent) (*domain.WebhookResult, error) {
	payment.Status = domain.PaymentStatusCancelled
	payment.Metadata = evt.Data

	if err := s.payments.MarkCancelled(ctx, payment); err != nil {
		return nil, fmt.Errorf("mark payment cancelled: %w", err)
	}

	return &domain.WebhookResult{
		Message:   "Payment cancelled",
		PaymentID: payment.ID,
		Status:    payment.Status,
	}, nil
}

// verifySignature checks an HMAC-SHA256 over "<event>.<paymentIntentId>"
// keyed with the webhook secret. Development skips verification entirely.
func (s *PaymentService) verifySignature(evt domain.WebhookEvent) error {
	if s.cfg.Environment == EnvDevelopment {
		return nil
	}

	expected := SignWebhook(s.cfg.WebhookSecret, evt.Event, evt.PaymentIntentID)
	if evt.Signature == "" || !hmac.Equal([]byte(expected), []byte(evt.Signature)) {
		return domain.ErrInvalidSignature
	}
	return nil
}

// SignWebhook computes the hex HMAC-SHA256 webhook signature. Exported so the
// gateway simulator and tests can produce valid deliveries.
func SignWebhook(secret, event, intentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(event + "." + intentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// failureReason extracts a human-readable reason: an explicit failure_reason
// field, then a generic message, then a fixed default.
func failureReason(data map[string]string) string {
	if r, ok := data["failure_reason"]; ok && r != "" {
		return r
	}
	if m, ok := data["message"]; ok && m != "" {
		return m
	}
	return "Payment failed"
}

func (s *PaymentService) intentResponse(p *domain.Payment, message string) *domain.PaymentIntent {
	resp := &domain.PaymentIntent{
		PaymentID:   p.ID,
		BookingID:   p.BookingID,
		Amount:      p.Amount,
		Status:      p.Status,
		IntentID:    p.PaymentIntentID,
		PaymentLink: p.PaymentLink,
		Message:     message,
	}
	// The client secret is never echoed in production.
	if s.cfg.Environment == EnvDevelopment {
		resp.ClientSecret = p.ClientSecret
	}
	return resp
}

func (s *PaymentService) newIntentID() string {
	return fmt.Sprintf("%s_pi_%d_%s", s.cfg.Provider, time.Now().UnixMilli(), randomToken())
}

func randomToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:13]
}
