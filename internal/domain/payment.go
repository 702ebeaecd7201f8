package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusSucceeded  PaymentStatus = "SUCCEEDED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentMethodCard      PaymentMethod = "CARD"
	PaymentMethodApplePay  PaymentMethod = "APPLE_PAY"
	PaymentMethodGooglePay PaymentMethod = "GOOGLE_PAY"
	PaymentMethodCash      PaymentMethod = "CASH"
)

// Payment settles a single booking. BookingID and PaymentIntentID are unique;
// a FAILED payment does not block minting a replacement intent. Revision
// guards concurrent status writes.
type Payment struct {
	ID              string            `json:"id"`
	BookingID       string            `json:"booking_id"`
	UserID          string            `json:"user_id"`
	Amount          float64           `json:"amount"`
	Status          PaymentStatus     `json:"status"`
	Method          PaymentMethod     `json:"method,omitempty"`
	PaymentIntentID string            `json:"payment_intent_id"`
	ClientSecret    string            `json:"client_secret,omitempty"`
	PaymentLink     string            `json:"payment_link,omitempty"`
	TransactionID   string            `json:"transaction_id,omitempty"`
	Provider        string            `json:"provider,omitempty"`
	FailureReason   string            `json:"failure_reason,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	PaidAt          *time.Time        `json:"paid_at,omitempty"`
	Revision        int64             `json:"revision"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type CreateIntentInput struct {
	BookingID string
	Method    PaymentMethod
}

// PaymentIntent is the createIntent result. Message is set when an existing
// payment was returned instead of minting a new intent. ClientSecret is
// echoed only in development mode.
type PaymentIntent struct {
	PaymentID    string        `json:"payment_id"`
	BookingID    string        `json:"booking_id"`
	Amount       float64       `json:"amount"`
	Status       PaymentStatus `json:"status"`
	IntentID     string        `json:"payment_intent_id"`
	ClientSecret string        `json:"client_secret,omitempty"`
	PaymentLink  string        `json:"payment_link,omitempty"`
	Message      string        `json:"message,omitempty"`
}

// Recognized settlement webhook events.
const (
	WebhookEventSucceeded       = "payment.succeeded"
	WebhookEventIntentSucceeded = "payment_intent.succeeded"
	WebhookEventFailed          = "payment.failed"
	WebhookEventIntentFailed    = "payment_intent.failed"
	WebhookEventCancelled       = "payment.cancelled"
	WebhookEventIntentCancelled = "payment_intent.cancelled"
)

// WebhookEvent is a settlement notification from the payment gateway.
// Delivery is at-least-once from an untrusted network caller.
type WebhookEvent struct {
	Event           string            `json:"event"`
	PaymentIntentID string            `json:"payment_intent_id"`
	TransactionID   string            `json:"transaction_id,omitempty"`
	Data            map[string]string `json:"data,omitempty"`
	Signature       string            `json:"signature,omitempty"`
}

// WebhookResult reports what a webhook delivery did.
type WebhookResult struct {
	Message       string        `json:"message"`
	PaymentID     string        `json:"payment_id"`
	BookingID     string        `json:"booking_id,omitempty"`
	Status        PaymentStatus `json:"status"`
	FailureReason string        `json:"failure_reason,omitempty"`
}
