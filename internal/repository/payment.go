package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const paymentColumns = `id, booking_id, user_id, amount, status, method, payment_intent_id,
	client_secret, payment_link, transaction_id, provider, failure_reason, metadata,
	paid_at, revision, created_at, updated_at`

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	metadata, err := json.Marshal(p.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `INSERT INTO payments
				(id, booking_id, user_id, amount, status, method, payment_intent_id,
				 client_secret, payment_link, transaction_id, provider, failure_reason,
				 metadata, paid_at, revision, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 0, $15, $16)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.BookingID, p.UserID, p.Amount, p.Status, p.Method, p.PaymentIntentID,
		p.ClientSecret, p.PaymentLink, p.TransactionID, p.Provider, p.FailureReason,
		metadata, p.PaidAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error) {
	// The newest record wins: a FAILED payment may have been superseded by a
	// fresh intent for the same booking.
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE booking_id = $1
			  ORDER BY created_at DESC
			  LIMIT 1`

	return r.getOne(ctx, query, bookingID)
}

func (r *PaymentRepository) GetByIntentID(ctx context.Context, intentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE payment_intent_id = $1`

	return r.getOne(ctx, query, intentID)
}

// Settle writes the succeeded payment and forces the linked booking to
// COMPLETED in one transaction. The payment write is revision-guarded; the
// booking update skips rows already COMPLETED so duplicate deliveries stay
// idempotent.
func (r *PaymentRepository) Settle(ctx context.Context, p *domain.Payment) error {
	metadata, err := json.Marshal(p.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	paymentQuery := `UPDATE payments
					 SET status = $2, transaction_id = $3, paid_at = $4, metadata = $5,
						 revision = revision + 1, updated_at = now()
					 WHERE id = $1 AND revision = $6`
	res, err := tx.ExecContext(
		ctx, paymentQuery,
		p.ID, domain.PaymentStatusSucceeded, p.TransactionID, p.PaidAt, metadata, p.Revision,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("payment rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrConcurrentUpdate
	}

	bookingQuery := `UPDATE bookings
					 SET status = $2, revision = revision + 1, updated_at = now()
					 WHERE id = $1 AND status <> $2`
	if _, err = tx.ExecContext(ctx, bookingQuery, p.BookingID, domain.BookingStatusCompleted); err != nil {
		return fmt.Errorf("complete booking: %w", err)
	}

	return tx.Commit()
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, p *domain.Payment) error {
	metadata, err := json.Marshal(p.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `UPDATE payments
			  SET status = $2, failure_reason = $3, metadata = $4,
				  revision = revision + 1, updated_at = now()
			  WHERE id = $1 AND revision = $5`

	return r.guardedUpdate(ctx, query, p.ID, domain.PaymentStatusFailed, p.FailureReason, metadata, p.Revision)
}

func (r *PaymentRepository) MarkCancelled(ctx context.Context, p *domain.Payment) error {
	metadata, err := json.Marshal(p.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `UPDATE payments
			  SET status = $2, metadata = $3,
				  revision = revision + 1, updated_at = now()
			  WHERE id = $1 AND revision = $4`

	return r.guardedUpdate(ctx, query, p.ID, domain.PaymentStatusCancelled, metadata, p.Revision)
}

func (r *PaymentRepository) guardedUpdate(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("payment rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrConcurrentUpdate
	}

	return nil
}

func (r *PaymentRepository) getOne(ctx context.Context, query string, arg string) (*domain.Payment, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var (
		p        domain.Payment
		metadata []byte
	)
	if err = row.Scan(
		&p.ID, &p.BookingID, &p.UserID, &p.Amount, &p.Status, &p.Method,
		&p.PaymentIntentID, &p.ClientSecret, &p.PaymentLink, &p.TransactionID,
		&p.Provider, &p.FailureReason, &metadata, &p.PaidAt, &p.Revision,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	if len(metadata) > 0 {
		if err = json.Unmarshal(metadata, &p.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}

	return &p, nil
}
