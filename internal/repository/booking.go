package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, user_id, provider_id, service_id, status, scheduled_at, price,
	address, notes, revision, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings
				(id, user_id, provider_id, service_id, status, scheduled_at, price,
				 address, notes, revision, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.UserID, string(b.ProviderID), b.ServiceID, b.Status,
		b.ScheduledAt, b.Price, b.Address, b.Notes, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// UpdateStatus is a compare-and-swap: the write succeeds only when the row
// still carries the revision the caller read. A zero-row update against an
// existing booking means a concurrent writer won.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, revision int64) error {
	query := `UPDATE bookings
			  SET status = $2, revision = revision + 1, updated_at = now()
			  WHERE id = $1 AND revision = $3`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, revision)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`
		row, checkErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if checkErr != nil {
			return fmt.Errorf("check booking exists: %w", checkErr)
		}
		if checkErr = row.Scan(&exists); checkErr != nil {
			return fmt.Errorf("check booking exists: %w", checkErr)
		}
		if !exists {
			return domain.ErrBookingNotFound
		}
		return domain.ErrConcurrentUpdate
	}

	return nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

func (r *BookingRepository) ListByProvider(ctx context.Context, providerID domain.ProviderAccountID) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE provider_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, string(providerID))
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	if err := scan(
		&b.ID, &b.UserID, &b.ProviderID, &b.ServiceID, &b.Status,
		&b.ScheduledAt, &b.Price, &b.Address, &b.Notes, &b.Revision,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
