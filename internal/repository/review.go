package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `INSERT INTO reviews (id, booking_id, user_id, provider_id, rating, comment, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		review.ID, review.BookingID, review.UserID, string(review.ProviderID),
		review.Rating, review.Comment, review.CreatedAt, review.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrReviewExists
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Review, error) {
	query := `SELECT id, booking_id, user_id, provider_id, rating, comment, created_at, updated_at
			  FROM reviews
			  WHERE booking_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	var rev domain.Review
	if err = row.Scan(&rev.ID, &rev.BookingID, &rev.UserID, &rev.ProviderID,
		&rev.Rating, &rev.Comment, &rev.CreatedAt, &rev.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}

	return &rev, nil
}

func (r *ReviewRepository) ListByProvider(ctx context.Context, providerID domain.ProviderAccountID) ([]*domain.Review, error) {
	query := `SELECT id, booking_id, user_id, provider_id, rating, comment, created_at, updated_at
			  FROM reviews
			  WHERE provider_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, string(providerID))
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var res []*domain.Review
	for rows.Next() {
		var rev domain.Review
		if err = rows.Scan(&rev.ID, &rev.BookingID, &rev.UserID, &rev.ProviderID,
			&rev.Rating, &rev.Comment, &rev.CreatedAt, &rev.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, &rev)
	}

	return res, rows.Err()
}
