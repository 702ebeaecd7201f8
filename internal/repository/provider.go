package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

type ProviderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProviderRepo(db *dbpg.DB) *ProviderRepository {
	return &ProviderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ProviderRepository) Create(ctx context.Context, p *domain.ProviderProfile) error {
	schedule, err := json.Marshal(p.WeeklySchedule)
	if err != nil {
		return fmt.Errorf("marshal weekly schedule: %w", err)
	}

	query := `INSERT INTO provider_profiles
				(id, user_id, verified, services, availability_status, rating, total_reviews,
				 expertise, bio, weekly_schedule, rejection_reason, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, string(p.UserID), p.Verified, pq.Array(p.Services), p.AvailabilityStatus,
		p.Rating, p.TotalReviews, p.Expertise, p.Bio, schedule, p.RejectionReason,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrProviderExists
		}
		return fmt.Errorf("insert provider profile: %w", err)
	}

	return nil
}

func (r *ProviderRepository) GetByUserID(ctx context.Context, userID domain.ProviderAccountID) (*domain.ProviderProfile, error) {
	query := `SELECT id, user_id, verified, services, availability_status, rating, total_reviews,
				expertise, bio, weekly_schedule, rejection_reason, created_at, updated_at
			  FROM provider_profiles
			  WHERE user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, string(userID))
	if err != nil {
		return nil, fmt.Errorf("get provider profile: %w", err)
	}

	p, err := scanProvider(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, fmt.Errorf("scan provider profile: %w", err)
	}

	return p, nil
}

func (r *ProviderRepository) ListPending(ctx context.Context) ([]*domain.ProviderProfile, error) {
	query := `SELECT id, user_id, verified, services, availability_status, rating, total_reviews,
				expertise, bio, weekly_schedule, rejection_reason, created_at, updated_at
			  FROM provider_profiles
			  WHERE verified = false
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list pending providers: %w", err)
	}
	defer rows.Close()

	var res []*domain.ProviderProfile
	for rows.Next() {
		p, err := scanProvider(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan provider profile: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *ProviderRepository) SetVerified(ctx context.Context, userID domain.ProviderAccountID, verified bool, reason string) error {
	query := `UPDATE provider_profiles
			  SET verified = $2, rejection_reason = $3, updated_at = now()
			  WHERE user_id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, string(userID), verified, reason)
	if err != nil {
		return fmt.Errorf("set provider verified: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("provider rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrProviderNotFound
	}

	return nil
}

func (r *ProviderRepository) UpdateAvailability(ctx context.Context, userID domain.ProviderAccountID, status domain.AvailabilityStatus) error {
	query := `UPDATE provider_profiles
			  SET availability_status = $2, updated_at = now()
			  WHERE user_id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, string(userID), status)
	if err != nil {
		return fmt.Errorf("update availability: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("provider rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrProviderNotFound
	}

	return nil
}

func (r *ProviderRepository) UpdateRating(ctx context.Context, userID domain.ProviderAccountID, rating float64, totalReviews int) error {
	query := `UPDATE provider_profiles
			  SET rating = $2, total_reviews = $3, updated_at = now()
			  WHERE user_id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, string(userID), rating, totalReviews)
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("provider rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrProviderNotFound
	}

	return nil
}

func scanProvider(scan func(dest ...any) error) (*domain.ProviderProfile, error) {
	var (
		p        domain.ProviderProfile
		services pq.StringArray
		schedule []byte
	)
	if err := scan(
		&p.ID, &p.UserID, &p.Verified, &services, &p.AvailabilityStatus,
		&p.Rating, &p.TotalReviews, &p.Expertise, &p.Bio, &schedule,
		&p.RejectionReason, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Services = services
	if len(schedule) > 0 {
		if err := json.Unmarshal(schedule, &p.WeeklySchedule); err != nil {
			return nil, fmt.Errorf("unmarshal weekly schedule: %w", err)
		}
	}

	return &p, nil
}
