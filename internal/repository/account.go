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

type AccountRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAccountRepo(db *dbpg.DB) *AccountRepository {
	return &AccountRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `SELECT id, name, email, phone, role, is_active, created_at, updated_at
			  FROM accounts
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	var a domain.Account
	if err = row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Role, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}

	return &a, nil
}

func (r *AccountRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE accounts SET is_active = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, active)
	if err != nil {
		return fmt.Errorf("set account active: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("account rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}
