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

// CatalogRepository reads the service catalog. Soft-deleted services are
// never returned.
type CatalogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCatalogRepo(db *dbpg.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CatalogRepository) GetServiceByID(ctx context.Context, id string) (*domain.Service, error) {
	query := `SELECT id, name, category_id, base_price, duration, is_active, deleted_at, created_at, updated_at
			  FROM services
			  WHERE id = $1 AND deleted_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	var s domain.Service
	if err = row.Scan(&s.ID, &s.Name, &s.CategoryID, &s.BasePrice, &s.Duration,
		&s.IsActive, &s.DeletedAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("scan service: %w", err)
	}

	return &s, nil
}
