package ports

import (
	"context"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

type AccountRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	SetActive(ctx context.Context, id string, active bool) error
}
