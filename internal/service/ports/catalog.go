package ports

import (
	"context"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

// CatalogRepo is the read-only view of the service catalog the booking
// engine needs.
type CatalogRepo interface {
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
}
