package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/0thman3698/on-demand-backend/internal/domain"
	"github.com/0thman3698/on-demand-backend/internal/service/ports"
)

// AdminService covers moderation: provider verification decisions and
// account suspension. Suspension touches the account only, never booking
// status.
type AdminService struct {
	accounts  ports.AccountRepo
	providers ports.ProviderRepo
	logger    logger.Logger
}

func NewAdminService(accounts ports.AccountRepo, providers ports.ProviderRepo, logger logger.Logger) *AdminService {
	return &AdminService{
		accounts:  accounts,
		providers: providers,
		logger:    logger,
	}
}

func (s *AdminService) PendingProviders(ctx context.Context) ([]*domain.ProviderProfile, error) {
	return s.providers.ListPending(ctx)
}

func (s *AdminService) ApproveProvider(ctx context.Context, providerAccountID string) error {
	profile, err := s.providers.GetByUserID(ctx, domain.ProviderAccountID(providerAccountID))
	if err != nil {
		return err
	}
	if profile.Verified {
		return fmt.Errorf("%w: provider is already verified", domain.ErrValidation)
	}

	if err := s.providers.SetVerified(ctx, profile.UserID, true, ""); err != nil {
		return fmt.Errorf("approve provider: %w", err)
	}

	s.logger.Info("provider approved", logger.String("provider_id", providerAccountID))
	return nil
}

func (s *AdminService) RejectProvider(ctx context.Context, providerAccountID, reason string) error {
	profile, err := s.providers.GetByUserID(ctx, domain.ProviderAccountID(providerAccountID))
	if err != nil {
		return err
	}
	if profile.Verified {
		return fmt.Errorf("%w: cannot reject an already verified provider", domain.ErrValidation)
	}

	if err := s.providers.SetVerified(ctx, profile.UserID, false, reason); err != nil {
		return fmt.Errorf("reject provider: %w", err)
	}

	s.logger.Info("provider rejected",
		logger.String("provider_id", providerAccountID),
		logger.String("reason", reason),
	)
	return nil
}

func (s *AdminService) SetAccountStatus(ctx context.Context, accountID string, active bool) error {
	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return err
	}

	if err := s.accounts.SetActive(ctx, accountID, active); err != nil {
		return fmt.Errorf("set account status: %w", err)
	}

	s.logger.Info("account status changed",
		logger.String("account_id", accountID),
		logger.Any("active", active),
	)
	return nil
}
