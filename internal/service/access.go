package service

import (
	"context"
	"fmt"

	"github.com/0thman3698/on-demand-backend/internal/domain"
	"github.com/0thman3698/on-demand-backend/internal/service/ports"
)

// accessPolicy holds the cross-cutting ownership rules for booking-scoped
// records: ADMIN bypasses ownership, USER must own the booking, PROVIDER must
// be the assigned provider looked up by account id.
type accessPolicy struct {
	providers ports.ProviderRepo
}

// authorizeBooking fails with a forbidden-class error when the principal has
// no rights over b. An existing-but-foreign record is Forbidden, never
// NotFound.
func (a accessPolicy) authorizeBooking(ctx context.Context, b *domain.Booking, p domain.Principal) error {
	switch p.Role {
	case domain.RoleAdmin:
		return nil

	case domain.RoleUser:
		if b.UserID != p.AccountID {
			return fmt.Errorf("%w: you can only access your own bookings", domain.ErrForbidden)
		}
		return nil

	case domain.RoleProvider:
		profile, err := a.providers.GetByUserID(ctx, domain.ProviderAccountID(p.AccountID))
		if err != nil {
			return fmt.Errorf("resolve provider profile: %w", err)
		}
		// The booking stores the provider's account id; compare against the
		// profile's owning account, never the profile's own id.
		if b.ProviderID != profile.UserID {
			return fmt.Errorf("%w: you can only access bookings assigned to you", domain.ErrForbidden)
		}
		return nil

	default:
		return fmt.Errorf("%w: invalid role %q", domain.ErrForbidden, p.Role)
	}
}

// requireActiveAccount loads the principal's account and enforces role and
// the suspension flag. A wrong role is Forbidden; a suspended account revokes
// every privilege.
func requireActiveAccount(ctx context.Context, accounts ports.AccountRepo, accountID string, role domain.Role) (*domain.Account, error) {
	account, err := accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountSuspended, accountID)
	}
	if role != "" && account.Role != role {
		return nil, fmt.Errorf("%w: requires role %s", domain.ErrForbidden, role)
	}
	return account, nil
}
