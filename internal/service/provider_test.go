package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/0thman3698/on-demand-backend/internal/domain"
	"github.com/0thman3698/on-demand-backend/internal/service/ports/mocks"
)

type providerFixture struct {
	providers *mocks.MockProviderRepo
	accounts  *mocks.MockAccountRepo
	catalog   *mocks.MockCatalogRepo
	notifier  *mocks.MockBookingNotifier
	svc       *ProviderService
}

func newProviderFixture(t *testing.T) *providerFixture {
	f := &providerFixture{
		providers: mocks.NewMockProviderRepo(t),
		accounts:  mocks.NewMockAccountRepo(t),
		catalog:   mocks.NewMockCatalogRepo(t),
		notifier:  mocks.NewMockBookingNotifier(t),
	}
	f.svc = NewProviderService(f.providers, f.accounts, f.catalog, f.notifier, newTestLogger(t))
	return f
}

func TestProviderService_Apply(t *testing.T) {
	f := newProviderFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "p1").Return(activeProvider("p1"), nil)
	f.catalog.EXPECT().GetServiceByID(mock.Anything, "s1").
		Return(&domain.Service{ID: "s1", IsActive: true}, nil)
	f.providers.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	profile, err := f.svc.Apply(context.Background(), "p1", domain.ApplyProviderInput{
		Services:  []string{"s1"},
		Expertise: "plumbing",
		WeeklySchedule: domain.WeeklySchedule{
			"monday": {Start: "09:00", End: "18:00", Available: true},
		},
	})

	require.NoError(t, err)
	assert.False(t, profile.Verified, "a fresh application starts unverified")
	assert.Equal(t, domain.ProviderAccountID("p1"), profile.UserID)
	assert.Equal(t, domain.AvailabilityAvailable, profile.AvailabilityStatus)
}

func TestProviderService_Apply_BadSchedule(t *testing.T) {
	f := newProviderFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "p1").Return(activeProvider("p1"), nil)

	_, err := f.svc.Apply(context.Background(), "p1", domain.ApplyProviderInput{
		WeeklySchedule: domain.WeeklySchedule{
			"monday": {Start: "18:00", End: "09:00"},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProviderService_Apply_InactiveService(t *testing.T) {
	f := newProviderFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "p1").Return(activeProvider("p1"), nil)
	f.catalog.EXPECT().GetServiceByID(mock.Anything, "s1").
		Return(&domain.Service{ID: "s1", IsActive: false}, nil)

	_, err := f.svc.Apply(context.Background(), "p1", domain.ApplyProviderInput{
		Services: []string{"s1"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProviderService_Apply_DuplicateProfile(t *testing.T) {
	f := newProviderFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "p1").Return(activeProvider("p1"), nil)
	f.providers.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrProviderExists)

	_, err := f.svc.Apply(context.Background(), "p1", domain.ApplyProviderInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderExists)
}

func TestProviderService_Apply_UserRoleRejected(t *testing.T) {
	f := newProviderFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)

	_, err := f.svc.Apply(context.Background(), "u1", domain.ApplyProviderInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProviderService_UpdateAvailability(t *testing.T) {
	f := newProviderFixture(t)

	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(verifiedProfile("p1"), nil)
	f.providers.EXPECT().UpdateAvailability(mock.Anything, domain.ProviderAccountID("p1"), domain.AvailabilityBusy).
		Return(nil)

	err := f.svc.UpdateAvailability(context.Background(), "p1", domain.AvailabilityBusy)

	require.NoError(t, err)
}

func TestProviderService_UpdateAvailability_UnknownStatus(t *testing.T) {
	f := newProviderFixture(t)

	err := f.svc.UpdateAvailability(context.Background(), "p1", domain.AvailabilityStatus("NAPPING"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProviderService_UpdateLocation(t *testing.T) {
	f := newProviderFixture(t)

	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(verifiedProfile("p1"), nil)
	f.notifier.EXPECT().NotifyProviderLocation(mock.Anything, mock.Anything).Return()

	err := f.svc.UpdateLocation(context.Background(), "p1", 55.75, 37.61, "b1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestProviderService_UpdateLocation_OutOfRange(t *testing.T) {
	f := newProviderFixture(t)

	tests := []struct {
		lat, lng float64
	}{
		{91, 0},
		{-91, 0},
		{0, 181},
		{0, -181},
	}

	for _, tt := range tests {
		err := f.svc.UpdateLocation(context.Background(), "p1", tt.lat, tt.lng, "")
		require.Error(t, err, "lat=%v lng=%v", tt.lat, tt.lng)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}
