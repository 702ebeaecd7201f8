package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/0thman3698/on-demand-backend/internal/domain"
	"github.com/0thman3698/on-demand-backend/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingFixture struct {
	bookings  *mocks.MockBookingRepo
	accounts  *mocks.MockAccountRepo
	providers *mocks.MockProviderRepo
	catalog   *mocks.MockCatalogRepo
	notifier  *mocks.MockBookingNotifier
	svc       *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	f := &bookingFixture{
		bookings:  mocks.NewMockBookingRepo(t),
		accounts:  mocks.NewMockAccountRepo(t),
		providers: mocks.NewMockProviderRepo(t),
		catalog:   mocks.NewMockCatalogRepo(t),
		notifier:  mocks.NewMockBookingNotifier(t),
	}
	f.svc = NewBookingService(f.bookings, f.accounts, f.providers, f.catalog, f.notifier, newTestLogger(t))
	return f
}

func activeUser(id string) *domain.Account {
	return &domain.Account{ID: id, Role: domain.RoleUser, IsActive: true}
}

func activeProvider(id string) *domain.Account {
	return &domain.Account{ID: id, Role: domain.RoleProvider, IsActive: true}
}

func verifiedProfile(accountID string) *domain.ProviderProfile {
	return &domain.ProviderProfile{
		ID:       "profile-" + accountID,
		UserID:   domain.ProviderAccountID(accountID),
		Verified: true,
	}
}

func TestBookingService_Create(t *testing.T) {
	f := newBookingFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)
	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(verifiedProfile("p1"), nil)
	f.catalog.EXPECT().GetServiceByID(mock.Anything, "s1").
		Return(&domain.Service{ID: "s1", IsActive: true}, nil)
	f.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := f.svc.Create(context.Background(), "u1", domain.CreateBookingInput{
		ProviderID:  "p1",
		ServiceID:   "s1",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Price:       150,
		Address:     "12 Main St",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, domain.ProviderAccountID("p1"), booking.ProviderID)
	assert.EqualValues(t, 0, booking.Revision)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_PastDate(t *testing.T) {
	f := newBookingFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)
	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(verifiedProfile("p1"), nil)
	f.catalog.EXPECT().GetServiceByID(mock.Anything, "s1").
		Return(&domain.Service{ID: "s1", IsActive: true}, nil)

	_, err := f.svc.Create(context.Background(), "u1", domain.CreateBookingInput{
		ProviderID:  "p1",
		ServiceID:   "s1",
		ScheduledAt: time.Now().Add(-time.Hour),
		Price:       150,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_UnverifiedProvider(t *testing.T) {
	f := newBookingFixture(t)

	profile := verifiedProfile("p1")
	profile.Verified = false

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)
	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(profile, nil)

	_, err := f.svc.Create(context.Background(), "u1", domain.CreateBookingInput{
		ProviderID:  "p1",
		ServiceID:   "s1",
		ScheduledAt: time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnverifiedProvider)
}

func TestBookingService_Create_SuspendedAccount(t *testing.T) {
	f := newBookingFixture(t)

	suspended := activeUser("u1")
	suspended.IsActive = false

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(suspended, nil)

	_, err := f.svc.Create(context.Background(), "u1", domain.CreateBookingInput{
		ProviderID: "p1",
		ServiceID:  "s1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccountSuspended)
}

func TestBookingService_Create_InactiveService(t *testing.T) {
	f := newBookingFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)
	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(verifiedProfile("p1"), nil)
	f.catalog.EXPECT().GetServiceByID(mock.Anything, "s1").
		Return(&domain.Service{ID: "s1", IsActive: false}, nil)

	_, err := f.svc.Create(context.Background(), "u1", domain.CreateBookingInput{
		ProviderID:  "p1",
		ServiceID:   "s1",
		ScheduledAt: time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_WrongRole(t *testing.T) {
	f := newBookingFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "p1").Return(activeProvider("p1"), nil)

	_, err := f.svc.Create(context.Background(), "p1", domain.CreateBookingInput{
		ProviderID: "p2",
		ServiceID:  "s1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_UpdateStatus_Accept(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		ProviderID: "p1",
		Status:     domain.BookingStatusPending,
		Revision:   3,
	}

	f.accounts.EXPECT().GetByID(mock.Anything, "p1").Return(activeProvider("p1"), nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(verifiedProfile("p1"), nil)
	f.bookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusAccepted, int64(3)).Return(nil)
	f.notifier.EXPECT().NotifyBookingAccepted(mock.Anything, mock.Anything).Return()
	f.notifier.EXPECT().NotifyBookingStatusUpdated(mock.Anything, mock.Anything).Return()

	updated, err := f.svc.UpdateStatus(context.Background(), "b1", "p1", domain.BookingStatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, updated.Status)
	assert.EqualValues(t, 4, updated.Revision)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_UpdateStatus_FullLifecycle(t *testing.T) {
	steps := []struct {
		from domain.BookingStatus
		to   domain.BookingStatus
	}{
		{domain.BookingStatusAccepted, domain.BookingStatusOnTheWay},
		{domain.BookingStatusOnTheWay, domain.BookingStatusStarted},
		{domain.BookingStatusStarted, domain.BookingStatusCompleted},
	}

	for _, step := range steps {
		t.Run(string(step.from)+"_to_"+string(step.to), func(t *testing.T) {
			f := newBookingFixture(t)

			booking := &domain.Booking{
				ID:         "b1",
				UserID:     "u1",
				ProviderID: "p1",
				Status:     step.from,
			}

			f.accounts.EXPECT().GetByID(mock.Anything, "p1").Return(activeProvider("p1"), nil)
			f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
			f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
				Return(verifiedProfile("p1"), nil)
			f.bookings.EXPECT().UpdateStatus(mock.Anything, "b1", step.to, int64(0)).Return(nil)
			f.notifier.EXPECT().NotifyBookingStatusUpdated(mock.Anything, mock.Anything).Return()

			updated, err := f.svc.UpdateStatus(context.Background(), "b1", "p1", step.to)

			require.NoError(t, err)
			assert.Equal(t, step.to, updated.Status)

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestBookingService_UpdateStatus_InvalidTransition(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		ProviderID: "p1",
		Status:     domain.BookingStatusPending,
	}

	f.accounts.EXPECT().GetByID(mock.Anything, "p1").Return(activeProvider("p1"), nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(verifiedProfile("p1"), nil)

	_, err := f.svc.UpdateStatus(context.Background(), "b1", "p1", domain.BookingStatusCompleted)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_UpdateStatus_SameStatusIsIdempotent(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		ProviderID: "p1",
		Status:     domain.BookingStatusAccepted,
		Revision:   2,
	}

	f.accounts.EXPECT().GetByID(mock.Anything, "p1").Return(activeProvider("p1"), nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(verifiedProfile("p1"), nil)

	updated, err := f.svc.UpdateStatus(context.Background(), "b1", "p1", domain.BookingStatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, updated.Status)
	assert.EqualValues(t, 2, updated.Revision)
	f.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_UpdateStatus_ForeignBooking(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		ProviderID: "p1",
		Status:     domain.BookingStatusPending,
	}

	f.accounts.EXPECT().GetByID(mock.Anything, "p2").Return(activeProvider("p2"), nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p2")).
		Return(verifiedProfile("p2"), nil)

	_, err := f.svc.UpdateStatus(context.Background(), "b1", "p2", domain.BookingStatusAccepted)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_UpdateStatus_UserRoleRejected(t *testing.T) {
	f := newBookingFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)

	_, err := f.svc.UpdateStatus(context.Background(), "b1", "u1", domain.BookingStatusAccepted)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_UpdateStatus_UnknownStatus(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), "b1", "p1", domain.BookingStatus("DONE"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_UpdateStatus_ConcurrentUpdate(t *testing.T) {
	f := newBookingFixture(t)

	booking := &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		ProviderID: "p1",
		Status:     domain.BookingStatusPending,
		Revision:   1,
	}

	f.accounts.EXPECT().GetByID(mock.Anything, "p1").Return(activeProvider("p1"), nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(verifiedProfile("p1"), nil)
	f.bookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusAccepted, int64(1)).
		Return(domain.ErrConcurrentUpdate)

	_, err := f.svc.UpdateStatus(context.Background(), "b1", "p1", domain.BookingStatusAccepted)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)
}

func TestBookingService_Get_OwnerAndAdmin(t *testing.T) {
	booking := &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		ProviderID: "p1",
		Status:     domain.BookingStatusPending,
	}

	t.Run("owner", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

		got, err := f.svc.Get(context.Background(), "b1", domain.Principal{AccountID: "u1", Role: domain.RoleUser})

		require.NoError(t, err)
		assert.Equal(t, "b1", got.ID)
	})

	t.Run("admin bypasses ownership", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

		_, err := f.svc.Get(context.Background(), "b1", domain.Principal{AccountID: "admin", Role: domain.RoleAdmin})

		require.NoError(t, err)
	})

	t.Run("foreign user is forbidden", func(t *testing.T) {
		f := newBookingFixture(t)
		f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

		_, err := f.svc.Get(context.Background(), "b1", domain.Principal{AccountID: "u2", Role: domain.RoleUser})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestBookingService_ListForProvider_Empty(t *testing.T) {
	f := newBookingFixture(t)

	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(verifiedProfile("p1"), nil)
	f.bookings.EXPECT().ListByProvider(mock.Anything, domain.ProviderAccountID("p1")).
		Return(nil, nil)

	_, err := f.svc.ListForProvider(context.Background(), "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingsNotFound)
}

func TestBookingService_ListForProvider(t *testing.T) {
	f := newBookingFixture(t)

	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(verifiedProfile("p1"), nil)
	f.bookings.EXPECT().ListByProvider(mock.Anything, domain.ProviderAccountID("p1")).
		Return([]*domain.Booking{{ID: "b1"}, {ID: "b2"}}, nil)

	bookings, err := f.svc.ListForProvider(context.Background(), "p1")

	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestBookingService_Create_RepoError(t *testing.T) {
	f := newBookingFixture(t)

	repoErr := errors.New("insert failed")

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)
	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(verifiedProfile("p1"), nil)
	f.catalog.EXPECT().GetServiceByID(mock.Anything, "s1").
		Return(&domain.Service{ID: "s1", IsActive: true}, nil)
	f.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := f.svc.Create(context.Background(), "u1", domain.CreateBookingInput{
		ProviderID:  "p1",
		ServiceID:   "s1",
		ScheduledAt: time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}
