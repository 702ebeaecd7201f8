package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/0thman3698/on-demand-backend/internal/domain"
	"github.com/0thman3698/on-demand-backend/internal/service/ports/mocks"
)

type reviewFixture struct {
	reviews   *mocks.MockReviewRepo
	bookings  *mocks.MockBookingRepo
	accounts  *mocks.MockAccountRepo
	providers *mocks.MockProviderRepo
	svc       *ReviewService
}

func newReviewFixture(t *testing.T) *reviewFixture {
	f := &reviewFixture{
		reviews:   mocks.NewMockReviewRepo(t),
		bookings:  mocks.NewMockBookingRepo(t),
		accounts:  mocks.NewMockAccountRepo(t),
		providers: mocks.NewMockProviderRepo(t),
	}
	f.svc = NewReviewService(f.reviews, f.bookings, f.accounts, f.providers, newTestLogger(t))
	return f
}

func completedBooking() *domain.Booking {
	return &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		ProviderID: "p1",
		Status:     domain.BookingStatusCompleted,
	}
}

func TestReviewService_Create(t *testing.T) {
	f := newReviewFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(completedBooking(), nil)
	f.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.reviews.EXPECT().ListByProvider(mock.Anything, domain.ProviderAccountID("p1")).
		Return([]*domain.Review{{Rating: 5}}, nil)
	f.providers.EXPECT().UpdateRating(mock.Anything, domain.ProviderAccountID("p1"), 5.0, 1).Return(nil)

	review, err := f.svc.Create(context.Background(), "u1", domain.CreateReviewInput{
		BookingID: "b1",
		Rating:    5,
		Comment:   "great work",
	})

	require.NoError(t, err)
	assert.Equal(t, "b1", review.BookingID)
	assert.Equal(t, domain.ProviderAccountID("p1"), review.ProviderID)
	assert.Equal(t, 5, review.Rating)
	assert.NotEmpty(t, review.ID)
}

func TestReviewService_Create_RatingRecomputed(t *testing.T) {
	f := newReviewFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(completedBooking(), nil)
	f.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.reviews.EXPECT().ListByProvider(mock.Anything, domain.ProviderAccountID("p1")).
		Return([]*domain.Review{{Rating: 5}, {Rating: 3}, {Rating: 4}}, nil)
	f.providers.EXPECT().UpdateRating(mock.Anything, domain.ProviderAccountID("p1"), 4.0, 3).Return(nil)

	_, err := f.svc.Create(context.Background(), "u1", domain.CreateReviewInput{
		BookingID: "b1",
		Rating:    4,
	})

	require.NoError(t, err)
}

func TestReviewService_Create_RatingRoundsToTwoDecimals(t *testing.T) {
	f := newReviewFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(completedBooking(), nil)
	f.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.reviews.EXPECT().ListByProvider(mock.Anything, domain.ProviderAccountID("p1")).
		Return([]*domain.Review{{Rating: 5}, {Rating: 3}, {Rating: 3}}, nil)
	// (5+3+3)/3 = 3.666... rounds to 3.67
	f.providers.EXPECT().UpdateRating(mock.Anything, domain.ProviderAccountID("p1"), 3.67, 3).Return(nil)

	_, err := f.svc.Create(context.Background(), "u1", domain.CreateReviewInput{
		BookingID: "b1",
		Rating:    3,
	})

	require.NoError(t, err)
}

func TestReviewService_Create_RatingOutOfRange(t *testing.T) {
	f := newReviewFixture(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := f.svc.Create(context.Background(), "u1", domain.CreateReviewInput{
			BookingID: "b1",
			Rating:    rating,
		})
		require.Error(t, err, "rating %d", rating)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestReviewService_Create_BookingNotCompleted(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.BookingStatusPending,
		domain.BookingStatusAccepted,
		domain.BookingStatusOnTheWay,
		domain.BookingStatusStarted,
		domain.BookingStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newReviewFixture(t)

			booking := completedBooking()
			booking.Status = status

			f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)
			f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

			_, err := f.svc.Create(context.Background(), "u1", domain.CreateReviewInput{
				BookingID: "b1",
				Rating:    4,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestReviewService_Create_ForeignBooking(t *testing.T) {
	f := newReviewFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "u2").Return(activeUser("u2"), nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(completedBooking(), nil)

	_, err := f.svc.Create(context.Background(), "u2", domain.CreateReviewInput{
		BookingID: "b1",
		Rating:    4,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReviewService_Create_DuplicateReview(t *testing.T) {
	f := newReviewFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(completedBooking(), nil)
	f.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrReviewExists)

	_, err := f.svc.Create(context.Background(), "u1", domain.CreateReviewInput{
		BookingID: "b1",
		Rating:    4,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReviewExists)
}

func TestReviewService_Create_RecomputeFailureIsNotFatal(t *testing.T) {
	f := newReviewFixture(t)

	f.accounts.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser("u1"), nil)
	f.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(completedBooking(), nil)
	f.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.reviews.EXPECT().ListByProvider(mock.Anything, domain.ProviderAccountID("p1")).
		Return(nil, assert.AnError)

	review, err := f.svc.Create(context.Background(), "u1", domain.CreateReviewInput{
		BookingID: "b1",
		Rating:    4,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
}

func TestReviewService_ListForProvider_UsesCachedAggregates(t *testing.T) {
	f := newReviewFixture(t)

	profile := verifiedProfile("p1")
	profile.Rating = 4.33
	profile.TotalReviews = 3

	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("p1")).
		Return(profile, nil)
	f.reviews.EXPECT().ListByProvider(mock.Anything, domain.ProviderAccountID("p1")).
		Return([]*domain.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}, nil)

	got, err := f.svc.ListForProvider(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.ProviderAccountID("p1"), got.ProviderID)
	assert.Equal(t, 4.33, got.AverageRating)
	assert.Equal(t, 3, got.TotalReviews)
	assert.Len(t, got.Reviews, 3)
}

func TestReviewService_ListForProvider_UnknownProvider(t *testing.T) {
	f := newReviewFixture(t)

	f.providers.EXPECT().GetByUserID(mock.Anything, domain.ProviderAccountID("ghost")).
		Return(nil, domain.ErrProviderNotFound)

	_, err := f.svc.ListForProvider(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}
