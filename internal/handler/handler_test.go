package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/0thman3698/on-demand-backend/internal/domain"
	"github.com/0thman3698/on-demand-backend/internal/handler/dto"
	hmocks "github.com/0thman3698/on-demand-backend/internal/handler/mocks"
)

type handlerMocks struct {
	bookings  *hmocks.MockBookingSvc
	payments  *hmocks.MockPaymentSvc
	reviews   *hmocks.MockReviewSvc
	providers *hmocks.MockProviderSvc
	admin     *hmocks.MockAdminSvc
}

// setupRouter wires every route behind a middleware that injects the given
// principal, standing in for the JWT layer.
func setupRouter(t *testing.T, principal domain.Principal) (*handlerMocks, http.Handler) {
	t.Helper()
	m := &handlerMocks{
		bookings:  hmocks.NewMockBookingSvc(t),
		payments:  hmocks.NewMockPaymentSvc(t),
		reviews:   hmocks.NewMockReviewSvc(t),
		providers: hmocks.NewMockProviderSvc(t),
		admin:     hmocks.NewMockAdminSvc(t),
	}

	h := NewHandler(m.bookings, m.payments, m.reviews, m.providers, m.admin)

	r := ginext.New("test")
	api := r.Group("/api")
	api.POST("/payments/webhook", h.PaymentWebhook)
	api.GET("/providers/:id/reviews", h.GetProviderReviews)

	authed := api.Group("")
	authed.Use(func(c *ginext.Context) {
		if principal.AccountID != "" {
			c.Set("principal", principal)
		}
		c.Next()
	})
	{
		authed.POST("/bookings", h.CreateBooking)
		authed.GET("/bookings", h.ListMyBookings)
		authed.GET("/bookings/:id", h.GetBooking)
		authed.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		authed.POST("/payments/intent", h.CreatePaymentIntent)
		authed.GET("/payments/booking/:bookingId", h.GetBookingPayment)
		authed.POST("/reviews", h.CreateReview)
		authed.POST("/providers/apply", h.ApplyProvider)
		authed.GET("/providers/me", h.GetMyProviderProfile)
		authed.PATCH("/providers/availability", h.UpdateAvailability)
		authed.PATCH("/providers/location", h.UpdateLocation)
		authed.GET("/providers/bookings", h.ListProviderBookings)
		authed.GET("/admin/providers/pending", h.PendingProviders)
		authed.POST("/admin/providers/:id/approve", h.ApproveProvider)
		authed.PATCH("/admin/accounts/:id/status", h.SetAccountStatus)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func userPrincipal() domain.Principal {
	return domain.Principal{AccountID: uuid.New().String(), Role: domain.RoleUser}
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	principal := userPrincipal()
	m, r := setupRouter(t, principal)

	providerID := uuid.New().String()
	serviceID := uuid.New().String()
	scheduledAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		UserID:      principal.AccountID,
		ProviderID:  domain.ProviderAccountID(providerID),
		ServiceID:   serviceID,
		Status:      domain.BookingStatusPending,
		ScheduledAt: scheduledAt,
		Price:       100,
	}

	m.bookings.EXPECT().Create(mock.Anything, principal.AccountID, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ProviderID:  providerID,
		ServiceID:   serviceID,
		ScheduledAt: scheduledAt.Format(time.RFC3339),
		Price:       100,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, providerID, resp.ProviderID)
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	_, r := setupRouter(t, userPrincipal())

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ProviderID:  uuid.New().String(),
		ServiceID:   uuid.New().String(),
		ScheduledAt: "tomorrow",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_Unauthenticated(t *testing.T) {
	_, r := setupRouter(t, domain.Principal{})

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ProviderID:  uuid.New().String(),
		ServiceID:   uuid.New().String(),
		ScheduledAt: time.Now().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	principal := userPrincipal()
	m, r := setupRouter(t, principal)

	id := uuid.New().String()
	m.bookings.EXPECT().Get(mock.Anything, id, principal).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_BadID(t *testing.T) {
	_, r := setupRouter(t, userPrincipal())

	w := doJSON(t, r, http.MethodGet, "/api/bookings/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateBookingStatus_InvalidTransition(t *testing.T) {
	principal := domain.Principal{AccountID: uuid.New().String(), Role: domain.RoleProvider}
	m, r := setupRouter(t, principal)

	id := uuid.New().String()
	m.bookings.EXPECT().
		UpdateStatus(mock.Anything, id, principal.AccountID, domain.BookingStatusCompleted).
		Return(nil, domain.ValidateTransition(domain.BookingStatusPending, domain.BookingStatusCompleted))

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+id+"/status", dto.UpdateBookingStatusRequest{
		Status: "COMPLETED",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "PENDING")
}

func TestHandler_UpdateBookingStatus_Conflict(t *testing.T) {
	principal := domain.Principal{AccountID: uuid.New().String(), Role: domain.RoleProvider}
	m, r := setupRouter(t, principal)

	id := uuid.New().String()
	m.bookings.EXPECT().
		UpdateStatus(mock.Anything, id, principal.AccountID, domain.BookingStatusAccepted).
		Return(nil, domain.ErrConcurrentUpdate)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+id+"/status", dto.UpdateBookingStatusRequest{
		Status: "ACCEPTED",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListProviderBookings_Empty(t *testing.T) {
	principal := domain.Principal{AccountID: uuid.New().String(), Role: domain.RoleProvider}
	m, r := setupRouter(t, principal)

	m.bookings.EXPECT().ListForProvider(mock.Anything, principal.AccountID).
		Return(nil, domain.ErrBookingsNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/providers/bookings", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Payments ---

func TestHandler_CreatePaymentIntent_Success(t *testing.T) {
	principal := userPrincipal()
	m, r := setupRouter(t, principal)

	bookingID := uuid.New().String()
	intent := &domain.PaymentIntent{
		PaymentID: uuid.New().String(),
		BookingID: bookingID,
		Amount:    250,
		Status:    domain.PaymentStatusPending,
		IntentID:  "stripe_pi_1",
	}

	m.payments.EXPECT().CreateIntent(mock.Anything, principal.AccountID, domain.CreateIntentInput{
		BookingID: bookingID,
		Method:    domain.PaymentMethodCard,
	}).Return(intent, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/intent", dto.CreateIntentRequest{
		BookingID: bookingID,
		Method:    "CARD",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp domain.PaymentIntent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "stripe_pi_1", resp.IntentID)
}

func TestHandler_PaymentWebhook_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Principal{})

	result := &domain.WebhookResult{
		Message:   "Payment processed successfully",
		PaymentID: uuid.New().String(),
		Status:    domain.PaymentStatusSucceeded,
	}

	m.payments.EXPECT().HandleWebhook(mock.Anything, mock.Anything).Return(result, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/webhook", dto.WebhookRequest{
		Event:           domain.WebhookEventSucceeded,
		PaymentIntentID: "stripe_pi_1",
		TransactionID:   "txn_1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PaymentWebhook_InvalidSignature(t *testing.T) {
	m, r := setupRouter(t, domain.Principal{})

	m.payments.EXPECT().HandleWebhook(mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidSignature)

	w := doJSON(t, r, http.MethodPost, "/api/payments/webhook", dto.WebhookRequest{
		Event:           domain.WebhookEventSucceeded,
		PaymentIntentID: "stripe_pi_1",
		Signature:       "bogus",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_PaymentWebhook_UnknownIntent(t *testing.T) {
	m, r := setupRouter(t, domain.Principal{})

	m.payments.EXPECT().HandleWebhook(mock.Anything, mock.Anything).
		Return(nil, domain.ErrPaymentNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/payments/webhook", dto.WebhookRequest{
		Event:           domain.WebhookEventSucceeded,
		PaymentIntentID: "ghost",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Reviews ---

func TestHandler_CreateReview_Duplicate(t *testing.T) {
	principal := userPrincipal()
	m, r := setupRouter(t, principal)

	bookingID := uuid.New().String()
	m.reviews.EXPECT().Create(mock.Anything, principal.AccountID, mock.Anything).
		Return(nil, domain.ErrReviewExists)

	w := doJSON(t, r, http.MethodPost, "/api/reviews", dto.CreateReviewRequest{
		BookingID: bookingID,
		Rating:    5,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateReview_RatingOutOfRange(t *testing.T) {
	_, r := setupRouter(t, userPrincipal())

	w := doJSON(t, r, http.MethodPost, "/api/reviews", dto.CreateReviewRequest{
		BookingID: uuid.New().String(),
		Rating:    6,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetProviderReviews_Public(t *testing.T) {
	m, r := setupRouter(t, domain.Principal{})

	providerID := uuid.New().String()
	m.reviews.EXPECT().ListForProvider(mock.Anything, providerID).Return(&domain.ProviderReviews{
		ProviderID:    domain.ProviderAccountID(providerID),
		TotalReviews:  2,
		AverageRating: 4.5,
		Reviews:       []*domain.Review{{Rating: 4}, {Rating: 5}},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/providers/"+providerID+"/reviews", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProviderReviewsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4.5, resp.AverageRating)
	assert.Len(t, resp.Reviews, 2)
}

// --- Providers ---

func TestHandler_ApplyProvider_Duplicate(t *testing.T) {
	principal := domain.Principal{AccountID: uuid.New().String(), Role: domain.RoleProvider}
	m, r := setupRouter(t, principal)

	m.providers.EXPECT().Apply(mock.Anything, principal.AccountID, mock.Anything).
		Return(nil, domain.ErrProviderExists)

	w := doJSON(t, r, http.MethodPost, "/api/providers/apply", dto.ApplyProviderRequest{
		Expertise: "plumbing",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateAvailability_Success(t *testing.T) {
	principal := domain.Principal{AccountID: uuid.New().String(), Role: domain.RoleProvider}
	m, r := setupRouter(t, principal)

	m.providers.EXPECT().
		UpdateAvailability(mock.Anything, principal.AccountID, domain.AvailabilityBusy).
		Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/api/providers/availability", dto.UpdateAvailabilityRequest{
		Status: "BUSY",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateLocation_Accepted(t *testing.T) {
	principal := domain.Principal{AccountID: uuid.New().String(), Role: domain.RoleProvider}
	m, r := setupRouter(t, principal)

	m.providers.EXPECT().
		UpdateLocation(mock.Anything, principal.AccountID, 55.75, 37.61, "").
		Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/api/providers/location", dto.UpdateLocationRequest{
		Latitude:  55.75,
		Longitude: 37.61,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Admin ---

func TestHandler_ApproveProvider_Success(t *testing.T) {
	principal := domain.Principal{AccountID: uuid.New().String(), Role: domain.RoleAdmin}
	m, r := setupRouter(t, principal)

	id := uuid.New().String()
	m.admin.EXPECT().ApproveProvider(mock.Anything, id).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/admin/providers/"+id+"/approve", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetAccountStatus_Suspend(t *testing.T) {
	principal := domain.Principal{AccountID: uuid.New().String(), Role: domain.RoleAdmin}
	m, r := setupRouter(t, principal)

	id := uuid.New().String()
	m.admin.EXPECT().SetAccountStatus(mock.Anything, id, false).Return(nil)

	active := false
	w := doJSON(t, r, http.MethodPatch, "/api/admin/accounts/"+id+"/status", dto.AccountStatusRequest{
		Active: &active,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}
