package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/0thman3698/on-demand-backend/internal/domain"
	"github.com/0thman3698/on-demand-backend/internal/handler/dto"
	"github.com/0thman3698/on-demand-backend/internal/middleware"
)

type BookingSvc interface {
	Create(ctx context.Context, userID string, input domain.CreateBookingInput) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, requesterID string, next domain.BookingStatus) (*domain.Booking, error)
	Get(ctx context.Context, bookingID string, p domain.Principal) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListForProvider(ctx context.Context, providerAccountID string) ([]*domain.Booking, error)
}

type PaymentSvc interface {
	CreateIntent(ctx context.Context, userID string, input domain.CreateIntentInput) (*domain.PaymentIntent, error)
	HandleWebhook(ctx context.Context, evt domain.WebhookEvent) (*domain.WebhookResult, error)
	GetByBooking(ctx context.Context, bookingID string, p domain.Principal) (*domain.Payment, error)
}

type ReviewSvc interface {
	Create(ctx context.Context, userID string, input domain.CreateReviewInput) (*domain.Review, error)
	ListForProvider(ctx context.Context, providerAccountID string) (*domain.ProviderReviews, error)
}

type ProviderSvc interface {
	Apply(ctx context.Context, userID string, input domain.ApplyProviderInput) (*domain.ProviderProfile, error)
	GetProfile(ctx context.Context, userID string) (*domain.ProviderProfile, error)
	UpdateAvailability(ctx context.Context, userID string, status domain.AvailabilityStatus) error
	UpdateLocation(ctx context.Context, userID string, lat, lng float64, bookingID string) error
}

type AdminSvc interface {
	PendingProviders(ctx context.Context) ([]*domain.ProviderProfile, error)
	ApproveProvider(ctx context.Context, providerAccountID string) error
	RejectProvider(ctx context.Context, providerAccountID, reason string) error
	SetAccountStatus(ctx context.Context, accountID string, active bool) error
}

type Handler struct {
	bookingService  BookingSvc
	paymentService  PaymentSvc
	reviewService   ReviewSvc
	providerService ProviderSvc
	adminService    AdminSvc
}

func NewHandler(
	bookingService BookingSvc,
	paymentService PaymentSvc,
	reviewService ReviewSvc,
	providerService ProviderSvc,
	adminService AdminSvc,
) *Handler {
	return &Handler{
		bookingService:  bookingService,
		paymentService:  paymentService,
		reviewService:   reviewService,
		providerService: providerService,
		adminService:    adminService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid scheduled_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateBookingInput{
		ProviderID:  domain.ProviderAccountID(req.ProviderID),
		ServiceID:   req.ServiceID,
		ScheduledAt: scheduledAt,
		Price:       req.Price,
		Address:     req.Address,
		Notes:       req.Notes,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), principal.AccountID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateStatus(
		c.Request.Context(), id, principal.AccountID, domain.BookingStatus(req.Status),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	bookings, err := h.bookingService.ListForUser(c.Request.Context(), principal.AccountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListProviderBookings(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	bookings, err := h.bookingService.ListForProvider(c.Request.Context(), principal.AccountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Payments

func (h *Handler) CreatePaymentIntent(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	var req dto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	intent, err := h.paymentService.CreateIntent(c.Request.Context(), principal.AccountID, domain.CreateIntentInput{
		BookingID: req.BookingID,
		Method:    domain.PaymentMethod(req.Method),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, intent)
}

func (h *Handler) PaymentWebhook(c *ginext.Context) {
	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.paymentService.HandleWebhook(c.Request.Context(), domain.WebhookEvent{
		Event:           req.Event,
		PaymentIntentID: req.PaymentIntentID,
		TransactionID:   req.TransactionID,
		Data:            req.Data,
		Signature:       req.Signature,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetBookingPayment(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	bookingID := c.Param("bookingId")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	payment, err := h.paymentService.GetByBooking(c.Request.Context(), bookingID, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// Reviews

func (h *Handler) CreateReview(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), principal.AccountID, domain.CreateReviewInput{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) GetProviderReviews(c *ginext.Context) {
	providerID := c.Param("id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid provider id"})
		return
	}

	reviews, err := h.reviewService.ListForProvider(c.Request.Context(), providerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProviderReviewsResponse(reviews))
}

// Providers

func (h *Handler) ApplyProvider(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	var req dto.ApplyProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.ApplyProviderInput{
		Services:  req.Services,
		Expertise: req.Expertise,
		Bio:       req.Bio,
	}
	if req.WeeklySchedule != nil {
		input.WeeklySchedule = make(domain.WeeklySchedule, len(req.WeeklySchedule))
		for day, s := range req.WeeklySchedule {
			input.WeeklySchedule[day] = domain.DaySchedule{Start: s.Start, End: s.End, Available: s.Available}
		}
	}

	profile, err := h.providerService.Apply(c.Request.Context(), principal.AccountID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProviderProfileResponse(profile))
}

func (h *Handler) GetMyProviderProfile(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	profile, err := h.providerService.GetProfile(c.Request.Context(), principal.AccountID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProviderProfileResponse(profile))
}

func (h *Handler) UpdateAvailability(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	var req dto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.providerService.UpdateAvailability(
		c.Request.Context(), principal.AccountID, domain.AvailabilityStatus(req.Status),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

func (h *Handler) UpdateLocation(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.providerService.UpdateLocation(
		c.Request.Context(), principal.AccountID, req.Latitude, req.Longitude, req.BookingID,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "accepted"})
}

// Admin

func (h *Handler) PendingProviders(c *ginext.Context) {
	providers, err := h.adminService.PendingProviders(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ProviderProfileResponse, 0, len(providers))
	for _, p := range providers {
		resp = append(resp, dto.ToProviderProfileResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApproveProvider(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid provider id"})
		return
	}

	if err := h.adminService.ApproveProvider(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "approved"})
}

func (h *Handler) RejectProvider(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid provider id"})
		return
	}

	var req dto.ProviderDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.adminService.RejectProvider(c.Request.Context(), id, req.Reason); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "rejected"})
}

func (h *Handler) SetAccountStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid account id"})
		return
	}

	var req dto.AccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.adminService.SetAccountStatus(c.Request.Context(), id, *req.Active); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"active": *req.Active})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrProviderNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrBookingsNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrAccountSuspended),
		errors.Is(err, domain.ErrUnverifiedProvider),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInvalidSignature):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrProviderExists),
		errors.Is(err, domain.ErrReviewExists),
		errors.Is(err, domain.ErrConcurrentUpdate):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
