package dto

import (
	"time"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

type BookingResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	ProviderID  string  `json:"provider_id"`
	ServiceID   string  `json:"service_id"`
	Status      string  `json:"status"`
	ScheduledAt string  `json:"scheduled_at"`
	Price       float64 `json:"price"`
	Address     string  `json:"address,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type PaymentResponse struct {
	ID              string  `json:"id"`
	BookingID       string  `json:"booking_id"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	Method          string  `json:"payment_method,omitempty"`
	PaymentIntentID string  `json:"payment_intent_id"`
	PaymentLink     string  `json:"payment_link,omitempty"`
	TransactionID   string  `json:"transaction_id,omitempty"`
	FailureReason   string  `json:"failure_reason,omitempty"`
	PaidAt          string  `json:"paid_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type ReviewResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"booking_id"`
	UserID     string `json:"user_id"`
	ProviderID string `json:"provider_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type ProviderReviewsResponse struct {
	ProviderID    string           `json:"provider_id"`
	TotalReviews  int              `json:"total_reviews"`
	AverageRating float64          `json:"average_rating"`
	Reviews       []ReviewResponse `json:"reviews"`
}

type ProviderProfileResponse struct {
	ID                 string                     `json:"id"`
	UserID             string                     `json:"user_id"`
	Verified           bool                       `json:"verified"`
	Services           []string                   `json:"services"`
	AvailabilityStatus string                     `json:"availability_status"`
	Rating             float64                    `json:"rating"`
	TotalReviews       int                        `json:"total_reviews"`
	Expertise          string                     `json:"expertise,omitempty"`
	Bio                string                     `json:"bio,omitempty"`
	WeeklySchedule     map[string]DayScheduleBody `json:"weekly_schedule,omitempty"`
	RejectionReason    string                     `json:"rejection_reason,omitempty"`
	CreatedAt          string                     `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		ProviderID:  string(b.ProviderID),
		ServiceID:   b.ServiceID,
		Status:      string(b.Status),
		ScheduledAt: b.ScheduledAt.Format(time.RFC3339),
		Price:       b.Price,
		Address:     b.Address,
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:              p.ID,
		BookingID:       p.BookingID,
		Amount:          p.Amount,
		Status:          string(p.Status),
		Method:          string(p.Method),
		PaymentIntentID: p.PaymentIntentID,
		PaymentLink:     p.PaymentLink,
		TransactionID:   p.TransactionID,
		FailureReason:   p.FailureReason,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
	if p.PaidAt != nil {
		resp.PaidAt = p.PaidAt.Format(time.RFC3339)
	}
	return resp
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		BookingID:  r.BookingID,
		UserID:     r.UserID,
		ProviderID: string(r.ProviderID),
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func ToProviderReviewsResponse(pr *domain.ProviderReviews) ProviderReviewsResponse {
	reviews := make([]ReviewResponse, 0, len(pr.Reviews))
	for _, r := range pr.Reviews {
		reviews = append(reviews, ToReviewResponse(r))
	}

	return ProviderReviewsResponse{
		ProviderID:    string(pr.ProviderID),
		TotalReviews:  pr.TotalReviews,
		AverageRating: pr.AverageRating,
		Reviews:       reviews,
	}
}

func ToProviderProfileResponse(p *domain.ProviderProfile) ProviderProfileResponse {
	var schedule map[string]DayScheduleBody
	if p.WeeklySchedule != nil {
		schedule = make(map[string]DayScheduleBody, len(p.WeeklySchedule))
		for day, s := range p.WeeklySchedule {
			schedule[day] = DayScheduleBody{Start: s.Start, End: s.End, Available: s.Available}
		}
	}

	return ProviderProfileResponse{
		ID:                 p.ID,
		UserID:             string(p.UserID),
		Verified:           p.Verified,
		Services:           p.Services,
		AvailabilityStatus: string(p.AvailabilityStatus),
		Rating:             p.Rating,
		TotalReviews:       p.TotalReviews,
		Expertise:          p.Expertise,
		Bio:                p.Bio,
		WeeklySchedule:     schedule,
		RejectionReason:    p.RejectionReason,
		CreatedAt:          p.CreatedAt.Format(time.RFC3339),
	}
}
