package dto

type CreateBookingRequest struct {
	ProviderID  string  `json:"provider_id" binding:"required,uuid"`
	ServiceID   string  `json:"service_id" binding:"required,uuid"`
	ScheduledAt string  `json:"scheduled_at" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Address     string  `json:"address"`
	Notes       string  `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateIntentRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	Method    string `json:"payment_method"`
}

type WebhookRequest struct {
	Event           string            `json:"event" binding:"required"`
	PaymentIntentID string            `json:"payment_intent_id" binding:"required"`
	TransactionID   string            `json:"transaction_id"`
	Data            map[string]string `json:"data"`
	Signature       string            `json:"signature"`
}

type CreateReviewRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type ApplyProviderRequest struct {
	Services       []string                   `json:"services"`
	Expertise      string                     `json:"expertise"`
	Bio            string                     `json:"bio"`
	WeeklySchedule map[string]DayScheduleBody `json:"weekly_schedule"`
}

type DayScheduleBody struct {
	Start     string `json:"start" binding:"required"`
	End       string `json:"end" binding:"required"`
	Available bool   `json:"available"`
}

type UpdateAvailabilityRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	BookingID string  `json:"booking_id"`
}

type ProviderDecisionRequest struct {
	Reason string `json:"reason"`
}

type AccountStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}
