package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	ListProviderBookings(c *ginext.Context)
	CreatePaymentIntent(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
	GetBookingPayment(c *ginext.Context)
	CreateReview(c *ginext.Context)
	GetProviderReviews(c *ginext.Context)
	ApplyProvider(c *ginext.Context)
	GetMyProviderProfile(c *ginext.Context)
	UpdateAvailability(c *ginext.Context)
	UpdateLocation(c *ginext.Context)
	PendingProviders(c *ginext.Context)
	ApproveProvider(c *ginext.Context)
	RejectProvider(c *ginext.Context)
	SetAccountStatus(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth, adminOnly ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")

	// Webhooks carry their own signature, no bearer token.
	api.POST("/payments/webhook", h.PaymentWebhook)
	api.GET("/providers/:id/reviews", h.GetProviderReviews)

	authed := api.Group("")
	authed.Use(auth)
	{
		// Bookings
		authed.POST("/bookings", h.CreateBooking)
		authed.GET("/bookings", h.ListMyBookings)
		authed.GET("/bookings/:id", h.GetBooking)
		authed.PATCH("/bookings/:id/status", h.UpdateBookingStatus)

		// Payments
		authed.POST("/payments/intent", h.CreatePaymentIntent)
		authed.GET("/payments/booking/:bookingId", h.GetBookingPayment)

		// Reviews
		authed.POST("/reviews", h.CreateReview)

		// Providers
		authed.POST("/providers/apply", h.ApplyProvider)
		authed.GET("/providers/me", h.GetMyProviderProfile)
		authed.PATCH("/providers/availability", h.UpdateAvailability)
		authed.PATCH("/providers/location", h.UpdateLocation)
		authed.GET("/providers/bookings", h.ListProviderBookings)
	}

	admin := api.Group("/admin")
	admin.Use(auth, adminOnly)
	{
		admin.GET("/providers/pending", h.PendingProviders)
		admin.POST("/providers/:id/approve", h.ApproveProvider)
		admin.POST("/providers/:id/reject", h.RejectProvider)
		admin.PATCH("/accounts/:id/status", h.SetAccountStatus)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
