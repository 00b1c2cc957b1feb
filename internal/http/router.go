package api

import (
	"log"
	stdhttp "net/http"

	intconfig "tourops/internal/config"
	h "tourops/internal/http/handlers"
	"tourops/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	// Public submissions share one per-IP limiter; a stricter one guards
	// booking creation.
	submitLimit := middleware.NewRateLimit(10, 5).Handler()
	bookingLimit := middleware.NewRateLimit(5, 3).Handler()

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login(env))

		// Public website flows
		api.POST("/bookings", bookingLimit, h.CreateBooking(env))
		api.POST("/contact", submitLimit, h.SubmitContact)
		api.POST("/inquiries", submitLimit, h.SubmitInquiry)
		api.POST("/reviews", submitLimit, h.SubmitReview)
		api.GET("/tours/:tourId/departures", h.GetTourDepartures)

		admin := api.Group("")
		admin.Use(middleware.RequireAuth([]byte(env.JWTSecret)))
		{
			// Bookings
			bookings := admin.Group("/bookings")
			bookings.GET("", h.GetBookings(env))
			bookings.GET("/stats", h.GetBookingStats(env))
			bookings.POST("/admin", h.AdminCreateBooking(env))
			bookings.GET("/:id", h.GetBookingByID(env))
			bookings.PUT("/:id", h.UpdateBooking(env))
			bookings.PUT("/:id/status", h.UpdateBookingStatus(env))
			bookings.PUT("/:id/payment", h.UpdateBookingPayment(env))
			bookings.DELETE("/:id", middleware.RequireRoles("owner", "admin"), h.DeleteBooking(env))
			bookings.GET("/:id/voucher", h.GetBookingVoucher(env))

			// Staff assignment
			bookings.GET("/:id/staff", h.GetBookingStaff)
			bookings.POST("/:id/guides", h.AssignBookingGuide)
			bookings.DELETE("/:id/guides/:guideId", h.RemoveBookingGuide)
			bookings.POST("/:id/drivers", h.AssignBookingDriver)
			bookings.DELETE("/:id/drivers/:driverId", h.RemoveBookingDriver)

			// Guest directory
			guests := admin.Group("/guests")
			guests.GET("", h.GetGuests)
			guests.GET("/:id", h.GetGuestByID)
			guests.POST("", h.CreateGuest)
			guests.PUT("/:id", h.UpdateGuest)
			guests.DELETE("/:id", middleware.RequireRoles("owner", "admin"), h.DeleteGuest)

			// Staff directory
			guides := admin.Group("/guides")
			guides.GET("", h.GetGuides)
			guides.POST("", h.CreateGuide)
			guides.PUT("/:id", h.UpdateGuide)
			guides.DELETE("/:id", h.DeleteGuide)
			guides.GET("/:id/rates", h.GetRates(h.RateKindGuides))
			guides.PUT("/:id/rates", h.UpsertRate(h.RateKindGuides))
			guides.DELETE("/:id/rates/:serviceType", h.DeleteRate(h.RateKindGuides))

			drivers := admin.Group("/drivers")
			drivers.GET("", h.GetDrivers)
			drivers.POST("", h.CreateDriver)
			drivers.PUT("/:id", h.UpdateDriver)
			drivers.DELETE("/:id", h.DeleteDriver)
			drivers.GET("/:id/rates", h.GetRates(h.RateKindDrivers))
			drivers.PUT("/:id/rates", h.UpsertRate(h.RateKindDrivers))
			drivers.DELETE("/:id/rates/:serviceType", h.DeleteRate(h.RateKindDrivers))

			contracts := admin.Group("/contracts")
			contracts.GET("/:id/rates", h.GetRates(h.RateKindContracts))
			contracts.PUT("/:id/rates", h.UpsertRate(h.RateKindContracts))
			contracts.DELETE("/:id/rates/:serviceType", h.DeleteRate(h.RateKindContracts))

			vehicles := admin.Group("/vehicles")
			vehicles.GET("", h.GetVehicles)
			vehicles.POST("", h.CreateVehicle)
			vehicles.PUT("/:id", h.UpdateVehicle)
			vehicles.DELETE("/:id", h.DeleteVehicle)

			// Departures
			departures := admin.Group("/departures")
			departures.POST("", h.CreateDeparture)
			departures.GET("/:id", h.GetDepartureByID)
			departures.PUT("/:id", h.UpdateDeparture)
			departures.DELETE("/:id", h.DeleteDeparture)

			// Submissions moderation
			admin.GET("/contact-messages", h.GetContactMessages)
			admin.PUT("/contact-messages/:id/status", h.UpdateContactMessageStatus)
			admin.GET("/inquiries", h.GetInquiries)
			admin.PUT("/inquiries/:id/status", h.UpdateInquiryStatus)
			admin.GET("/reviews", h.GetReviews)
			admin.PUT("/reviews/:id/status", h.UpdateReviewStatus)
		}
	}

	return r
}
