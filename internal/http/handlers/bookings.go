package handlers

import (
	"net/http"

	"tourops/internal/config"
	"tourops/internal/domain/models"
	"tourops/internal/http/middleware"
	"tourops/internal/repositories"
	"tourops/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context, env config.Env) services.BookingService {
	reqID := middleware.GetRequestID(c)
	return services.BookingService{
		Repo:     repositories.BookingRepository{DB: config.DB},
		TourRepo: repositories.TourRepository{DB: config.DB},
		Guests: services.GuestService{
			Repo:      repositories.GuestRepository{DB: config.DB},
			RequestID: reqID,
		},
		Dedupe: services.DedupeService{
			BookingRepo:    repositories.BookingRepository{DB: config.DB},
			SubmissionRepo: repositories.SubmissionRepository{DB: config.DB},
			RequestID:      reqID,
		},
		Mailer:    services.Mailer{Env: env},
		RequestID: reqID,
	}
}

// POST /api/bookings (public)
func CreateBooking(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.CreateBookingInput
		if !BindJSONOrError(c, &in) {
			return
		}
		// the public flow never picks its own guest record
		in.GuestID = nil

		confirmation, err := bookingService(c, env).Create(in)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, confirmation)
	}
}

// POST /api/bookings/admin — same pipeline but may name an existing guest.
func AdminCreateBooking(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.CreateBookingInput
		if !BindJSONOrError(c, &in) {
			return
		}
		confirmation, err := bookingService(c, env).Create(in)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, confirmation)
	}
}

// GET /api/bookings
func GetBookings(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := bookingService(c, env).List()
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// GET /api/bookings/:id
func GetBookingByID(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		b, err := bookingService(c, env).Get(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// PUT /api/bookings/:id
func UpdateBooking(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var upd models.BookingUpdate
		if !BindJSONOrError(c, &upd) {
			return
		}
		b, err := bookingService(c, env).Update(id, upd)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

type statusPayload struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

// PUT /api/bookings/:id/status
func UpdateBookingStatus(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var p statusPayload
		if !BindJSONOrError(c, &p) {
			return
		}
		b, err := bookingService(c, env).UpdateStatus(id, p.Status, p.Notes)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

type paymentPayload struct {
	PaymentStatus string `json:"paymentStatus"`
}

// PUT /api/bookings/:id/payment
func UpdateBookingPayment(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var p paymentPayload
		if !BindJSONOrError(c, &p) {
			return
		}
		b, err := bookingService(c, env).UpdatePaymentStatus(id, p.PaymentStatus)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// DELETE /api/bookings/:id
func DeleteBooking(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		if err := bookingService(c, env).Delete(id); err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}

// GET /api/bookings/stats
func GetBookingStats(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := bookingService(c, env).Stats()
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// GET /api/bookings/:id/voucher
func GetBookingVoucher(env config.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		svc := bookingService(c, env)
		b, err := svc.Get(id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		tour, err := svc.TourRepo.GetByID(b.TourID)
		if err != nil {
			// booking without a resolvable tour still gets a voucher
			tour.Title = ""
		}

		voucher := services.VoucherService{RequestID: middleware.GetRequestID(c)}
		pdf, filename, err := voucher.GenerateVoucher(b, tour.Title)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "internal_error", "failed to render voucher")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}
