package services

import (
	"database/sql"
	"errors"
	"fmt"

	"tourops/internal/domain"
	"tourops/internal/domain/models"
	"tourops/internal/repositories"
	"tourops/internal/utils"

	"github.com/shopspring/decimal"
)

// BookingService owns the booking lifecycle: creation with its validation
// pipeline, partial edits with price recalculation, status and payment-status
// changes, deletion, and the stats rollup.
type BookingService struct {
	Repo      repositories.BookingRepository
	TourRepo  repositories.TourRepository
	Guests    GuestService
	Dedupe    DedupeService
	Mailer    Mailer
	RequestID string

	// Background runs non-critical side effects; nil means a goroutine.
	// Tests set it to run inline.
	Background func(fn func())
}

// CreateBookingInput is the public/admin booking submission.
type CreateBookingInput struct {
	TourID          int64  `json:"tourId"`
	GuestID         *int64 `json:"guestId"` // admin override, skips find-or-create
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	TravelDate      string `json:"travelDate"`
	NumberOfPeople  int    `json:"numberOfPeople"`
	SpecialRequests string `json:"specialRequests"`
}

func (s BookingService) background(fn func()) {
	if s.Background != nil {
		s.Background(fn)
		return
	}
	go fn()
}

// Create runs the full booking pipeline. The booking write is the only
// strongly-consistent step; guest stats and mail run afterwards best-effort
// and never roll the booking back.
func (s BookingService) Create(in CreateBookingInput) (models.BookingConfirmation, error) {
	var none models.BookingConfirmation

	if in.NumberOfPeople < 1 {
		return none, domain.ValidationError{Field: "numberOfPeople", Msg: "must be at least 1"}
	}
	if utils.NormalizeEmail(in.CustomerEmail) == "" {
		return none, domain.ValidationError{Field: "customerEmail", Msg: "email is required"}
	}

	tour, err := s.TourRepo.GetByID(in.TourID)
	if errors.Is(err, sql.ErrNoRows) {
		return none, domain.NotFoundError{Resource: "tour"}
	}
	if err != nil {
		return none, domain.InternalError{Err: err}
	}
	if !tour.IsActive {
		return none, domain.ValidationError{Field: "tour", Msg: "tour is not open for booking"}
	}
	if tour.MaxGroupSize != nil && in.NumberOfPeople > *tour.MaxGroupSize {
		return none, domain.ValidationError{
			Field: "numberOfPeople",
			Msg:   fmt.Sprintf("exceeds the maximum group size of %d", *tour.MaxGroupSize),
		}
	}

	travelDate, err := utils.ParseDate(in.TravelDate)
	if err != nil {
		return none, domain.ValidationError{Field: "travelDate", Msg: "expected YYYY-MM-DD"}
	}
	if utils.BeforeToday(travelDate) {
		return none, domain.ValidationError{Field: "travelDate", Msg: "travel date is in the past"}
	}
	travelDay := utils.FormatDate(travelDate)

	dup, err := s.Dedupe.IsDuplicateBooking(in.TourID, in.CustomerEmail, travelDay)
	if err != nil {
		return none, domain.InternalError{Err: err}
	}
	if dup {
		return none, domain.ValidationError{
			Msg: "a matching booking request was just submitted; please wait a few minutes before retrying",
		}
	}

	total := ComputeTotal(tour.Price, in.NumberOfPeople)

	var guestID int64
	if in.GuestID != nil {
		g, err := s.Guests.Get(*in.GuestID)
		if err != nil {
			return none, err
		}
		guestID = g.ID
	} else {
		g, err := s.Guests.FindOrCreate(in.CustomerEmail, in.CustomerName, in.CustomerPhone)
		if err != nil {
			return none, err
		}
		guestID = g.ID
	}

	booking := models.Booking{
		TourID:          in.TourID,
		GuestID:         &guestID,
		CustomerName:    in.CustomerName,
		CustomerEmail:   utils.NormalizeEmail(in.CustomerEmail),
		CustomerPhone:   in.CustomerPhone,
		TravelDate:      travelDay,
		NumberOfPeople:  in.NumberOfPeople,
		TotalPrice:      total,
		Status:          models.BookingStatusPending,
		PaymentStatus:   models.PaymentStatusUnpaid,
		SpecialRequests: in.SpecialRequests,
	}
	if err := s.Repo.Insert(&booking); err != nil {
		return none, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "created",
		fmt.Sprintf("booking_id=%d tour_id=%d total=%s", booking.ID, booking.TourID, total.StringFixed(2)))

	s.background(func() {
		// best effort only; the booking already succeeded
		_ = s.Guests.UpdateStats(guestID, total)
		if err := s.Mailer.SendBookingConfirmation(booking, tour.Title); err != nil {
			utils.LogEvent(s.RequestID, "booking", "confirmation_mail_error", err.Error())
		}
		if err := s.Mailer.SendBookingNotification(booking, tour.Title); err != nil {
			utils.LogEvent(s.RequestID, "booking", "notification_mail_error", err.Error())
		}
	})

	return models.BookingConfirmation{
		BookingID:      booking.ID,
		TourTitle:      tour.Title,
		TravelDate:     booking.TravelDate,
		NumberOfPeople: booking.NumberOfPeople,
		TotalPrice:     booking.TotalPrice,
		Status:         booking.Status,
		Message:        "Booking received. We will contact you shortly to confirm.",
	}, nil
}

func (s BookingService) Get(id int64) (models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

func (s BookingService) List() ([]models.Booking, error) {
	bookings, err := s.Repo.List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return bookings, nil
}

// Update applies only the supplied fields. A changed party size triggers a
// price recalculation against the tour's current price, not the price charged
// at booking time.
func (s BookingService) Update(id int64, upd models.BookingUpdate) (models.Booking, error) {
	b, err := s.Get(id)
	if err != nil {
		return models.Booking{}, err
	}

	if upd.TravelDate != nil {
		d, err := utils.ParseDate(*upd.TravelDate)
		if err != nil {
			return models.Booking{}, domain.ValidationError{Field: "travelDate", Msg: "expected YYYY-MM-DD"}
		}
		day := utils.FormatDate(d)
		upd.TravelDate = &day
	}

	var newTotal *decimal.Decimal
	if upd.NumberOfPeople != nil {
		if *upd.NumberOfPeople < 1 {
			return models.Booking{}, domain.ValidationError{Field: "numberOfPeople", Msg: "must be at least 1"}
		}
		if *upd.NumberOfPeople != b.NumberOfPeople {
			tour, err := s.TourRepo.GetByID(b.TourID)
			if errors.Is(err, sql.ErrNoRows) {
				return models.Booking{}, domain.NotFoundError{Resource: "tour"}
			}
			if err != nil {
				return models.Booking{}, domain.InternalError{Err: err}
			}
			total := Recalculate(b.TotalPrice, tour.Price, b.NumberOfPeople, *upd.NumberOfPeople)
			newTotal = &total
		}
	}

	if err := s.Repo.UpdateFields(id, upd, newTotal); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return s.Get(id)
}

// UpdateStatus accepts any known status value; the transition graph is
// deliberately unrestricted so staff can correct records manually.
func (s BookingService) UpdateStatus(id int64, status string, notes *string) (models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return models.Booking{}, domain.ValidationError{Field: "status", Msg: "unknown status " + status}
	}
	if _, err := s.Get(id); err != nil {
		return models.Booking{}, err
	}
	if err := s.Repo.UpdateStatus(id, status, notes); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return s.Get(id)
}

// UpdatePaymentStatus sets the payment field directly; it is independent of
// booking status and no cross-validation is applied.
func (s BookingService) UpdatePaymentStatus(id int64, paymentStatus string) (models.Booking, error) {
	if !models.ValidPaymentStatus(paymentStatus) {
		return models.Booking{}, domain.ValidationError{Field: "paymentStatus", Msg: "unknown payment status " + paymentStatus}
	}
	if _, err := s.Get(id); err != nil {
		return models.Booking{}, err
	}
	if err := s.Repo.UpdatePaymentStatus(id, paymentStatus); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return s.Get(id)
}

func (s BookingService) Delete(id int64) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func (s BookingService) Stats() (models.BookingStats, error) {
	stats, err := s.Repo.Stats()
	if err != nil {
		return models.BookingStats{}, domain.InternalError{Err: err}
	}
	return stats, nil
}
