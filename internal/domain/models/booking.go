package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking statuses. Transitions are deliberately unrestricted so staff can
// correct records by hand; only unknown values are rejected.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Payment statuses, independent of booking status.
const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid:
		return true
	}
	return false
}

// Booking is one reservation against a tour. The customer_* fields are a
// contact snapshot captured at submission time and stay untouched when the
// linked guest record is edited later.
type Booking struct {
	ID              int64           `json:"id"`
	TourID          int64           `json:"tourId"`
	GuestID         *int64          `json:"guestId,omitempty"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	TravelDate      string          `json:"travelDate"` // YYYY-MM-DD
	NumberOfPeople  int             `json:"numberOfPeople"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// BookingUpdate supports partial edits via pointer presence.
type BookingUpdate struct {
	TravelDate      *string `json:"travelDate"`
	NumberOfPeople  *int    `json:"numberOfPeople"`
	SpecialRequests *string `json:"specialRequests"`
	Notes           *string `json:"notes"`
}

// BookingStats aggregates counts by status plus confirmed revenue.
type BookingStats struct {
	Total        int             `json:"total"`
	Pending      int             `json:"pending"`
	Confirmed    int             `json:"confirmed"`
	Cancelled    int             `json:"cancelled"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// BookingConfirmation is the payload returned to the public booking flow.
type BookingConfirmation struct {
	BookingID      int64           `json:"bookingId"`
	TourTitle      string          `json:"tourTitle"`
	TravelDate     string          `json:"travelDate"`
	NumberOfPeople int             `json:"numberOfPeople"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	Status         string          `json:"status"`
	Message        string          `json:"message"`
}
