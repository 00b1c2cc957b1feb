package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultGuestLanguage is assigned when the public flow creates a guest.
const DefaultGuestLanguage = "ru"

// Guest is the persistent customer identity, keyed by normalized email.
// total_bookings / total_spent are maintained by atomic SQL increments only.
type Guest struct {
	ID                int64           `json:"id"`
	Email             string          `json:"email"`
	Name              string          `json:"name"`
	Phone             string          `json:"phone,omitempty"`
	Country           string          `json:"country,omitempty"`
	PreferredLanguage string          `json:"preferredLanguage"`
	TotalBookings     int             `json:"totalBookings"`
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	LastBookingAt     *time.Time      `json:"lastBookingAt,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}
