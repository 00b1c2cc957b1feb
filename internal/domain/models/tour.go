package models

import "github.com/shopspring/decimal"

// Tour is the read-only slice of the catalog the booking engine needs:
// unit price, group cap, sales flag, and a title for notification text.
type Tour struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	MaxGroupSize *int            `json:"maxGroupSize,omitempty"`
	IsActive     bool            `json:"isActive"`
}
