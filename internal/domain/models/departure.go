package models

import "github.com/shopspring/decimal"

// Departure sales statuses. All but cancelled are derived from the remaining
// capacity; cancelled is a manual override and never auto-assigned.
const (
	DepartureStatusAvailable   = "available"
	DepartureStatusFillingFast = "filling_fast"
	DepartureStatusAlmostFull  = "almost_full"
	DepartureStatusSoldOut     = "sold_out"
	DepartureStatusCancelled   = "cancelled"
)

// TourDeparture is a scheduled sailing of a tour. The status column is a
// cached derivation over spots_remaining/max_spots, recomputed on every write
// that touches the spot counts.
type TourDeparture struct {
	ID             int64            `json:"id"`
	TourID         int64            `json:"tourId"`
	StartDate      string           `json:"startDate"` // YYYY-MM-DD
	EndDate        string           `json:"endDate"`
	MaxSpots       int              `json:"maxSpots"`
	SpotsRemaining int              `json:"spotsRemaining"`
	Status         string           `json:"status"`
	PriceModifier  *decimal.Decimal `json:"priceModifier,omitempty"` // percent
	IsGuaranteed   bool             `json:"isGuaranteed"`
	IsActive       bool             `json:"isActive"`
}

// DeriveDepartureStatus maps remaining capacity onto a sales label.
// Evaluated top-down, first match wins; the 40% threshold is compared with
// integer cross-multiplication so 4/12 lands exactly on filling_fast.
func DeriveDepartureStatus(spotsRemaining, maxSpots int) string {
	switch {
	case spotsRemaining <= 0:
		return DepartureStatusSoldOut
	case spotsRemaining <= 2:
		return DepartureStatusAlmostFull
	case spotsRemaining*5 <= maxSpots*2:
		return DepartureStatusFillingFast
	default:
		return DepartureStatusAvailable
	}
}
