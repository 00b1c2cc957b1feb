package models

import "github.com/shopspring/decimal"

// Rate is a per-service-type price entry attached to a guide, driver, or
// supplier contract. Unique per (owner, service_type); looked up by the
// assignment flow, never enforced.
type Rate struct {
	ID          int64           `json:"id"`
	OwnerID     int64           `json:"ownerId"`
	ServiceType string          `json:"serviceType"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency,omitempty"`
}
