package services

import (
	"strings"

	"tourops/internal/domain"
	"tourops/internal/domain/models"
	"tourops/internal/repositories"

	"github.com/shopspring/decimal"
)

// RateService manages per-service-type price entries for guides, drivers,
// and supplier contracts. Rates are reference data for staff; nothing in the
// booking flow enforces them.
type RateService struct {
	Repo repositories.RateRepository
}

// Upsert creates or overwrites the entry for (owner, service_type).
func (s RateService) Upsert(ownerID int64, serviceType, price, currency string) (models.Rate, error) {
	serviceType = strings.TrimSpace(strings.ToLower(serviceType))
	if serviceType == "" {
		return models.Rate{}, domain.ValidationError{Field: "serviceType", Msg: "service type is required"}
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil || amount.IsNegative() {
		return models.Rate{}, domain.ValidationError{Field: "price", Msg: "expected a non-negative amount"}
	}
	if err := s.Repo.Upsert(ownerID, serviceType, amount, currency); err != nil {
		return models.Rate{}, domain.InternalError{Err: err}
	}
	return models.Rate{OwnerID: ownerID, ServiceType: serviceType, Price: amount, Currency: currency}, nil
}

func (s RateService) List(ownerID int64) ([]models.Rate, error) {
	rates, err := s.Repo.List(ownerID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return rates, nil
}

func (s RateService) Delete(ownerID int64, serviceType string) error {
	affected, err := s.Repo.Delete(ownerID, strings.TrimSpace(strings.ToLower(serviceType)))
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "rate"}
	}
	return nil
}
