package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tourops/internal/domain"
	"tourops/internal/domain/models"
	"tourops/internal/repositories"
	"tourops/internal/utils"

	"github.com/shopspring/decimal"
)

// DepartureService manages scheduled tour departures. The status column is
// derived from spots_remaining on every write; only the explicit cancelled
// override survives a recompute.
type DepartureService struct {
	Repo      repositories.DepartureRepository
	RequestID string
}

// DepartureInput is the admin create/update payload.
type DepartureInput struct {
	TourID         int64    `json:"tourId"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	MaxSpots       int      `json:"maxSpots"`
	SpotsRemaining int      `json:"spotsRemaining"`
	PriceModifier  *string  `json:"priceModifier"`
	IsGuaranteed   bool     `json:"isGuaranteed"`
	IsActive       *bool    `json:"isActive"`
	Cancelled      *bool    `json:"cancelled"`
}

func parsePercent(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

func (s DepartureService) validate(in DepartureInput) (models.TourDeparture, error) {
	var none models.TourDeparture
	if in.TourID <= 0 {
		return none, domain.ValidationError{Field: "tourId", Msg: "tour id is required"}
	}
	start, err := utils.ParseDate(in.StartDate)
	if err != nil {
		return none, domain.ValidationError{Field: "startDate", Msg: "expected YYYY-MM-DD"}
	}
	end, err := utils.ParseDate(in.EndDate)
	if err != nil {
		return none, domain.ValidationError{Field: "endDate", Msg: "expected YYYY-MM-DD"}
	}
	if end.Before(start) {
		return none, domain.ValidationError{Field: "endDate", Msg: "end date precedes start date"}
	}
	if in.MaxSpots <= 0 {
		return none, domain.ValidationError{Field: "maxSpots", Msg: "must be positive"}
	}
	if in.SpotsRemaining < 0 || in.SpotsRemaining > in.MaxSpots {
		return none, domain.ValidationError{Field: "spotsRemaining", Msg: "must be between 0 and maxSpots"}
	}

	d := models.TourDeparture{
		TourID:         in.TourID,
		StartDate:      utils.FormatDate(start),
		EndDate:        utils.FormatDate(end),
		MaxSpots:       in.MaxSpots,
		SpotsRemaining: in.SpotsRemaining,
		IsGuaranteed:   in.IsGuaranteed,
		IsActive:       true,
	}
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
	if in.PriceModifier != nil {
		m, err := parsePercent(*in.PriceModifier)
		if err != nil {
			return none, domain.ValidationError{Field: "priceModifier", Msg: "expected a percentage number"}
		}
		d.PriceModifier = &m
	}
	return d, nil
}

// Create derives the initial sales status unless the departure is created
// already cancelled.
func (s DepartureService) Create(in DepartureInput) (models.TourDeparture, error) {
	d, err := s.validate(in)
	if err != nil {
		return models.TourDeparture{}, err
	}
	if in.Cancelled != nil && *in.Cancelled {
		d.Status = models.DepartureStatusCancelled
	} else {
		d.Status = models.DeriveDepartureStatus(d.SpotsRemaining, d.MaxSpots)
	}
	if err := s.Repo.Insert(&d); err != nil {
		return models.TourDeparture{}, domain.InternalError{Err: err}
	}
	return d, nil
}

// Update rewrites the departure and rederives the status. Cancelling is an
// explicit flag; a cancelled departure stays cancelled until staff send
// cancelled=false, at which point derivation takes over again. A payload
// that omits the flag leaves a stored cancellation in place.
func (s DepartureService) Update(id int64, in DepartureInput) (models.TourDeparture, error) {
	stored, err := s.Get(id)
	if err != nil {
		return models.TourDeparture{}, err
	}
	d, err := s.validate(in)
	if err != nil {
		return models.TourDeparture{}, err
	}
	d.ID = id
	switch {
	case in.Cancelled != nil && *in.Cancelled:
		d.Status = models.DepartureStatusCancelled
	case in.Cancelled == nil && stored.Status == models.DepartureStatusCancelled:
		d.Status = models.DepartureStatusCancelled
	default:
		d.Status = models.DeriveDepartureStatus(d.SpotsRemaining, d.MaxSpots)
	}
	if err := s.Repo.Update(d); err != nil {
		return models.TourDeparture{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "departure", "updated",
		fmt.Sprintf("departure_id=%d spots=%d/%d status=%s", id, d.SpotsRemaining, d.MaxSpots, d.Status))
	return d, nil
}

func (s DepartureService) Get(id int64) (models.TourDeparture, error) {
	d, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TourDeparture{}, domain.NotFoundError{Resource: "departure"}
	}
	if err != nil {
		return models.TourDeparture{}, domain.InternalError{Err: err}
	}
	return d, nil
}

func (s DepartureService) ListByTour(tourID int64) ([]models.TourDeparture, error) {
	out, err := s.Repo.ListByTour(tourID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s DepartureService) Delete(id int64) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "departure"}
	}
	return nil
}
