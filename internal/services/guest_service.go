package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tourops/internal/domain"
	"tourops/internal/domain/models"
	"tourops/internal/repositories"
	"tourops/internal/utils"

	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
)

// GuestService owns the customer identity directory. Email is the sole
// identity key; every lookup goes through normalization.
type GuestService struct {
	Repo      repositories.GuestRepository
	RequestID string
}

// FindOrCreate resolves a guest by normalized email, patching name/phone with
// supplied non-blank values that differ from the stored ones. New guests get
// zeroed stats and the "ru" language default. At most one write either way.
func (s GuestService) FindOrCreate(email, name, phone string) (models.Guest, error) {
	norm := utils.NormalizeEmail(email)
	if norm == "" {
		return models.Guest{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}

	g, err := s.Repo.GetByEmail(norm)
	if err == nil {
		patchName := ""
		if name != "" && name != g.Name {
			patchName = name
		}
		patchPhone := ""
		if phone != "" && phone != g.Phone {
			patchPhone = phone
		}
		if patchName != "" || patchPhone != "" {
			if err := s.Repo.UpdateContact(g.ID, patchName, patchPhone); err != nil {
				return models.Guest{}, domain.InternalError{Err: err}
			}
			if patchName != "" {
				g.Name = patchName
			}
			if patchPhone != "" {
				g.Phone = patchPhone
			}
		}
		return g, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Guest{}, domain.InternalError{Err: err}
	}

	g = models.Guest{
		Email:             norm,
		Name:              name,
		Phone:             phone,
		PreferredLanguage: models.DefaultGuestLanguage,
		TotalSpent:        decimal.Zero,
	}
	if err := s.Repo.Insert(&g); err != nil {
		return models.Guest{}, domain.InternalError{Err: err}
	}
	return g, nil
}

// UpdateStats bumps lifetime-value counters after a successful booking. It
// runs fire-and-forget; the error return is for the caller's log line only.
func (s GuestService) UpdateStats(guestID int64, bookingAmount decimal.Decimal) error {
	if err := s.Repo.IncrementStats(guestID, bookingAmount, time.Now()); err != nil {
		utils.LogEvent(s.RequestID, "guest", "update_stats_error",
			fmt.Sprintf("guest_id=%d err=%v", guestID, err))
		return err
	}
	return nil
}

// Create is the admin path: a duplicate email is a conflict, not a merge.
func (s GuestService) Create(email, name, phone, country, language string) (models.Guest, error) {
	norm := utils.NormalizeEmail(email)
	if norm == "" {
		return models.Guest{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	if language == "" {
		language = models.DefaultGuestLanguage
	}

	g := models.Guest{
		Email:             norm,
		Name:              name,
		Phone:             phone,
		Country:           country,
		PreferredLanguage: language,
		TotalSpent:        decimal.Zero,
	}
	if err := s.Repo.Insert(&g); err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return models.Guest{}, domain.ConflictError{Resource: "guest", Msg: "email already exists"}
		}
		return models.Guest{}, domain.InternalError{Err: err}
	}
	return g, nil
}

func (s GuestService) Get(id int64) (models.Guest, error) {
	g, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Guest{}, domain.NotFoundError{Resource: "guest"}
	}
	if err != nil {
		return models.Guest{}, domain.InternalError{Err: err}
	}
	return g, nil
}

func (s GuestService) List() ([]models.Guest, error) {
	guests, err := s.Repo.List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return guests, nil
}

// UpdateProfile applies an admin partial edit.
func (s GuestService) UpdateProfile(id int64, name, phone, country, language *string) (models.Guest, error) {
	if _, err := s.Get(id); err != nil {
		return models.Guest{}, err
	}
	if err := s.Repo.UpdateProfile(id, name, phone, country, language); err != nil {
		return models.Guest{}, domain.InternalError{Err: err}
	}
	return s.Get(id)
}

// Delete refuses to remove a guest that still owns bookings.
func (s GuestService) Delete(id int64) error {
	n, err := s.Repo.CountBookings(id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n > 0 {
		return domain.ValidationError{Field: "guest", Msg: fmt.Sprintf("guest has %d booking(s)", n)}
	}
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "guest"}
	}
	return nil
}
