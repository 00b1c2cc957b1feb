package services

import (
	"database/sql"
	"errors"
	"fmt"

	"tourops/internal/domain"
	"tourops/internal/domain/models"
	"tourops/internal/repositories"
	"tourops/internal/utils"
)

// AssignmentService attaches guides and drivers (optionally with a vehicle)
// to bookings. Assignments are idempotent upserts over the unique
// (booking, staff) pair.
type AssignmentService struct {
	Assignments repositories.AssignmentRepository
	Bookings    repositories.BookingRepository
	Staff       repositories.StaffRepository
	Guests      repositories.GuestRepository
	RequestID   string
}

func (s AssignmentService) bookingExists(bookingID int64) error {
	_, err := s.Bookings.GetByID(bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// AssignGuide upserts the pair; re-assigning an already-assigned guide just
// updates the role.
func (s AssignmentService) AssignGuide(bookingID, guideID int64, role string) error {
	if err := s.bookingExists(bookingID); err != nil {
		return err
	}
	if _, err := s.Staff.GetGuide(guideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "guide"}
		}
		return domain.InternalError{Err: err}
	}
	if err := s.Assignments.UpsertGuide(bookingID, guideID, role); err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "assignment", "guide_assigned",
		fmt.Sprintf("booking_id=%d guide_id=%d role=%s", bookingID, guideID, role))
	return nil
}

func (s AssignmentService) RemoveGuide(bookingID, guideID int64) error {
	affected, err := s.Assignments.DeleteGuide(bookingID, guideID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "guide assignment"}
	}
	return nil
}

// AssignDriver upserts the pair. When a vehicle is supplied its current owner
// link must name the same driver; a vehicle that belongs to someone else is a
// validation failure, not a silent reassignment.
func (s AssignmentService) AssignDriver(bookingID, driverID int64, vehicleID *int64) error {
	if err := s.bookingExists(bookingID); err != nil {
		return err
	}
	if _, err := s.Staff.GetDriver(driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "driver"}
		}
		return domain.InternalError{Err: err}
	}
	if vehicleID != nil {
		v, err := s.Staff.GetVehicle(*vehicleID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "vehicle"}
		}
		if err != nil {
			return domain.InternalError{Err: err}
		}
		if v.DriverID != driverID {
			return domain.ValidationError{
				Field: "vehicleId",
				Msg:   fmt.Sprintf("vehicle %s belongs to another driver", v.PlateNumber),
			}
		}
	}
	if err := s.Assignments.UpsertDriver(bookingID, driverID, vehicleID); err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "assignment", "driver_assigned",
		fmt.Sprintf("booking_id=%d driver_id=%d", bookingID, driverID))
	return nil
}

func (s AssignmentService) RemoveDriver(bookingID, driverID int64) error {
	affected, err := s.Assignments.DeleteDriver(bookingID, driverID)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "driver assignment"}
	}
	return nil
}

// GetBookingWithStaff is the read-only staffing aggregate: booking + guest +
// assigned guides + assigned drivers with their vehicles.
func (s AssignmentService) GetBookingWithStaff(bookingID int64) (models.BookingWithStaff, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BookingWithStaff{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return models.BookingWithStaff{}, domain.InternalError{Err: err}
	}

	out := models.BookingWithStaff{Booking: b}

	if b.GuestID != nil {
		g, err := s.Guests.GetByID(*b.GuestID)
		if err == nil {
			out.Guest = &g
		} else if !errors.Is(err, sql.ErrNoRows) {
			return models.BookingWithStaff{}, domain.InternalError{Err: err}
		}
	}

	guides, err := s.Assignments.ListGuides(bookingID)
	if err != nil {
		return models.BookingWithStaff{}, domain.InternalError{Err: err}
	}
	out.Guides = guides

	drivers, err := s.Assignments.ListDrivers(bookingID)
	if err != nil {
		return models.BookingWithStaff{}, domain.InternalError{Err: err}
	}
	out.Drivers = drivers

	return out, nil
}
