package repositories

import (
	"database/sql"

	"tourops/internal/domain/models"
)

// AssignmentRepository manages the booking↔guide and booking↔driver join
// rows. Upserts rely on the unique key over the pair, so re-assigning just
// overwrites the mutable fields (last write wins under concurrency).
type AssignmentRepository struct {
	DB *sql.DB
}

func (r AssignmentRepository) UpsertGuide(bookingID, guideID int64, role string) error {
	_, err := r.DB.Exec(`
		INSERT INTO booking_guides (booking_id, guide_id, role)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE role = VALUES(role)
	`, bookingID, guideID, role)
	return err
}

func (r AssignmentRepository) DeleteGuide(bookingID, guideID int64) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM booking_guides WHERE booking_id = ? AND guide_id = ?`, bookingID, guideID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r AssignmentRepository) UpsertDriver(bookingID, driverID int64, vehicleID *int64) error {
	_, err := r.DB.Exec(`
		INSERT INTO booking_drivers (booking_id, driver_id, vehicle_id)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE vehicle_id = VALUES(vehicle_id)
	`, bookingID, driverID, vehicleID)
	return err
}

func (r AssignmentRepository) DeleteDriver(bookingID, driverID int64) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM booking_drivers WHERE booking_id = ? AND driver_id = ?`, bookingID, driverID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r AssignmentRepository) ListGuides(bookingID int64) ([]models.BookingGuide, error) {
	rows, err := r.DB.Query(`
		SELECT bg.booking_id, bg.guide_id, COALESCE(g.name, ''), COALESCE(bg.role, '')
		FROM booking_guides bg
		JOIN guides g ON g.id = bg.guide_id
		WHERE bg.booking_id = ?
		ORDER BY bg.guide_id
	`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingGuide{}
	for rows.Next() {
		var bg models.BookingGuide
		if err := rows.Scan(&bg.BookingID, &bg.GuideID, &bg.GuideName, &bg.Role); err != nil {
			return nil, err
		}
		out = append(out, bg)
	}
	return out, rows.Err()
}

func (r AssignmentRepository) ListDrivers(bookingID int64) ([]models.BookingDriver, error) {
	rows, err := r.DB.Query(`
		SELECT bd.booking_id, bd.driver_id, COALESCE(d.name, ''),
		       bd.vehicle_id, v.driver_id, v.plate_number, v.model, v.seats
		FROM booking_drivers bd
		JOIN drivers d ON d.id = bd.driver_id
		LEFT JOIN vehicles v ON v.id = bd.vehicle_id
		WHERE bd.booking_id = ?
		ORDER BY bd.driver_id
	`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingDriver{}
	for rows.Next() {
		var (
			bd        models.BookingDriver
			vehicleID sql.NullInt64
			vOwner    sql.NullInt64
			vPlate    sql.NullString
			vModel    sql.NullString
			vSeats    sql.NullInt64
		)
		if err := rows.Scan(&bd.BookingID, &bd.DriverID, &bd.DriverName,
			&vehicleID, &vOwner, &vPlate, &vModel, &vSeats); err != nil {
			return nil, err
		}
		if vehicleID.Valid {
			id := vehicleID.Int64
			bd.VehicleID = &id
			bd.Vehicle = &models.Vehicle{
				ID:          id,
				DriverID:    vOwner.Int64,
				PlateNumber: vPlate.String,
				Model:       vModel.String,
				Seats:       int(vSeats.Int64),
			}
		}
		out = append(out, bd)
	}
	return out, rows.Err()
}
