package repositories

import (
	"database/sql"

	"tourops/internal/domain/models"
)

// StaffRepository reads the staff directory for the assignment flow. The
// directory CRUD itself lives in the admin handlers.
type StaffRepository struct {
	DB *sql.DB
}

func (r StaffRepository) GetGuide(id int64) (models.Guide, error) {
	var g models.Guide
	err := r.DB.QueryRow(`
		SELECT id, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(languages, ''), is_active
		FROM guides WHERE id = ? LIMIT 1
	`, id).Scan(&g.ID, &g.Name, &g.Phone, &g.Languages, &g.IsActive)
	return g, err
}

func (r StaffRepository) GetDriver(id int64) (models.Driver, error) {
	var d models.Driver
	err := r.DB.QueryRow(`
		SELECT id, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(license_no, ''), is_active
		FROM drivers WHERE id = ? LIMIT 1
	`, id).Scan(&d.ID, &d.Name, &d.Phone, &d.License, &d.IsActive)
	return d, err
}

// GetVehicle returns the vehicle together with its current owner link.
func (r StaffRepository) GetVehicle(id int64) (models.Vehicle, error) {
	var v models.Vehicle
	err := r.DB.QueryRow(`
		SELECT id, driver_id, plate_number, COALESCE(model, ''), COALESCE(seats, 0)
		FROM vehicles WHERE id = ? LIMIT 1
	`, id).Scan(&v.ID, &v.DriverID, &v.PlateNumber, &v.Model, &v.Seats)
	return v, err
}
