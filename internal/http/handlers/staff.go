package handlers

import (
	"net/http"
	"strings"

	"tourops/internal/config"
	"tourops/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

// Staff directory CRUD talks to the database directly; the assignment flow
// goes through services.AssignmentService instead.

type guidePayload struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Languages string `json:"languages"`
	IsActive  *bool  `json:"isActive"`
}

// GET /api/guides?q=anna
func GetGuides(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	query := `
		SELECT id, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(languages, ''), is_active
		FROM guides
	`
	args := []any{}
	if q != "" {
		query += " WHERE name LIKE ?"
		args = append(args, "%"+q+"%")
	}
	query += " ORDER BY name ASC"

	rows, err := config.DB.Query(query, args...)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to list guides")
		return
	}
	defer rows.Close()

	list := []models.Guide{}
	for rows.Next() {
		var g models.Guide
		if err := rows.Scan(&g.ID, &g.Name, &g.Phone, &g.Languages, &g.IsActive); err != nil {
			respondError(c, http.StatusInternalServerError, "internal_error", "failed to scan guide")
			return
		}
		list = append(list, g)
	}
	if err := rows.Err(); err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to list guides")
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/guides
func CreateGuide(c *gin.Context) {
	var p guidePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		respondError(c, http.StatusBadRequest, "bad_request", "name is required")
		return
	}
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}

	res, err := config.DB.Exec(`
		INSERT INTO guides (name, phone, languages, is_active)
		VALUES (?, ?, ?, ?)
	`, name, nullIfEmpty(p.Phone), nullIfEmpty(p.Languages), active)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to create guide")
		return
	}
	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/guides/:id
func UpdateGuide(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p guidePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		respondError(c, http.StatusBadRequest, "bad_request", "name is required")
		return
	}
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}

	res, err := config.DB.Exec(`
		UPDATE guides SET name = ?, phone = ?, languages = ?, is_active = ?
		WHERE id = ?
	`, name, nullIfEmpty(p.Phone), nullIfEmpty(p.Languages), active, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to update guide")
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		respondError(c, http.StatusNotFound, "not_found", "guide not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": id})
}

// DELETE /api/guides/:id
func DeleteGuide(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	res, err := config.DB.Exec(`DELETE FROM guides WHERE id = ?`, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to delete guide")
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		respondError(c, http.StatusNotFound, "not_found", "guide not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

type driverPayload struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	License  string `json:"license"`
	IsActive *bool  `json:"isActive"`
}

// GET /api/drivers?q=ivan
func GetDrivers(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	query := `
		SELECT id, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(license_no, ''), is_active
		FROM drivers
	`
	args := []any{}
	if q != "" {
		query += " WHERE name LIKE ?"
		args = append(args, "%"+q+"%")
	}
	query += " ORDER BY name ASC"

	rows, err := config.DB.Query(query, args...)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to list drivers")
		return
	}
	defer rows.Close()

	list := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.License, &d.IsActive); err != nil {
			respondError(c, http.StatusInternalServerError, "internal_error", "failed to scan driver")
			return
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to list drivers")
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var p driverPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		respondError(c, http.StatusBadRequest, "bad_request", "name is required")
		return
	}
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}

	res, err := config.DB.Exec(`
		INSERT INTO drivers (name, phone, license_no, is_active)
		VALUES (?, ?, ?, ?)
	`, name, nullIfEmpty(p.Phone), nullIfEmpty(p.License), active)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to create driver")
		return
	}
	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p driverPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		respondError(c, http.StatusBadRequest, "bad_request", "name is required")
		return
	}
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}

	res, err := config.DB.Exec(`
		UPDATE drivers SET name = ?, phone = ?, license_no = ?, is_active = ?
		WHERE id = ?
	`, name, nullIfEmpty(p.Phone), nullIfEmpty(p.License), active, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to update driver")
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		respondError(c, http.StatusNotFound, "not_found", "driver not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": id})
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	res, err := config.DB.Exec(`DELETE FROM drivers WHERE id = ?`, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to delete driver")
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		respondError(c, http.StatusNotFound, "not_found", "driver not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

type vehiclePayload struct {
	DriverID    int64  `json:"driverId" binding:"required"`
	PlateNumber string `json:"plateNumber" binding:"required"`
	Model       string `json:"model"`
	Seats       int    `json:"seats"`
}

// GET /api/vehicles?driverId=3
func GetVehicles(c *gin.Context) {
	query := `
		SELECT id, driver_id, plate_number, COALESCE(model, ''), COALESCE(seats, 0)
		FROM vehicles
	`
	args := []any{}
	if d := strings.TrimSpace(c.Query("driverId")); d != "" {
		query += " WHERE driver_id = ?"
		args = append(args, d)
	}
	query += " ORDER BY id DESC"

	rows, err := config.DB.Query(query, args...)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to list vehicles")
		return
	}
	defer rows.Close()

	list := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.DriverID, &v.PlateNumber, &v.Model, &v.Seats); err != nil {
			respondError(c, http.StatusInternalServerError, "internal_error", "failed to scan vehicle")
			return
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to list vehicles")
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var p vehiclePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	plate := strings.TrimSpace(p.PlateNumber)
	if plate == "" || p.DriverID == 0 {
		respondError(c, http.StatusBadRequest, "bad_request", "driverId and plateNumber are required")
		return
	}

	res, err := config.DB.Exec(`
		INSERT INTO vehicles (driver_id, plate_number, model, seats)
		VALUES (?, ?, ?, ?)
	`, p.DriverID, plate, nullIfEmpty(p.Model), p.Seats)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			respondError(c, http.StatusConflict, "conflict", "plate number already registered")
			return
		}
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to create vehicle")
		return
	}
	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p vehiclePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	plate := strings.TrimSpace(p.PlateNumber)
	if plate == "" || p.DriverID == 0 {
		respondError(c, http.StatusBadRequest, "bad_request", "driverId and plateNumber are required")
		return
	}

	res, err := config.DB.Exec(`
		UPDATE vehicles SET driver_id = ?, plate_number = ?, model = ?, seats = ?
		WHERE id = ?
	`, p.DriverID, plate, nullIfEmpty(p.Model), p.Seats, id)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			respondError(c, http.StatusConflict, "conflict", "plate number already registered")
			return
		}
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to update vehicle")
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		respondError(c, http.StatusNotFound, "not_found", "vehicle not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": id})
}

// DELETE /api/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	res, err := config.DB.Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to delete vehicle")
		return
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		respondError(c, http.StatusNotFound, "not_found", "vehicle not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func nullIfEmpty(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
