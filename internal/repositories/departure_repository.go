package repositories

import (
	"database/sql"

	"tourops/internal/domain/models"

	"github.com/shopspring/decimal"
)

type DepartureRepository struct {
	DB *sql.DB
}

const departureColumns = `
	id, tour_id,
	DATE_FORMAT(start_date, '%Y-%m-%d'), DATE_FORMAT(end_date, '%Y-%m-%d'),
	max_spots, spots_remaining, status, price_modifier, is_guaranteed, is_active
`

func scanDeparture(scan func(dest ...any) error) (models.TourDeparture, error) {
	var (
		d        models.TourDeparture
		modifier decimal.NullDecimal
	)
	err := scan(&d.ID, &d.TourID, &d.StartDate, &d.EndDate,
		&d.MaxSpots, &d.SpotsRemaining, &d.Status, &modifier, &d.IsGuaranteed, &d.IsActive)
	if err != nil {
		return models.TourDeparture{}, err
	}
	if modifier.Valid {
		m := modifier.Decimal
		d.PriceModifier = &m
	}
	return d, nil
}

func (r DepartureRepository) GetByID(id int64) (models.TourDeparture, error) {
	row := r.DB.QueryRow(`SELECT `+departureColumns+` FROM tour_departures WHERE id = ? LIMIT 1`, id)
	return scanDeparture(row.Scan)
}

func (r DepartureRepository) Insert(d *models.TourDeparture) error {
	res, err := r.DB.Exec(`
		INSERT INTO tour_departures
			(tour_id, start_date, end_date, max_spots, spots_remaining, status,
			 price_modifier, is_guaranteed, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, d.TourID, d.StartDate, d.EndDate, d.MaxSpots, d.SpotsRemaining, d.Status,
		d.PriceModifier, d.IsGuaranteed, d.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}

// Update writes the full row; the caller has already rederived status.
func (r DepartureRepository) Update(d models.TourDeparture) error {
	_, err := r.DB.Exec(`
		UPDATE tour_departures SET
			start_date = ?, end_date = ?, max_spots = ?, spots_remaining = ?,
			status = ?, price_modifier = ?, is_guaranteed = ?, is_active = ?
		WHERE id = ?
	`, d.StartDate, d.EndDate, d.MaxSpots, d.SpotsRemaining,
		d.Status, d.PriceModifier, d.IsGuaranteed, d.IsActive, d.ID)
	return err
}

func (r DepartureRepository) Delete(id int64) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM tour_departures WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r DepartureRepository) ListByTour(tourID int64) ([]models.TourDeparture, error) {
	rows, err := r.DB.Query(`
		SELECT `+departureColumns+` FROM tour_departures
		WHERE tour_id = ?
		ORDER BY start_date
	`, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TourDeparture{}
	for rows.Next() {
		d, err := scanDeparture(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
