package repositories

import (
	"database/sql"

	"tourops/internal/domain/models"
)

// TourRepository is the read-only slice of the catalog the booking engine
// consumes. Catalog management itself lives elsewhere.
type TourRepository struct {
	DB *sql.DB
}

func (r TourRepository) GetByID(id int64) (models.Tour, error) {
	var (
		t        models.Tour
		maxGroup sql.NullInt64
	)
	err := r.DB.QueryRow(`
		SELECT id, COALESCE(title, ''), price, max_group_size, is_active
		FROM tours
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&t.ID, &t.Title, &t.Price, &maxGroup, &t.IsActive)
	if err != nil {
		return models.Tour{}, err
	}
	if maxGroup.Valid {
		v := int(maxGroup.Int64)
		t.MaxGroupSize = &v
	}
	return t, nil
}
