package repositories

import (
	"database/sql"
	"strings"
	"time"

	"tourops/internal/domain/models"

	"github.com/shopspring/decimal"
)

type GuestRepository struct {
	DB *sql.DB
}

const guestColumns = `
	id, email, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(country, ''),
	COALESCE(preferred_language, ''), total_bookings, total_spent,
	last_booking_at, created_at
`

func (r GuestRepository) scanGuest(row *sql.Row) (models.Guest, error) {
	var (
		g    models.Guest
		last sql.NullTime
	)
	err := row.Scan(&g.ID, &g.Email, &g.Name, &g.Phone, &g.Country,
		&g.PreferredLanguage, &g.TotalBookings, &g.TotalSpent, &last, &g.CreatedAt)
	if err != nil {
		return models.Guest{}, err
	}
	if last.Valid {
		t := last.Time
		g.LastBookingAt = &t
	}
	return g, nil
}

// GetByEmail expects an already-normalized email; sql.ErrNoRows passes through.
func (r GuestRepository) GetByEmail(email string) (models.Guest, error) {
	row := r.DB.QueryRow(`SELECT `+guestColumns+` FROM guests WHERE email = ? LIMIT 1`, email)
	return r.scanGuest(row)
}

func (r GuestRepository) GetByID(id int64) (models.Guest, error) {
	row := r.DB.QueryRow(`SELECT `+guestColumns+` FROM guests WHERE id = ? LIMIT 1`, id)
	return r.scanGuest(row)
}

// Insert relies on the unique key on guests(email); the caller maps the
// 1062 duplicate error to a Conflict.
func (r GuestRepository) Insert(g *models.Guest) error {
	res, err := r.DB.Exec(`
		INSERT INTO guests (email, name, phone, country, preferred_language, total_bookings, total_spent)
		VALUES (?, ?, ?, ?, ?, 0, 0)
	`, g.Email, g.Name, g.Phone, g.Country, g.PreferredLanguage)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = id
	return nil
}

// UpdateContact patches name/phone on the find-or-create path. Callers pass
// only non-blank values that actually differ from stored ones.
func (r GuestRepository) UpdateContact(id int64, name, phone string) error {
	_, err := r.DB.Exec(`
		UPDATE guests SET
			name  = CASE WHEN ? <> '' THEN ? ELSE name END,
			phone = CASE WHEN ? <> '' THEN ? ELSE phone END
		WHERE id = ?
	`, name, name, phone, phone, id)
	return err
}

// UpdateProfile applies an admin partial edit via pointer presence.
func (r GuestRepository) UpdateProfile(id int64, name, phone, country, language *string) error {
	set := []string{}
	args := []any{}
	add := func(col string, v *string) {
		if v != nil {
			set = append(set, col+" = ?")
			args = append(args, *v)
		}
	}
	add("name", name)
	add("phone", phone)
	add("country", country)
	add("preferred_language", language)
	if len(set) == 0 {
		return nil
	}
	args = append(args, id)
	query := "UPDATE guests SET " + strings.Join(set, ", ") + " WHERE id = ?"
	_, err := r.DB.Exec(query, args...)
	return err
}

// IncrementStats bumps the lifetime-value counters with a single atomic
// statement; never read-modify-write these columns in application code.
func (r GuestRepository) IncrementStats(id int64, amount decimal.Decimal, at time.Time) error {
	_, err := r.DB.Exec(`
		UPDATE guests SET
			total_bookings  = total_bookings + 1,
			total_spent     = total_spent + ?,
			last_booking_at = ?
		WHERE id = ?
	`, amount, at, id)
	return err
}

func (r GuestRepository) CountBookings(guestID int64) (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE guest_id = ?`, guestID).Scan(&n)
	return n, err
}

func (r GuestRepository) Delete(id int64) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM guests WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r GuestRepository) List() ([]models.Guest, error) {
	rows, err := r.DB.Query(`SELECT ` + guestColumns + ` FROM guests ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := []models.Guest{}
	for rows.Next() {
		var (
			g    models.Guest
			last sql.NullTime
		)
		if err := rows.Scan(&g.ID, &g.Email, &g.Name, &g.Phone, &g.Country,
			&g.PreferredLanguage, &g.TotalBookings, &g.TotalSpent, &last, &g.CreatedAt); err != nil {
			return nil, err
		}
		if last.Valid {
			t := last.Time
			g.LastBookingAt = &t
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
