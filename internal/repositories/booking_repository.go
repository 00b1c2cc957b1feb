package repositories

import (
	"database/sql"
	"strings"
	"time"

	"tourops/internal/domain/models"

	"github.com/shopspring/decimal"
)

type BookingRepository struct {
	DB *sql.DB
}

const bookingColumns = `
	id, tour_id, guest_id,
	COALESCE(customer_name, ''), COALESCE(customer_email, ''), COALESCE(customer_phone, ''),
	DATE_FORMAT(travel_date, '%Y-%m-%d'), number_of_people, total_price,
	status, payment_status,
	COALESCE(special_requests, ''), COALESCE(notes, ''), created_at
`

func scanBooking(scan func(dest ...any) error) (models.Booking, error) {
	var (
		b     models.Booking
		guest sql.NullInt64
	)
	err := scan(&b.ID, &b.TourID, &guest,
		&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.TravelDate, &b.NumberOfPeople, &b.TotalPrice,
		&b.Status, &b.PaymentStatus,
		&b.SpecialRequests, &b.Notes, &b.CreatedAt)
	if err != nil {
		return models.Booking{}, err
	}
	if guest.Valid {
		id := guest.Int64
		b.GuestID = &id
	}
	return b, nil
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	row := r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = ? LIMIT 1`, id)
	return scanBooking(row.Scan)
}

func (r BookingRepository) Insert(b *models.Booking) error {
	res, err := r.DB.Exec(`
		INSERT INTO bookings
			(tour_id, guest_id, customer_name, customer_email, customer_phone,
			 travel_date, number_of_people, total_price, status, payment_status,
			 special_requests, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.TourID, b.GuestID, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.TravelDate, b.NumberOfPeople, b.TotalPrice, b.Status, b.PaymentStatus,
		b.SpecialRequests, b.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// UpdateFields applies a partial edit; totalPrice travels alongside when the
// party size changed and the price was recomputed.
func (r BookingRepository) UpdateFields(id int64, upd models.BookingUpdate, totalPrice *decimal.Decimal) error {
	set := []string{}
	args := []any{}
	if upd.TravelDate != nil {
		set = append(set, "travel_date = ?")
		args = append(args, *upd.TravelDate)
	}
	if upd.NumberOfPeople != nil {
		set = append(set, "number_of_people = ?")
		args = append(args, *upd.NumberOfPeople)
	}
	if totalPrice != nil {
		set = append(set, "total_price = ?")
		args = append(args, *totalPrice)
	}
	if upd.SpecialRequests != nil {
		set = append(set, "special_requests = ?")
		args = append(args, *upd.SpecialRequests)
	}
	if upd.Notes != nil {
		set = append(set, "notes = ?")
		args = append(args, *upd.Notes)
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.DB.Exec("UPDATE bookings SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	return err
}

// UpdateStatus overwrites notes only when supplied so a bare status change
// never clobbers staff notes.
func (r BookingRepository) UpdateStatus(id int64, status string, notes *string) error {
	if notes != nil {
		_, err := r.DB.Exec(`UPDATE bookings SET status = ?, notes = ? WHERE id = ?`, status, *notes, id)
		return err
	}
	_, err := r.DB.Exec(`UPDATE bookings SET status = ? WHERE id = ?`, status, id)
	return err
}

func (r BookingRepository) UpdatePaymentStatus(id int64, paymentStatus string) error {
	_, err := r.DB.Exec(`UPDATE bookings SET payment_status = ? WHERE id = ?`, paymentStatus, id)
	return err
}

func (r BookingRepository) Delete(id int64) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r BookingRepository) List() ([]models.Booking, error) {
	rows, err := r.DB.Query(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// Stats counts bookings per status; revenue sums confirmed bookings only.
func (r BookingRepository) Stats() (models.BookingStats, error) {
	var s models.BookingStats
	err := r.DB.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(status = 'pending'), 0),
			COALESCE(SUM(status = 'confirmed'), 0),
			COALESCE(SUM(status = 'cancelled'), 0),
			COALESCE(SUM(CASE WHEN status = 'confirmed' THEN total_price ELSE 0 END), 0)
		FROM bookings
	`).Scan(&s.Total, &s.Pending, &s.Confirmed, &s.Cancelled, &s.TotalRevenue)
	return s, err
}

// CountRecentSameDay backs the duplicate-submission guard: non-cancelled
// bookings for the same tour, normalized email, and travel day created since
// the window start.
func (r BookingRepository) CountRecentSameDay(tourID int64, email, travelDate string, since time.Time) (int, error) {
	var n int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM bookings
		WHERE tour_id = ?
		  AND LOWER(customer_email) = ?
		  AND travel_date = ?
		  AND status <> 'cancelled'
		  AND created_at >= ?
	`, tourID, email, travelDate, since).Scan(&n)
	return n, err
}
