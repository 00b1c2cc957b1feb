package repositories

import (
	"database/sql"
	"time"

	"tourops/internal/domain/models"
)

// SubmissionRepository persists the public contact/inquiry/review flows and
// answers the duplicate-guard window queries for them. All email arguments
// are already normalized by the callers.
type SubmissionRepository struct {
	DB *sql.DB
}

func (r SubmissionRepository) InsertContact(m *models.ContactMessage) error {
	res, err := r.DB.Exec(`
		INSERT INTO contact_messages (name, email, message, status)
		VALUES (?, ?, ?, ?)
	`, m.Name, m.Email, m.Message, models.ContactStatusNew)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	m.Status = models.ContactStatusNew
	return nil
}

func (r SubmissionRepository) CountRecentContacts(email string, since time.Time) (int, error) {
	var n int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM contact_messages
		WHERE LOWER(email) = ? AND status <> 'closed' AND created_at >= ?
	`, email, since).Scan(&n)
	return n, err
}

func (r SubmissionRepository) InsertInquiry(m *models.TourInquiry) error {
	res, err := r.DB.Exec(`
		INSERT INTO tour_inquiries (email, tour_id, question, status)
		VALUES (?, ?, ?, ?)
	`, m.Email, m.TourID, m.Question, models.InquiryStatusNew)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	m.Status = models.InquiryStatusNew
	return nil
}

// CountRecentInquiries narrows by tour only when the fresh submission names one.
func (r SubmissionRepository) CountRecentInquiries(email string, tourID *int64, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM tour_inquiries
		WHERE LOWER(email) = ? AND status NOT IN ('closed', 'converted') AND created_at >= ?
	`
	args := []any{email, since}
	if tourID != nil {
		query += ` AND tour_id = ?`
		args = append(args, *tourID)
	}
	var n int
	err := r.DB.QueryRow(query, args...).Scan(&n)
	return n, err
}

func (r SubmissionRepository) InsertReview(m *models.Review) error {
	res, err := r.DB.Exec(`
		INSERT INTO reviews (tour_id, email, rating, text, status)
		VALUES (?, ?, ?, ?, ?)
	`, m.TourID, m.Email, m.Rating, m.Text, models.ReviewStatusPending)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	m.Status = models.ReviewStatusPending
	return nil
}

func (r SubmissionRepository) CountRecentReviews(tourID int64, email string, since time.Time) (int, error) {
	var n int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM reviews
		WHERE tour_id = ? AND LOWER(email) = ? AND status <> 'spam' AND created_at >= ?
	`, tourID, email, since).Scan(&n)
	return n, err
}

func (r SubmissionRepository) ListContacts() ([]models.ContactMessage, error) {
	rows, err := r.DB.Query(`
		SELECT id, COALESCE(name, ''), email, COALESCE(message, ''), status, created_at
		FROM contact_messages ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r SubmissionRepository) ListInquiries() ([]models.TourInquiry, error) {
	rows, err := r.DB.Query(`
		SELECT id, email, tour_id, COALESCE(question, ''), status, created_at
		FROM tour_inquiries ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TourInquiry{}
	for rows.Next() {
		var (
			m    models.TourInquiry
			tour sql.NullInt64
		)
		if err := rows.Scan(&m.ID, &m.Email, &tour, &m.Question, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		if tour.Valid {
			id := tour.Int64
			m.TourID = &id
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r SubmissionRepository) ListReviews() ([]models.Review, error) {
	rows, err := r.DB.Query(`
		SELECT id, tour_id, email, rating, COALESCE(text, ''), status, created_at
		FROM reviews ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Review{}
	for rows.Next() {
		var m models.Review
		if err := rows.Scan(&m.ID, &m.TourID, &m.Email, &m.Rating, &m.Text, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r SubmissionRepository) UpdateContactStatus(id int64, status string) (int64, error) {
	res, err := r.DB.Exec(`UPDATE contact_messages SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r SubmissionRepository) UpdateInquiryStatus(id int64, status string) (int64, error) {
	res, err := r.DB.Exec(`UPDATE tour_inquiries SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r SubmissionRepository) UpdateReviewStatus(id int64, status string) (int64, error) {
	res, err := r.DB.Exec(`UPDATE reviews SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
