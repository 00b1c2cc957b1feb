package services

import (
	"testing"
	"time"

	"tourops/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func dedupeServiceForTest(t *testing.T, now time.Time) (DedupeService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := DedupeService{
		BookingRepo:    repositories.BookingRepository{DB: db},
		SubmissionRepo: repositories.SubmissionRepository{DB: db},
		Now:            func() time.Time { return now },
	}
	return svc, mock, func() { db.Close() }
}

func TestDuplicateBookingWindowIsFiveMinutes(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc, mock, closeDB := dedupeServiceForTest(t, now)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WithArgs(int64(1), "ivan@example.com", "2026-09-10", now.Add(-5*time.Minute)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	dup, err := svc.IsDuplicateBooking(1, "Ivan@Example.com", "2026-09-10")
	if err != nil {
		t.Fatalf("dedupe error: %v", err)
	}
	if !dup {
		t.Fatalf("expected duplicate hit")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDuplicateReviewWindowIsOneDay(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc, mock, closeDB := dedupeServiceForTest(t, now)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reviews").
		WithArgs(int64(7), "ivan@example.com", now.Add(-24*time.Hour)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	dup, err := svc.IsDuplicateReview(7, "ivan@example.com")
	if err != nil {
		t.Fatalf("dedupe error: %v", err)
	}
	if dup {
		t.Fatalf("no prior review, expected pass")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDuplicateInquiryNarrowsByTourWhenPresent(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc, mock, closeDB := dedupeServiceForTest(t, now)
	defer closeDB()

	tourID := int64(3)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM tour_inquiries").
		WithArgs("ivan@example.com", now.Add(-5*time.Minute), tourID).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	dup, err := svc.IsDuplicateInquiry("ivan@example.com", &tourID)
	if err != nil {
		t.Fatalf("dedupe error: %v", err)
	}
	if !dup {
		t.Fatalf("expected duplicate hit")
	}
}

func TestDuplicateContactPassesWhenWindowEmpty(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc, mock, closeDB := dedupeServiceForTest(t, now)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contact_messages").
		WithArgs("ivan@example.com", now.Add(-5*time.Minute)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	dup, err := svc.IsDuplicateContact("ivan@example.com")
	if err != nil {
		t.Fatalf("dedupe error: %v", err)
	}
	if dup {
		t.Fatalf("empty window, expected pass")
	}
}
