package services

import (
	"database/sql"
	"testing"
	"time"

	"tourops/internal/domain"
	"tourops/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func bookingServiceForTest(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	mock.MatchExpectationsInOrder(false)

	svc := BookingService{
		Repo:     repositories.BookingRepository{DB: db},
		TourRepo: repositories.TourRepository{DB: db},
		Guests:   GuestService{Repo: repositories.GuestRepository{DB: db}},
		Dedupe: DedupeService{
			BookingRepo:    repositories.BookingRepository{DB: db},
			SubmissionRepo: repositories.SubmissionRepository{DB: db},
		},
		Mailer:     Mailer{}, // unconfigured, logs instead of sending
		Background: func(fn func()) { fn() },
	}
	return svc, mock, func() { db.Close() }
}

func tourRows(price string, maxGroup any, active bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "price", "max_group_size", "is_active"}).
		AddRow(1, "Lake Baikal Winter", price, maxGroup, active)
}

func futureDay(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestCreateBookingHappyPath(t *testing.T) {
	svc, mock, closeDB := bookingServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("FROM tours").WillReturnRows(tourRows("4500.00", nil, true))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectQuery("FROM guests WHERE email").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO guests").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("UPDATE guests SET").WillReturnResult(sqlmock.NewResult(0, 1))

	conf, err := svc.Create(CreateBookingInput{
		TourID:         1,
		CustomerName:   "Ivan Petrov",
		CustomerEmail:  "Ivan.Petrov@Example.com",
		CustomerPhone:  "+7 900 000 00 00",
		TravelDate:     futureDay(14),
		NumberOfPeople: 3,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if conf.BookingID != 42 {
		t.Fatalf("booking id = %d, want 42", conf.BookingID)
	}
	if conf.Status != "pending" {
		t.Fatalf("status = %s, want pending", conf.Status)
	}
	if want, _ := decimal.NewFromString("13500.00"); !conf.TotalPrice.Equal(want) {
		t.Fatalf("total = %s, want %s", conf.TotalPrice, want)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingRejectsDuplicateWindow(t *testing.T) {
	svc, mock, closeDB := bookingServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("FROM tours").WillReturnRows(tourRows("4500.00", nil, true))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	_, err := svc.Create(CreateBookingInput{
		TourID:         1,
		CustomerEmail:  "ivan@example.com",
		TravelDate:     futureDay(14),
		NumberOfPeople: 2,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	svc, mock, closeDB := bookingServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("FROM tours").WillReturnRows(tourRows("4500.00", nil, true))

	_, err := svc.Create(CreateBookingInput{
		TourID:         1,
		CustomerEmail:  "ivan@example.com",
		TravelDate:     "2020-01-01",
		NumberOfPeople: 2,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateBookingAcceptsExactGroupSizeToday(t *testing.T) {
	svc, mock, closeDB := bookingServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("FROM tours").WillReturnRows(tourRows("4500.00", 4, true))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectQuery("FROM guests WHERE email").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO guests").WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(43, 1))
	mock.ExpectExec("UPDATE guests SET").WillReturnResult(sqlmock.NewResult(0, 1))

	conf, err := svc.Create(CreateBookingInput{
		TourID:         1,
		CustomerEmail:  "ivan@example.com",
		TravelDate:     futureDay(0), // today is allowed
		NumberOfPeople: 4,            // exactly maxGroupSize
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if conf.BookingID != 43 {
		t.Fatalf("booking id = %d, want 43", conf.BookingID)
	}
}

func TestCreateBookingRejectsOversizedGroup(t *testing.T) {
	svc, mock, closeDB := bookingServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("FROM tours").WillReturnRows(tourRows("4500.00", 4, true))

	_, err := svc.Create(CreateBookingInput{
		TourID:         1,
		CustomerEmail:  "ivan@example.com",
		TravelDate:     futureDay(14),
		NumberOfPeople: 6,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateBookingRejectsInactiveTour(t *testing.T) {
	svc, mock, closeDB := bookingServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("FROM tours").WillReturnRows(tourRows("4500.00", nil, false))

	_, err := svc.Create(CreateBookingInput{
		TourID:         1,
		CustomerEmail:  "ivan@example.com",
		TravelDate:     futureDay(14),
		NumberOfPeople: 2,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateBookingRejectsMissingEmail(t *testing.T) {
	svc, _, closeDB := bookingServiceForTest(t)
	defer closeDB()

	_, err := svc.Create(CreateBookingInput{
		TourID:         1,
		TravelDate:     futureDay(14),
		NumberOfPeople: 2,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, _, closeDB := bookingServiceForTest(t)
	defer closeDB()

	_, err := svc.UpdateStatus(1, "shipped", nil)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStatsRevenueCountsConfirmedOnly(t *testing.T) {
	svc, mock, closeDB := bookingServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("FROM bookings").WillReturnRows(
		sqlmock.NewRows([]string{"total", "pending", "confirmed", "cancelled", "revenue"}).
			AddRow(10, 3, 5, 2, "50000.00"))

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if stats.Total != 10 || stats.Pending != 3 || stats.Confirmed != 5 || stats.Cancelled != 2 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if want, _ := decimal.NewFromString("50000.00"); !stats.TotalRevenue.Equal(want) {
		t.Fatalf("revenue = %s, want %s", stats.TotalRevenue, want)
	}
}
