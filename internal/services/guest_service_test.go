package services

import (
	"database/sql"
	"testing"
	"time"

	"tourops/internal/domain"
	"tourops/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func guestServiceForTest(t *testing.T) (GuestService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	mock.MatchExpectationsInOrder(false)
	return GuestService{Repo: repositories.GuestRepository{DB: db}}, mock, func() { db.Close() }
}

func guestRows(id int64, email, name, phone string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "name", "phone", "country",
		"preferred_language", "total_bookings", "total_spent",
		"last_booking_at", "created_at",
	}).AddRow(id, email, name, phone, "", "ru", 2, "9000.00", nil, time.Now())
}

func TestFindOrCreateReturnsExistingAndPatchesContact(t *testing.T) {
	svc, mock, closeDB := guestServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("FROM guests WHERE email").
		WillReturnRows(guestRows(3, "ivan@example.com", "Old Name", ""))
	mock.ExpectExec("UPDATE guests SET").WillReturnResult(sqlmock.NewResult(0, 1))

	g, err := svc.FindOrCreate("  Ivan@Example.COM ", "Ivan Petrov", "+7 900")
	if err != nil {
		t.Fatalf("find-or-create error: %v", err)
	}
	if g.ID != 3 {
		t.Fatalf("guest id = %d, want 3", g.ID)
	}
	if g.Name != "Ivan Petrov" || g.Phone != "+7 900" {
		t.Fatalf("contact not patched: %+v", g)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindOrCreateSkipsWriteWhenNothingChanged(t *testing.T) {
	svc, mock, closeDB := guestServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("FROM guests WHERE email").
		WillReturnRows(guestRows(3, "ivan@example.com", "Ivan Petrov", "+7 900"))

	g, err := svc.FindOrCreate("ivan@example.com", "Ivan Petrov", "+7 900")
	if err != nil {
		t.Fatalf("find-or-create error: %v", err)
	}
	if g.ID != 3 {
		t.Fatalf("guest id = %d, want 3", g.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected write: %v", err)
	}
}

func TestFindOrCreateInsertsNewGuestWithDefaults(t *testing.T) {
	svc, mock, closeDB := guestServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("FROM guests WHERE email").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO guests").WillReturnResult(sqlmock.NewResult(11, 1))

	g, err := svc.FindOrCreate("new@example.com", "New Guest", "")
	if err != nil {
		t.Fatalf("find-or-create error: %v", err)
	}
	if g.ID != 11 {
		t.Fatalf("guest id = %d, want 11", g.ID)
	}
	if g.PreferredLanguage != "ru" {
		t.Fatalf("language = %q, want default ru", g.PreferredLanguage)
	}
	if !g.TotalSpent.IsZero() {
		t.Fatalf("new guest total spent = %s, want zero", g.TotalSpent)
	}
}

func TestCreateDuplicateEmailIsConflict(t *testing.T) {
	svc, mock, closeDB := guestServiceForTest(t)
	defer closeDB()

	mock.ExpectExec("INSERT INTO guests").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := svc.Create("taken@example.com", "Any", "", "", "")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDeleteGuestWithBookingsFails(t *testing.T) {
	svc, mock, closeDB := guestServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))

	err := svc.Delete(3)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteMissingGuestIsNotFound(t *testing.T) {
	svc, mock, closeDB := guestServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("DELETE FROM guests").WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
