package services

import (
	"testing"

	"tourops/internal/domain"
	"tourops/internal/domain/models"
	"tourops/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func departureServiceForTest(t *testing.T) (DepartureService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return DepartureService{Repo: repositories.DepartureRepository{DB: db}}, mock, func() { db.Close() }
}

func TestCreateDepartureValidation(t *testing.T) {
	svc := DepartureService{}

	cases := []struct {
		name string
		in   DepartureInput
	}{
		{"missing tour", DepartureInput{StartDate: "2026-09-01", EndDate: "2026-09-05", MaxSpots: 12}},
		{"bad start date", DepartureInput{TourID: 1, StartDate: "01.09.2026", EndDate: "2026-09-05", MaxSpots: 12}},
		{"end before start", DepartureInput{TourID: 1, StartDate: "2026-09-05", EndDate: "2026-09-01", MaxSpots: 12}},
		{"zero capacity", DepartureInput{TourID: 1, StartDate: "2026-09-01", EndDate: "2026-09-05", MaxSpots: 0}},
		{"spots above capacity", DepartureInput{TourID: 1, StartDate: "2026-09-01", EndDate: "2026-09-05", MaxSpots: 12, SpotsRemaining: 15}},
		{"bad modifier", DepartureInput{TourID: 1, StartDate: "2026-09-01", EndDate: "2026-09-05", MaxSpots: 12, SpotsRemaining: 6, PriceModifier: strPtr("ten percent")}},
	}
	for _, c := range cases {
		if _, err := svc.Create(c.in); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", c.name, err)
		}
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestCreateDepartureDerivesStatus(t *testing.T) {
	svc, mock, closeDB := departureServiceForTest(t)
	defer closeDB()

	mock.ExpectExec("INSERT INTO tour_departures").WillReturnResult(sqlmock.NewResult(9, 1))

	d, err := svc.Create(DepartureInput{
		TourID:         1,
		StartDate:      "2026-09-01",
		EndDate:        "2026-09-05",
		MaxSpots:       12,
		SpotsRemaining: 4,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if d.ID != 9 {
		t.Fatalf("id = %d, want 9", d.ID)
	}
	if d.Status != models.DepartureStatusFillingFast {
		t.Fatalf("status = %s, want %s", d.Status, models.DepartureStatusFillingFast)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func departureRows(status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tour_id", "start_date", "end_date",
		"max_spots", "spots_remaining", "status", "price_modifier", "is_guaranteed", "is_active",
	}).AddRow(7, 1, "2026-09-01", "2026-09-05", 12, 6, status, nil, false, true)
}

func TestUpdateDepartureKeepsStoredCancellation(t *testing.T) {
	svc, mock, closeDB := departureServiceForTest(t)
	defer closeDB()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM tour_departures WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(departureRows(models.DepartureStatusCancelled))
	mock.ExpectExec("UPDATE tour_departures SET").
		WithArgs("2026-09-01", "2026-09-05", 12, 5,
			models.DepartureStatusCancelled, nil, false, true, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	d, err := svc.Update(7, DepartureInput{
		TourID:         1,
		StartDate:      "2026-09-01",
		EndDate:        "2026-09-05",
		MaxSpots:       12,
		SpotsRemaining: 5,
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if d.Status != models.DepartureStatusCancelled {
		t.Fatalf("status = %s, want %s", d.Status, models.DepartureStatusCancelled)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateDepartureClearingCancellationRederives(t *testing.T) {
	svc, mock, closeDB := departureServiceForTest(t)
	defer closeDB()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM tour_departures WHERE id").
		WithArgs(int64(7)).
		WillReturnRows(departureRows(models.DepartureStatusCancelled))
	mock.ExpectExec("UPDATE tour_departures SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	d, err := svc.Update(7, DepartureInput{
		TourID:         1,
		StartDate:      "2026-09-01",
		EndDate:        "2026-09-05",
		MaxSpots:       12,
		SpotsRemaining: 4,
		Cancelled:      boolPtr(false),
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if d.Status != models.DepartureStatusFillingFast {
		t.Fatalf("status = %s, want %s", d.Status, models.DepartureStatusFillingFast)
	}
}

func TestCreateDepartureCancelledOverridesDerivation(t *testing.T) {
	svc, mock, closeDB := departureServiceForTest(t)
	defer closeDB()

	mock.ExpectExec("INSERT INTO tour_departures").WillReturnResult(sqlmock.NewResult(10, 1))

	d, err := svc.Create(DepartureInput{
		TourID:         1,
		StartDate:      "2026-09-01",
		EndDate:        "2026-09-05",
		MaxSpots:       12,
		SpotsRemaining: 12,
		Cancelled:      boolPtr(true),
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if d.Status != models.DepartureStatusCancelled {
		t.Fatalf("status = %s, want %s", d.Status, models.DepartureStatusCancelled)
	}
}
