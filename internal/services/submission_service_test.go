package services

import (
	"testing"

	"tourops/internal/domain"
	"tourops/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func submissionServiceForTest(t *testing.T) (SubmissionService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	mock.MatchExpectationsInOrder(false)

	repo := repositories.SubmissionRepository{DB: db}
	svc := SubmissionService{
		Repo: repo,
		Dedupe: DedupeService{
			BookingRepo:    repositories.BookingRepository{DB: db},
			SubmissionRepo: repo,
		},
	}
	return svc, mock, func() { db.Close() }
}

func TestSubmitContactRejectsDuplicateWindow(t *testing.T) {
	svc, mock, closeDB := submissionServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contact_messages").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	_, err := svc.SubmitContact("Ivan", "ivan@example.com", "hello")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitReviewRejectsDuplicateWindow(t *testing.T) {
	svc, mock, closeDB := submissionServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reviews").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	_, err := svc.SubmitReview(1, "ivan@example.com", 5, "great")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitInquiryRejectsDuplicateWindow(t *testing.T) {
	svc, mock, closeDB := submissionServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM tour_inquiries").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	_, err := svc.SubmitInquiry("ivan@example.com", nil, "any free spots?")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmitContactInsertsAsNew(t *testing.T) {
	svc, mock, closeDB := submissionServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contact_messages").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("INSERT INTO contact_messages").WillReturnResult(sqlmock.NewResult(5, 1))

	m, err := svc.SubmitContact("  Ivan   Petrov ", " Ivan@Example.com ", "hello")
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if m.ID != 5 {
		t.Fatalf("id = %d, want 5", m.ID)
	}
	if m.Email != "ivan@example.com" {
		t.Fatalf("email = %q, want normalized", m.Email)
	}
	if m.Name != "Ivan Petrov" {
		t.Fatalf("name = %q, want collapsed whitespace", m.Name)
	}
	if m.Status != "new" {
		t.Fatalf("status = %s, want new", m.Status)
	}
}

func TestSubmitReviewRejectsBadRating(t *testing.T) {
	svc, _, closeDB := submissionServiceForTest(t)
	defer closeDB()

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.SubmitReview(1, "ivan@example.com", rating, "great")
		if !domain.IsValidation(err) {
			t.Fatalf("rating %d: expected validation error, got %v", rating, err)
		}
	}
}

func TestSubmitReviewHeldForModeration(t *testing.T) {
	svc, mock, closeDB := submissionServiceForTest(t)
	defer closeDB()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reviews").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("INSERT INTO reviews").WillReturnResult(sqlmock.NewResult(8, 1))

	m, err := svc.SubmitReview(1, "ivan@example.com", 5, "great trip")
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if m.Status != "pending" {
		t.Fatalf("status = %s, want pending", m.Status)
	}
}

func TestUpdateReviewStatusRejectsUnknownValue(t *testing.T) {
	svc, _, closeDB := submissionServiceForTest(t)
	defer closeDB()

	if err := svc.UpdateReviewStatus(1, "archived"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateContactStatusMissingRecord(t *testing.T) {
	svc, mock, closeDB := submissionServiceForTest(t)
	defer closeDB()

	mock.ExpectExec("UPDATE contact_messages").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := svc.UpdateContactStatus(404, "closed"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
