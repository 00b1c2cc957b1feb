package services

import (
	"fmt"
	"strings"

	"tourops/internal/domain"
	"tourops/internal/domain/models"
	"tourops/internal/repositories"
	"tourops/internal/utils"
)

// SubmissionService handles the public contact, inquiry, and review flows.
// Every flow runs through the duplicate guard before inserting.
type SubmissionService struct {
	Repo      repositories.SubmissionRepository
	Dedupe    DedupeService
	RequestID string
}

func (s SubmissionService) SubmitContact(name, email, message string) (models.ContactMessage, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return models.ContactMessage{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ContactMessage{}, domain.ValidationError{Field: "message", Msg: "message is required"}
	}

	dup, err := s.Dedupe.IsDuplicateContact(email)
	if err != nil {
		return models.ContactMessage{}, domain.InternalError{Err: err}
	}
	if dup {
		return models.ContactMessage{}, domain.ValidationError{
			Msg: "a recent message from this email is already waiting; please wait a few minutes before retrying",
		}
	}

	m := models.ContactMessage{
		Name:    utils.NormalizeSpace(name),
		Email:   email,
		Message: message,
		Status:  models.ContactStatusNew,
	}
	if err := s.Repo.InsertContact(&m); err != nil {
		return models.ContactMessage{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "contact", "created", fmt.Sprintf("contact #%d from %s", m.ID, email))
	return m, nil
}

func (s SubmissionService) SubmitInquiry(email string, tourID *int64, question string) (models.TourInquiry, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return models.TourInquiry{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return models.TourInquiry{}, domain.ValidationError{Field: "question", Msg: "question is required"}
	}

	dup, err := s.Dedupe.IsDuplicateInquiry(email, tourID)
	if err != nil {
		return models.TourInquiry{}, domain.InternalError{Err: err}
	}
	if dup {
		return models.TourInquiry{}, domain.ValidationError{
			Msg: "a recent inquiry from this email is already waiting; please wait a few minutes before retrying",
		}
	}

	m := models.TourInquiry{
		Email:    email,
		TourID:   tourID,
		Question: question,
		Status:   models.InquiryStatusNew,
	}
	if err := s.Repo.InsertInquiry(&m); err != nil {
		return models.TourInquiry{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "inquiry", "created", fmt.Sprintf("inquiry #%d from %s", m.ID, email))
	return m, nil
}

func (s SubmissionService) SubmitReview(tourID int64, email string, rating int, text string) (models.Review, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return models.Review{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	if tourID <= 0 {
		return models.Review{}, domain.ValidationError{Field: "tourId", Msg: "tour id is required"}
	}
	if rating < 1 || rating > 5 {
		return models.Review{}, domain.ValidationError{Field: "rating", Msg: "rating must be between 1 and 5"}
	}

	dup, err := s.Dedupe.IsDuplicateReview(tourID, email)
	if err != nil {
		return models.Review{}, domain.InternalError{Err: err}
	}
	if dup {
		return models.Review{}, domain.ValidationError{
			Msg: "this email already reviewed the tour recently; please wait before submitting another",
		}
	}

	m := models.Review{
		TourID: tourID,
		Email:  email,
		Rating: rating,
		Text:   strings.TrimSpace(text),
		Status: models.ReviewStatusPending,
	}
	if err := s.Repo.InsertReview(&m); err != nil {
		return models.Review{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "review", "created", fmt.Sprintf("review #%d for tour %d", m.ID, tourID))
	return m, nil
}

func (s SubmissionService) ListContacts() ([]models.ContactMessage, error) {
	list, err := s.Repo.ListContacts()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (s SubmissionService) ListInquiries() ([]models.TourInquiry, error) {
	list, err := s.Repo.ListInquiries()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (s SubmissionService) ListReviews() ([]models.Review, error) {
	list, err := s.Repo.ListReviews()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return list, nil
}

func (s SubmissionService) UpdateContactStatus(id int64, status string) error {
	switch status {
	case models.ContactStatusNew, models.ContactStatusClosed:
	default:
		return domain.ValidationError{Field: "status", Msg: fmt.Sprintf("unknown contact status %q", status)}
	}
	affected, err := s.Repo.UpdateContactStatus(id, status)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "contact message"}
	}
	return nil
}

func (s SubmissionService) UpdateInquiryStatus(id int64, status string) error {
	switch status {
	case models.InquiryStatusNew, models.InquiryStatusClosed, models.InquiryStatusConverted:
	default:
		return domain.ValidationError{Field: "status", Msg: fmt.Sprintf("unknown inquiry status %q", status)}
	}
	affected, err := s.Repo.UpdateInquiryStatus(id, status)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "inquiry"}
	}
	return nil
}

func (s SubmissionService) UpdateReviewStatus(id int64, status string) error {
	switch status {
	case models.ReviewStatusPending, models.ReviewStatusPublished, models.ReviewStatusSpam:
	default:
		return domain.ValidationError{Field: "status", Msg: fmt.Sprintf("unknown review status %q", status)}
	}
	affected, err := s.Repo.UpdateReviewStatus(id, status)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "review"}
	}
	return nil
}
