package services

import (
	"fmt"
	"time"

	"tourops/internal/repositories"
	"tourops/internal/utils"
)

// Duplicate-submission windows per flow.
const (
	BookingDedupeWindow = 5 * time.Minute
	ContactDedupeWindow = 5 * time.Minute
	InquiryDedupeWindow = 5 * time.Minute
	ReviewDedupeWindow  = 24 * time.Hour
)

// DedupeService is the time-windowed duplicate-submission guard. It is a
// read-then-decide check with no transactional isolation: two requests racing
// inside the same window can both pass. That is accepted; the guard exists to
// stop client retries and casual double-submits, not to be an idempotency key.
type DedupeService struct {
	BookingRepo    repositories.BookingRepository
	SubmissionRepo repositories.SubmissionRepository
	RequestID      string
	Now            func() time.Time
}

func (s DedupeService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// IsDuplicateBooking matches on tour + normalized email + same travel day,
// skipping cancelled bookings.
func (s DedupeService) IsDuplicateBooking(tourID int64, email, travelDate string) (bool, error) {
	since := s.now().Add(-BookingDedupeWindow)
	n, err := s.BookingRepo.CountRecentSameDay(tourID, utils.NormalizeEmail(email), travelDate, since)
	if err != nil {
		return false, err
	}
	if n > 0 {
		utils.LogWarn(s.RequestID, "dedupe", "booking_rejected",
			fmt.Sprintf("tour_id=%d email=%s travel_date=%s", tourID, utils.NormalizeEmail(email), travelDate))
		return true, nil
	}
	return false, nil
}

// IsDuplicateContact matches on normalized email, skipping closed threads.
func (s DedupeService) IsDuplicateContact(email string) (bool, error) {
	since := s.now().Add(-ContactDedupeWindow)
	n, err := s.SubmissionRepo.CountRecentContacts(utils.NormalizeEmail(email), since)
	if err != nil {
		return false, err
	}
	if n > 0 {
		utils.LogWarn(s.RequestID, "dedupe", "contact_rejected", "email="+utils.NormalizeEmail(email))
		return true, nil
	}
	return false, nil
}

// IsDuplicateInquiry matches on normalized email plus the tour when present,
// skipping closed and converted inquiries.
func (s DedupeService) IsDuplicateInquiry(email string, tourID *int64) (bool, error) {
	since := s.now().Add(-InquiryDedupeWindow)
	n, err := s.SubmissionRepo.CountRecentInquiries(utils.NormalizeEmail(email), tourID, since)
	if err != nil {
		return false, err
	}
	if n > 0 {
		utils.LogWarn(s.RequestID, "dedupe", "inquiry_rejected", "email="+utils.NormalizeEmail(email))
		return true, nil
	}
	return false, nil
}

// IsDuplicateReview matches on tour + normalized email over a 24h window,
// skipping spam-flagged reviews.
func (s DedupeService) IsDuplicateReview(tourID int64, email string) (bool, error) {
	since := s.now().Add(-ReviewDedupeWindow)
	n, err := s.SubmissionRepo.CountRecentReviews(tourID, utils.NormalizeEmail(email), since)
	if err != nil {
		return false, err
	}
	if n > 0 {
		utils.LogWarn(s.RequestID, "dedupe", "review_rejected",
			fmt.Sprintf("tour_id=%d email=%s", tourID, utils.NormalizeEmail(email)))
		return true, nil
	}
	return false, nil
}
