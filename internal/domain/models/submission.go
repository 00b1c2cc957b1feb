package models

import "time"

// Statuses for the lightweight public submission flows. The duplicate guard
// skips records in the excluded states so a closed thread or a spam-flagged
// review does not block a fresh submission.
const (
	ContactStatusNew    = "new"
	ContactStatusClosed = "closed"

	InquiryStatusNew       = "new"
	InquiryStatusClosed    = "closed"
	InquiryStatusConverted = "converted"

	ReviewStatusPending   = "pending"
	ReviewStatusPublished = "published"
	ReviewStatusSpam      = "spam"
)

// ContactMessage is a public contact-form submission.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// TourInquiry is a question about a specific tour (or the catalog at large).
type TourInquiry struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	TourID    *int64    `json:"tourId,omitempty"`
	Question  string    `json:"question"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review is a public tour review, held for moderation.
type Review struct {
	ID        int64     `json:"id"`
	TourID    int64     `json:"tourId"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
