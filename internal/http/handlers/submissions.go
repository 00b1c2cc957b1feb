package handlers

import (
	"net/http"

	"tourops/internal/config"
	"tourops/internal/http/middleware"
	"tourops/internal/repositories"
	"tourops/internal/services"

	"github.com/gin-gonic/gin"
)

func submissionService(c *gin.Context) services.SubmissionService {
	requestID := middleware.GetRequestID(c)
	repo := repositories.SubmissionRepository{DB: config.DB}
	return services.SubmissionService{
		Repo: repo,
		Dedupe: services.DedupeService{
			BookingRepo:    repositories.BookingRepository{DB: config.DB},
			SubmissionRepo: repo,
			RequestID:      requestID,
		},
		RequestID: requestID,
	}
}

type contactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// POST /api/contact
func SubmitContact(c *gin.Context) {
	var p contactPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	m, err := submissionService(c).SubmitContact(p.Name, p.Email, p.Message)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

type inquiryPayload struct {
	Email    string `json:"email" binding:"required"`
	TourID   *int64 `json:"tourId"`
	Question string `json:"question" binding:"required"`
}

// POST /api/inquiries
func SubmitInquiry(c *gin.Context) {
	var p inquiryPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	m, err := submissionService(c).SubmitInquiry(p.Email, p.TourID, p.Question)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

type reviewPayload struct {
	TourID int64  `json:"tourId" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Rating int    `json:"rating" binding:"required"`
	Text   string `json:"text"`
}

// POST /api/reviews
func SubmitReview(c *gin.Context) {
	var p reviewPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	m, err := submissionService(c).SubmitReview(p.TourID, p.Email, p.Rating, p.Text)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GET /api/contact-messages
func GetContactMessages(c *gin.Context) {
	list, err := submissionService(c).ListContacts()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/inquiries
func GetInquiries(c *gin.Context) {
	list, err := submissionService(c).ListInquiries()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/reviews
func GetReviews(c *gin.Context) {
	list, err := submissionService(c).ListReviews()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type submissionStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/contact-messages/:id/status
func UpdateContactMessageStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p submissionStatusPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := submissionService(c).UpdateContactStatus(id, p.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": p.Status})
}

// PUT /api/inquiries/:id/status
func UpdateInquiryStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p submissionStatusPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := submissionService(c).UpdateInquiryStatus(id, p.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": p.Status})
}

// PUT /api/reviews/:id/status
func UpdateReviewStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p submissionStatusPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := submissionService(c).UpdateReviewStatus(id, p.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": p.Status})
}
