package handlers

import (
	"net/http"

	"tourops/internal/config"
	"tourops/internal/http/middleware"
	"tourops/internal/repositories"
	"tourops/internal/services"

	"github.com/gin-gonic/gin"
)

func guestService(c *gin.Context) services.GuestService {
	return services.GuestService{
		Repo:      repositories.GuestRepository{DB: config.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

type guestPayload struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Country           string `json:"country"`
	PreferredLanguage string `json:"preferredLanguage"`
}

// GET /api/guests
func GetGuests(c *gin.Context) {
	guests, err := guestService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GET /api/guests/:id
func GetGuestByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	g, err := guestService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// POST /api/guests
func CreateGuest(c *gin.Context) {
	var p guestPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	g, err := guestService(c).Create(p.Email, p.Name, p.Phone, p.Country, p.PreferredLanguage)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

type guestUpdatePayload struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Country           *string `json:"country"`
	PreferredLanguage *string `json:"preferredLanguage"`
}

// PUT /api/guests/:id
func UpdateGuest(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p guestUpdatePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	g, err := guestService(c).UpdateProfile(id, p.Name, p.Phone, p.Country, p.PreferredLanguage)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// DELETE /api/guests/:id
func DeleteGuest(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := guestService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
