package handlers

import (
	"net/http"

	"tourops/internal/config"
	"tourops/internal/http/middleware"
	"tourops/internal/repositories"
	"tourops/internal/services"

	"github.com/gin-gonic/gin"
)

func departureService(c *gin.Context) services.DepartureService {
	return services.DepartureService{
		Repo:      repositories.DepartureRepository{DB: config.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/tours/:tourId/departures
func GetTourDepartures(c *gin.Context) {
	tourID, ok := idParam(c, "tourId")
	if !ok {
		return
	}
	list, err := departureService(c).ListByTour(tourID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/departures/:id
func GetDepartureByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	dep, err := departureService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dep)
}

// POST /api/departures
func CreateDeparture(c *gin.Context) {
	var in services.DepartureInput
	if !BindJSONOrError(c, &in) {
		return
	}
	dep, err := departureService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dep)
}

// PUT /api/departures/:id
func UpdateDeparture(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in services.DepartureInput
	if !BindJSONOrError(c, &in) {
		return
	}
	dep, err := departureService(c).Update(id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dep)
}

// DELETE /api/departures/:id
func DeleteDeparture(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := departureService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
