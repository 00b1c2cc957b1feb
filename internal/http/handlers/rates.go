package handlers

import (
	"net/http"
	"strings"

	"tourops/internal/config"
	"tourops/internal/repositories"
	"tourops/internal/services"

	"github.com/gin-gonic/gin"
)

// Rate kinds select the backing table.
const (
	RateKindGuides    = "guides"
	RateKindDrivers   = "drivers"
	RateKindContracts = "contracts"
)

func rateService(kind string) services.RateService {
	switch kind {
	case RateKindDrivers:
		return services.RateService{Repo: repositories.DriverRates(config.DB)}
	case RateKindContracts:
		return services.RateService{Repo: repositories.ContractRates(config.DB)}
	default:
		return services.RateService{Repo: repositories.GuideRates(config.DB)}
	}
}

type ratePayload struct {
	ServiceType string `json:"serviceType" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Currency    string `json:"currency"`
}

// GET /api/{guides,drivers,contracts}/:id/rates
func GetRates(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := idParam(c, "id")
		if !ok {
			return
		}
		list, err := rateService(kind).List(ownerID)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// PUT /api/{guides,drivers,contracts}/:id/rates
func UpsertRate(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := idParam(c, "id")
		if !ok {
			return
		}
		var p ratePayload
		if !BindJSONOrError(c, &p) {
			return
		}
		rate, err := rateService(kind).Upsert(ownerID, p.ServiceType, p.Price, p.Currency)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, rate)
	}
}

// DELETE /api/{guides,drivers,contracts}/:id/rates/:serviceType
func DeleteRate(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := idParam(c, "id")
		if !ok {
			return
		}
		serviceType := strings.TrimSpace(c.Param("serviceType"))
		if serviceType == "" {
			respondError(c, http.StatusBadRequest, "bad_request", "serviceType is required")
			return
		}
		if err := rateService(kind).Delete(ownerID, serviceType); err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": serviceType})
	}
}
