package handlers

import (
	"net/http"

	"tourops/internal/config"
	"tourops/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

var coreTables = []string{"tours", "tour_departures", "bookings", "guests", "guides", "drivers", "vehicles"}

// GET /api/db-check
func DBCheck(c *gin.Context) {
	if err := config.EnsureDB(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	missing := []string{}
	for _, t := range coreTables {
		if !utils.HasTable(config.DB, t) {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusOK, gin.H{"status": "degraded", "missing_tables": missing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
