package handlers

import (
	"net/http"

	"tourops/internal/config"
	"tourops/internal/http/middleware"
	"tourops/internal/repositories"
	"tourops/internal/services"

	"github.com/gin-gonic/gin"
)

func assignmentService(c *gin.Context) services.AssignmentService {
	return services.AssignmentService{
		Assignments: repositories.AssignmentRepository{DB: config.DB},
		Bookings:    repositories.BookingRepository{DB: config.DB},
		Staff:       repositories.StaffRepository{DB: config.DB},
		Guests:      repositories.GuestRepository{DB: config.DB},
		RequestID:   middleware.GetRequestID(c),
	}
}

type guideAssignPayload struct {
	GuideID int64  `json:"guideId" binding:"required"`
	Role    string `json:"role"`
}

// POST /api/bookings/:id/guides
func AssignBookingGuide(c *gin.Context) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p guideAssignPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := assignmentService(c).AssignGuide(bookingID, p.GuideID, p.Role); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingId": bookingID, "guideId": p.GuideID})
}

// DELETE /api/bookings/:id/guides/:guideId
func RemoveBookingGuide(c *gin.Context) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}
	guideID, ok := idParam(c, "guideId")
	if !ok {
		return
	}
	if err := assignmentService(c).RemoveGuide(bookingID, guideID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": guideID})
}

type driverAssignPayload struct {
	DriverID  int64  `json:"driverId" binding:"required"`
	VehicleID *int64 `json:"vehicleId"`
}

// POST /api/bookings/:id/drivers
func AssignBookingDriver(c *gin.Context) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var p driverAssignPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := assignmentService(c).AssignDriver(bookingID, p.DriverID, p.VehicleID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookingId": bookingID, "driverId": p.DriverID})
}

// DELETE /api/bookings/:id/drivers/:driverId
func RemoveBookingDriver(c *gin.Context) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}
	driverID, ok := idParam(c, "driverId")
	if !ok {
		return
	}
	if err := assignmentService(c).RemoveDriver(bookingID, driverID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": driverID})
}

// GET /api/bookings/:id/staff
func GetBookingStaff(c *gin.Context) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := assignmentService(c).GetBookingWithStaff(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
