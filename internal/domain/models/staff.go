package models

// Guide is a tour guide in the staff directory.
type Guide struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Languages string `json:"languages,omitempty"` // comma separated codes
	IsActive  bool   `json:"isActive"`
}

// Driver is a driver in the staff directory.
type Driver struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	License  string `json:"license,omitempty"`
	IsActive bool   `json:"isActive"`
}

// Vehicle belongs to exactly one driver at a time; plate_number is unique.
type Vehicle struct {
	ID          int64  `json:"id"`
	DriverID    int64  `json:"driverId"`
	PlateNumber string `json:"plateNumber"`
	Model       string `json:"model,omitempty"`
	Seats       int    `json:"seats,omitempty"`
}

// BookingGuide links one guide to one booking; the pair is unique and the
// role may be overwritten by re-assignment.
type BookingGuide struct {
	BookingID int64  `json:"bookingId"`
	GuideID   int64  `json:"guideId"`
	GuideName string `json:"guideName,omitempty"`
	Role      string `json:"role,omitempty"`
}

// BookingDriver links one driver (optionally with a vehicle) to one booking.
// A referenced vehicle must currently belong to the same driver.
type BookingDriver struct {
	BookingID  int64    `json:"bookingId"`
	DriverID   int64    `json:"driverId"`
	DriverName string   `json:"driverName,omitempty"`
	VehicleID  *int64   `json:"vehicleId,omitempty"`
	Vehicle    *Vehicle `json:"vehicle,omitempty"`
}

// BookingWithStaff is the read-only aggregate for the staffing view.
type BookingWithStaff struct {
	Booking Booking         `json:"booking"`
	Guest   *Guest          `json:"guest,omitempty"`
	Guides  []BookingGuide  `json:"guides"`
	Drivers []BookingDriver `json:"drivers"`
}
