// server/internal/garage/status.go
package garage

import (
	"time"

	"garage-api-server/internal/models"
)

// SpotStatus is the derived state of a spot. The three states are mutually
// exclusive: an active parking always wins over the reservation flag, and the
// check-in/reserve paths keep the two from ever holding at once.
type SpotStatus string

const (
	StatusAvailable     SpotStatus = "available"
	StatusOccupied      SpotStatus = "occupied"
	StatusAdminReserved SpotStatus = "admin_reserved"
)

// StatusOf derives the status of a spot from its reservation flag and whether
// an active parking exists for it.
func StatusOf(spot models.ParkingSpot, hasActiveParking bool) SpotStatus {
	switch {
	case hasActiveParking:
		return StatusOccupied
	case spot.IsAdminReserved:
		return StatusAdminReserved
	default:
		return StatusAvailable
	}
}

// SpotView is a spot with its derived status and occupancy details, the shape
// the availability listing returns.
type SpotView struct {
	SpotID          string     `json:"spotID"`
	SpotNumber      int        `json:"spotNumber"`
	Size            int        `json:"size"`
	Status          SpotStatus `json:"status"`
	IsAdminReserved bool       `json:"isAdminReserved"`
	ReservedReason  string     `json:"reservedReason,omitempty"`
	// AllowedTypeName is the single vehicle type this spot fits, empty when no
	// current type matches the spot size.
	AllowedTypeName string `json:"allowedTypeName,omitempty"`

	RegistrationNumber string     `json:"registrationNumber,omitempty"`
	OccupantTypeName   string     `json:"occupantTypeName,omitempty"`
	OwnerID            string     `json:"ownerID,omitempty"`
	CheckInTime        *time.Time `json:"checkInTime,omitempty"`
}
