// server/internal/models/parking.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Parking is one occupancy of a spot by a vehicle. A record is active while
// CheckOutTime is unset; the `active` field backs the partial unique indexes
// that keep at most one active record per spot and per vehicle.
type Parking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ParkingID    string             `bson:"parkingID" json:"parkingID"`
	VehicleID    string             `bson:"vehicleID" json:"vehicleID"`
	SpotID       string             `bson:"spotID" json:"spotID"`
	CheckInTime  time.Time          `bson:"checkInTime" json:"checkInTime"`
	CheckOutTime *time.Time         `bson:"checkOutTime,omitempty" json:"checkOutTime,omitempty"`
	Active       bool               `bson:"active" json:"active"`
	PricePerHour float64            `bson:"pricePerHour" json:"pricePerHour"`
	TotalCost    *float64           `bson:"totalCost,omitempty" json:"totalCost,omitempty"`
}
