// server/internal/models/parking_spot.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ParkingSpot struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SpotID          string             `bson:"spotID" json:"spotID"`
	SpotNumber      int                `bson:"spotNumber" json:"spotNumber"`
	Size            int                `bson:"size" json:"size"`
	IsAdminReserved bool               `bson:"isAdminReserved" json:"isAdminReserved"`
	ReservedReason  string             `bson:"reservedReason,omitempty" json:"reservedReason,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
