// server/internal/models/vehicle.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Vehicle struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	VehicleID          string             `bson:"vehicleID" json:"vehicleID"`
	RegistrationNumber string             `bson:"registrationNumber" json:"registrationNumber"` // normalized upper-case
	TypeID             string             `bson:"typeID" json:"typeID"`
	OwnerID            string             `bson:"ownerID" json:"ownerID"`
	Color              string             `bson:"color" json:"color"`
	Manufacturer       string             `bson:"manufacturer" json:"manufacturer"`
	Model              string             `bson:"model" json:"model"`
	Documents          []MediaPointer     `bson:"documents,omitempty" json:"documents,omitempty"` // registration papers on S3
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}
