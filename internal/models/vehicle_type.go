// server/internal/models/vehicle_type.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleType is a size class of vehicle. Sizes are unique across types, so each
// spot size maps to exactly one allowed type.
type VehicleType struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TypeID string             `bson:"typeID" json:"typeID"`
	Name   string             `bson:"name" json:"name"`
	Size   int                `bson:"size" json:"size"`
}
