// server/internal/garage/mongostore/mongostore.go

// Package mongostore implements the garage store interfaces on MongoDB. The
// occupancy exclusivity lives here: partial unique indexes on the parkings
// collection reject a second active record per spot or vehicle, and the
// duplicate-key error is translated back into the matching sentinel.
package mongostore

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names.
const (
	UsersCollection        = "users"
	VehicleTypesCollection = "vehicletypes"
	VehiclesCollection     = "vehicles"
	SpotsCollection        = "parkingspots"
	ParkingsCollection     = "parkings"
)

// Names of the partial unique indexes on the parkings collection. The database
// package creates them; parkingStore.Create matches duplicate-key errors
// against them.
const (
	ActiveSpotIndex    = "uniq_active_spot"
	ActiveVehicleIndex = "uniq_active_vehicle"
)

// Stores bundles the five store implementations over one database handle.
type Stores struct {
	Users        *UserStore
	VehicleTypes *VehicleTypeStore
	Vehicles     *VehicleStore
	Spots        *SpotStore
	Parkings     *ParkingStore
}

func New(db *mongo.Database) *Stores {
	return &Stores{
		Users:        &UserStore{coll: db.Collection(UsersCollection)},
		VehicleTypes: &VehicleTypeStore{coll: db.Collection(VehicleTypesCollection)},
		Vehicles:     &VehicleStore{coll: db.Collection(VehiclesCollection)},
		Spots:        &SpotStore{coll: db.Collection(SpotsCollection)},
		Parkings:     &ParkingStore{coll: db.Collection(ParkingsCollection)},
	}
}
