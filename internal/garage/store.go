// server/internal/garage/store.go
package garage

import (
	"context"
	"time"

	"garage-api-server/internal/models"
)

// Store interfaces consumed by the service. Implementations return the sentinel
// errors from errors.go; they never leak driver errors for the conditions the
// sentinels name.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindMembers(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, userID string) error
}

type VehicleTypeStore interface {
	Create(ctx context.Context, vt *models.VehicleType) error
	FindByID(ctx context.Context, typeID string) (*models.VehicleType, error)
	FindAll(ctx context.Context) ([]models.VehicleType, error)
	Update(ctx context.Context, vt *models.VehicleType) error
	Delete(ctx context.Context, typeID string) error
}

type VehicleStore interface {
	Create(ctx context.Context, v *models.Vehicle) error
	FindByID(ctx context.Context, vehicleID string) (*models.Vehicle, error)
	FindByRegistration(ctx context.Context, registrationNumber string) (*models.Vehicle, error)
	FindByOwner(ctx context.Context, ownerID string) ([]models.Vehicle, error)
	CountByType(ctx context.Context, typeID string) (int64, error)
	Update(ctx context.Context, v *models.Vehicle) error
	Delete(ctx context.Context, vehicleID string) error
	DeleteByOwner(ctx context.Context, ownerID string) ([]string, error)
}

type SpotStore interface {
	Create(ctx context.Context, spot *models.ParkingSpot) error
	FindByID(ctx context.Context, spotID string) (*models.ParkingSpot, error)
	FindByNumber(ctx context.Context, spotNumber int) (*models.ParkingSpot, error)
	FindAll(ctx context.Context) ([]models.ParkingSpot, error)
	Update(ctx context.Context, spot *models.ParkingSpot) error
	SetReservation(ctx context.Context, spotID string, reserved bool, reason string) error
	Delete(ctx context.Context, spotID string) error
}

type ParkingStore interface {
	// Create inserts an active record. The store enforces at most one active
	// record per spot and per vehicle; a violation comes back as ErrSpotOccupied
	// or ErrVehicleAlreadyParked even when two check-ins race.
	Create(ctx context.Context, p *models.Parking) error
	FindActiveBySpot(ctx context.Context, spotID string) (*models.Parking, error)
	FindActiveByVehicle(ctx context.Context, vehicleID string) (*models.Parking, error)
	FindActive(ctx context.Context) ([]models.Parking, error)
	Close(ctx context.Context, parkingID string, checkOut time.Time, totalCost float64) error
	DeleteByVehicles(ctx context.Context, vehicleIDs []string) error
}
