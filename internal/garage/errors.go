// server/internal/garage/errors.go
package garage

import "errors"

// Not-found failures.
var (
	ErrSpotNotFound        = errors.New("parking spot not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrVehicleTypeNotFound = errors.New("vehicle type not found")
	ErrUserNotFound        = errors.New("user not found")
)

// Conflict failures. The occupancy conflicts (ErrSpotOccupied,
// ErrVehicleAlreadyParked) are also what a ParkingStore must return when its
// uniqueness constraint rejects a concurrent insert.
var (
	ErrSpotOccupied          = errors.New("parking spot is already occupied")
	ErrVehicleAlreadyParked  = errors.New("vehicle already has an active parking")
	ErrSpotAdminReserved     = errors.New("parking spot is reserved by admin")
	ErrAlreadyReserved       = errors.New("parking spot is already reserved")
	ErrNotReserved           = errors.New("parking spot is not reserved")
	ErrNoActiveParking       = errors.New("no active parking found")
	ErrVehicleTypeInUse      = errors.New("vehicle type is referenced by vehicles")
	ErrDuplicateSpotNumber   = errors.New("a parking spot with this number already exists")
	ErrDuplicateTypeName     = errors.New("a vehicle type with this name already exists")
	ErrDuplicateTypeSize     = errors.New("a vehicle type with this size already exists")
	ErrDuplicateRegistration = errors.New("a vehicle with this registration number already exists")
)

// Policy failures.
var (
	ErrIncompatibleVehicleType = errors.New("vehicle type does not match the spot size")
	ErrUnderAge                = errors.New("owner must be 18 or older")
)

// Authorization and validation failures.
var (
	ErrNotOwner                  = errors.New("not the owner of this vehicle")
	ErrInvalidPersonalNumber     = errors.New("invalid personal number format")
	ErrInvalidRegistrationNumber = errors.New("invalid registration number")
)
