// server/internal/garage/compatibility.go
package garage

import "garage-api-server/internal/models"

// IsCompatible reports whether a vehicle type of the given size may occupy a
// spot of the given size. Sizes are unique across vehicle types, so each spot
// size admits exactly one type: the rule is an exact match.
func IsCompatible(spotSize, vehicleTypeSize int) bool {
	return spotSize == vehicleTypeSize
}

// AllowedType returns the single vehicle type whose size matches the spot, or
// nil when no current type has that size (the spot then fits no vehicle).
func AllowedType(spotSize int, types []models.VehicleType) *models.VehicleType {
	for i := range types {
		if types[i].Size == spotSize {
			return &types[i]
		}
	}
	return nil
}
