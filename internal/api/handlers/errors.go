// server/internal/api/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"garage-api-server/internal/garage"

	"github.com/gin-gonic/gin"
)

// respondError maps the core sentinels to HTTP status codes. Anything
// unrecognized is a 500 with a generic body so driver errors never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, garage.ErrSpotNotFound),
		errors.Is(err, garage.ErrVehicleNotFound),
		errors.Is(err, garage.ErrVehicleTypeNotFound),
		errors.Is(err, garage.ErrUserNotFound),
		errors.Is(err, garage.ErrNoActiveParking):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, garage.ErrSpotOccupied),
		errors.Is(err, garage.ErrVehicleAlreadyParked),
		errors.Is(err, garage.ErrSpotAdminReserved),
		errors.Is(err, garage.ErrAlreadyReserved),
		errors.Is(err, garage.ErrNotReserved),
		errors.Is(err, garage.ErrVehicleTypeInUse),
		errors.Is(err, garage.ErrDuplicateSpotNumber),
		errors.Is(err, garage.ErrDuplicateTypeName),
		errors.Is(err, garage.ErrDuplicateTypeSize),
		errors.Is(err, garage.ErrDuplicateRegistration):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, garage.ErrIncompatibleVehicleType),
		errors.Is(err, garage.ErrUnderAge),
		errors.Is(err, garage.ErrInvalidPersonalNumber),
		errors.Is(err, garage.ErrInvalidRegistrationNumber):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, garage.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// principalFrom reads the identity the Authenticate middleware stored.
func principalFrom(c *gin.Context) garage.Principal {
	return garage.Principal{
		UserID: c.GetString("user_id"),
		Role:   c.GetString("user_role"),
	}
}
