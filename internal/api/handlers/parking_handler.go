// server/internal/api/handlers/parking_handler.go
package handlers

import (
	"net/http"
	"time"

	"garage-api-server/config"
	"garage-api-server/internal/garage"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	Service *garage.Service
	Cfg     config.Config
}

type CheckInRequest struct {
	VehicleID string `json:"vehicleID" binding:"required"`
	SpotID    string `json:"spotID" binding:"required"`
}

// CheckIn parks a vehicle on a spot. Rejections come back as the precise
// conflict: unknown ids, occupied spot, reserved spot, vehicle already parked,
// size mismatch, or an ineligible owner.
func (h *ParkingHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parking, err := h.Service.CheckIn(c.Request.Context(), principalFrom(c), garage.CheckInInput{
		VehicleID:    req.VehicleID,
		SpotID:       req.SpotID,
		PricePerHour: h.Cfg.Garage.PricePerHour,
	}, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, parking)
}

type CheckOutRequest struct {
	VehicleID string `json:"vehicleID"`
	SpotID    string `json:"spotID"`
}

// CheckOut closes the active parking identified by vehicle or by spot and
// returns the closed record with its total cost.
func (h *ParkingHandler) CheckOut(c *gin.Context) {
	var req CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.VehicleID == "" && req.SpotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vehicleID or spotID is required"})
		return
	}

	parking, err := h.Service.CheckOut(c.Request.Context(), principalFrom(c), garage.CheckOutInput{
		VehicleID: req.VehicleID,
		SpotID:    req.SpotID,
	}, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parking)
}

// My lists the authenticated member's active parkings.
func (h *ParkingHandler) My(c *gin.Context) {
	views, err := h.Service.MemberParkings(c.Request.Context(), principalFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// Overview is the admin view of everything currently parked.
// Filters: ?typeName=car, ?registrationNumber=ABC.
func (h *ParkingHandler) Overview(c *gin.Context) {
	views, err := h.Service.ActiveParkings(c.Request.Context(), garage.OverviewFilter{
		TypeName:           c.Query("typeName"),
		RegistrationNumber: c.Query("registrationNumber"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
