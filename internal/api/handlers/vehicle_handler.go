// server/internal/api/handlers/vehicle_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"garage-api-server/internal/garage"
	"garage-api-server/internal/models"
	"garage-api-server/internal/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	Service    *garage.Service
	Vehicles   garage.VehicleStore
	S3Uploader *s3.Uploader
}

type VehicleRequest struct {
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
	TypeID             string `json:"typeID" binding:"required"`
	Color              string `json:"color"`
	Manufacturer       string `json:"manufacturer"`
	Model              string `json:"model"`
}

// Register creates a vehicle owned by the authenticated member. The owner must
// be of age and the registration number unique after normalization.
func (h *VehicleHandler) Register(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.Service.RegisterVehicle(c.Request.Context(), principalFrom(c), garage.VehicleInput{
		RegistrationNumber: req.RegistrationNumber,
		TypeID:             req.TypeID,
		Color:              req.Color,
		Manufacturer:       req.Manufacturer,
		Model:              req.Model,
	}, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// List returns the authenticated member's vehicles.
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.Vehicles.FindByOwner(c.Request.Context(), principalFrom(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) GetByID(c *gin.Context) {
	vehicle, err := h.Vehicles.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	principal := principalFrom(c)
	if !principal.IsAdmin() && vehicle.OwnerID != principal.UserID {
		respondError(c, garage.ErrNotOwner)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.Service.UpdateVehicle(c.Request.Context(), principalFrom(c), c.Param("id"), garage.VehicleInput{
		RegistrationNumber: req.RegistrationNumber,
		TypeID:             req.TypeID,
		Color:              req.Color,
		Manufacturer:       req.Manufacturer,
		Model:              req.Model,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// Delete removes a vehicle and its parking history. Blocked while the vehicle
// is parked.
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.Service.DeleteVehicle(c.Request.Context(), principalFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Vehicle deleted"})
}

// UploadDocument stores a registration document on S3 and attaches its URL to
// the vehicle.
func (h *VehicleHandler) UploadDocument(c *gin.Context) {
	vehicle, err := h.Vehicles.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	principal := principalFrom(c)
	if !principal.IsAdmin() && vehicle.OwnerID != principal.UserID {
		respondError(c, garage.ErrNotOwner)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	docID := uuid.New().String()[:8]
	objectKey := fmt.Sprintf("vehicles/%s/documents/%s%s", vehicle.VehicleID, docID, filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.S3Uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document"})
		return
	}

	vehicle.Documents = append(vehicle.Documents, models.MediaPointer{
		ID:       docID,
		URL:      url,
		FileName: fileHeader.Filename,
		FileType: contentType,
	})
	if err := h.Vehicles.Update(c.Request.Context(), vehicle); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}
