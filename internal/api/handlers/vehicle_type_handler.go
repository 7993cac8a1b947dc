// server/internal/api/handlers/vehicle_type_handler.go
package handlers

import (
	"net/http"

	"garage-api-server/internal/garage"

	"github.com/gin-gonic/gin"
)

type VehicleTypeHandler struct {
	Service *garage.Service
	Types   garage.VehicleTypeStore
}

func (h *VehicleTypeHandler) List(c *gin.Context) {
	types, err := h.Types.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *VehicleTypeHandler) GetByID(c *gin.Context) {
	vt, err := h.Types.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vt)
}

type VehicleTypeRequest struct {
	Name string `json:"name" binding:"required"`
	Size int    `json:"size" binding:"required,min=1,max=10"`
}

func (h *VehicleTypeHandler) Create(c *gin.Context) {
	var req VehicleTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vt, err := h.Service.CreateVehicleType(c.Request.Context(), garage.VehicleTypeInput{
		Name: req.Name,
		Size: req.Size,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vt)
}

func (h *VehicleTypeHandler) Update(c *gin.Context) {
	var req VehicleTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vt, err := h.Service.UpdateVehicleType(c.Request.Context(), c.Param("id"), garage.VehicleTypeInput{
		Name: req.Name,
		Size: req.Size,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vt)
}

func (h *VehicleTypeHandler) Delete(c *gin.Context) {
	if err := h.Service.DeleteVehicleType(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Vehicle type deleted"})
}
