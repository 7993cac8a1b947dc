// server/internal/api/handlers/spot_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"garage-api-server/internal/garage"

	"github.com/gin-gonic/gin"
)

type SpotHandler struct {
	Service *garage.Service
}

// Search lists spots with derived status. Filters: ?sizeClass=Small|Medium|Large,
// ?spotNumber=N, ?typeID=TYPE-xxx.
func (h *SpotHandler) Search(c *gin.Context) {
	filter := garage.SpotFilter{
		SizeClass: c.Query("sizeClass"),
		TypeID:    c.Query("typeID"),
	}
	if raw := c.Query("spotNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "spotNumber must be an integer"})
			return
		}
		filter.SpotNumber = n
	}

	views, err := h.Service.SearchSpots(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *SpotHandler) GetByID(c *gin.Context) {
	view, err := h.Service.SpotDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type SpotRequest struct {
	SpotNumber int `json:"spotNumber" binding:"required,min=1"`
	Size       int `json:"size" binding:"required,min=1,max=10"`
}

func (h *SpotHandler) Create(c *gin.Context) {
	var req SpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spot, err := h.Service.CreateSpot(c.Request.Context(), garage.SpotInput{
		SpotNumber: req.SpotNumber,
		Size:       req.Size,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, spot)
}

func (h *SpotHandler) Update(c *gin.Context) {
	var req SpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spot, err := h.Service.UpdateSpot(c.Request.Context(), c.Param("id"), garage.SpotInput{
		SpotNumber: req.SpotNumber,
		Size:       req.Size,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spot)
}

func (h *SpotHandler) Delete(c *gin.Context) {
	if err := h.Service.DeleteSpot(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Parking spot deleted"})
}

type ReserveRequest struct {
	Reason string `json:"reason"`
}

// Reserve books a spot for maintenance. Repeating the call on a reserved spot is
// rejected; the reservation must be cleared through Unreserve.
func (h *SpotHandler) Reserve(c *gin.Context) {
	var req ReserveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	spot, err := h.Service.Reserve(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spot)
}

func (h *SpotHandler) Unreserve(c *gin.Context) {
	spot, err := h.Service.Unreserve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spot)
}
