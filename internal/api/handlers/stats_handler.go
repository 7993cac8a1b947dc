// server/internal/api/handlers/stats_handler.go
package handlers

import (
	"net/http"

	"garage-api-server/internal/garage"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Service *garage.Service
}

// Get returns the fleet-wide availability summary, recomputed from the current
// spots and active parkings.
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
