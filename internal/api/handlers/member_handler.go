// server/internal/api/handlers/member_handler.go
package handlers

import (
	"net/http"

	"garage-api-server/internal/garage"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	Service *garage.Service
	Users   garage.UserStore
}

func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.Users.FindMembers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) GetByID(c *gin.Context) {
	member, err := h.Users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// Delete removes a member together with their vehicles and those vehicles'
// parking history.
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.Service.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Member and owned vehicles deleted"})
}
