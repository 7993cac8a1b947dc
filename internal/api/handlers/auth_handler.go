// server/internal/api/handlers/auth_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"garage-api-server/internal/auth"
	"garage-api-server/internal/garage"
	"garage-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Users garage.UserStore
}

type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	PersonalNumber string `json:"personalNumber" binding:"required"`
	MembershipType string `json:"membershipType"`
}

// Register creates a member account. The personal number must encode a valid
// birth date; the age itself is checked later, when the member registers or
// parks a vehicle.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := garage.BirthDateFromPersonalNumber(req.PersonalNumber); err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.Users.FindByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A user with this email already exists"})
		return
	} else if !errors.Is(err, garage.ErrUserNotFound) {
		respondError(c, err)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	membershipType := req.MembershipType
	if membershipType == "" {
		membershipType = "Standard"
	}

	user := &models.User{
		UserID:         fmt.Sprintf("USR-%s", uuid.New().String()[:8]),
		Email:          req.Email,
		Password:       hashedPassword,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PersonalNumber: req.PersonalNumber,
		Role:           models.RoleMember,
		MembershipType: membershipType,
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.Users.Create(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if !auth.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateJWT(user.UserID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
