package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// ===============================
// Registration
// ===============================

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required" example:"Ram"`
	LastName  string `json:"last_name" example:"Kumar"`
	Mobile    string `json:"mobile" binding:"required" example:"+91-98765 43210"`
	Gender    string `json:"gender" example:"M"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, user, err := h.service.Register(c.Request.Context(), RegisterInput(req), c.ClientIP())
	if err != nil {
		if errors.Is(err, ErrAlreadyRegistered) {
			// direct the caller to the login page, nothing was created
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "redirect": "/login"})
			return
		}
		switch {
		case errors.Is(err, ErrInvalidFirstName),
			errors.Is(err, ErrInvalidLastName),
			errors.Is(err, ErrMobileRequired),
			errors.Is(err, ErrInvalidMobile),
			errors.Is(err, ErrInvalidMobilePrefix):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Registration successful. You are logged in.",
		"accessToken": session.AccessToken,
		"redirect":    "/matches",
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
	})
}

// ===============================
// Login
// ===============================

type loginReq struct {
	Mobile   string `json:"mobile" binding:"required" example:"9876543210"`
	Password string `json:"password" binding:"required" example:"0123456789"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, user, err := h.service.Login(c.Request.Context(), LoginInput(req), c.ClientIP())
	if err != nil {
		// inline error, the client keeps its form state
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": session.AccessToken,
		"redirect":    "/matches",
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
	})
}

// ===============================
// Logout
// ===============================

func (h *Handler) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if err := h.service.Logout(sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully", "redirect": "/"})
}
