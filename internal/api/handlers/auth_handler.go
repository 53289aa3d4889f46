package handlers

import (
	"net/http"

	"github.com/Marga-Ghale/projectflow/internal/api/middleware"
	"github.com/Marga-Ghale/projectflow/internal/models"
	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Auth Handler
// ============================================

type AuthHandler struct {
	authService service.AuthService
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{User: user, Token: token})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{User: user, Token: token})
}

// Status reports the auth state machine without requiring a token.
func (h *AuthHandler) Status(c *gin.Context) {
	state, err := h.authService.State(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to read session")
		return
	}
	user, err := h.authService.CurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to read session")
		return
	}

	c.JSON(http.StatusOK, models.AuthStatusResponse{State: state, User: user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to sign out")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}
