package handlers

import (
	"net/http"

	"github.com/Marga-Ghale/projectflow/internal/api/middleware"
	"github.com/Marga-Ghale/projectflow/internal/models"
	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// User Handler
// ============================================

type UserHandler struct {
	userService service.UserService
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	if _, ok := middleware.RequireUserID(c); !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), service.UpdateProfileInput{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Team lists registered users; ?search= filters by name or email
func (h *UserHandler) Team(c *gin.Context) {
	members, err := h.userService.Team(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err, "Failed to fetch team")
		return
	}
	c.JSON(http.StatusOK, members)
}
