package handlers

import (
	"net/http"

	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Settings Handler
// ============================================

type SettingsHandler struct {
	settingsService service.SettingsService
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update replaces the settings object. Fields missing from the body keep
// their current values.
func (h *SettingsHandler) Update(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch settings")
		return
	}

	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.settingsService.Update(c.Request.Context(), settings)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, saved)
}
