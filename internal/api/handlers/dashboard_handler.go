package handlers

import (
	"net/http"

	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboardService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) Analytics(c *gin.Context) {
	analytics, err := h.dashboardService.Analytics(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build analytics")
		return
	}
	c.JSON(http.StatusOK, analytics)
}
