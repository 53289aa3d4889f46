package handlers

import (
	"net/http"

	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

// List - GET /activities?limit=10, newest first
func (h *ActivityHandler) List(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 10)
	if !ok {
		return
	}

	activities, err := h.activityService.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "Failed to fetch activities")
		return
	}

	c.JSON(http.StatusOK, activities)
}
