package handlers

import (
	"net/http"

	"github.com/Marga-Ghale/projectflow/internal/models"
	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// UI State Handler
// ============================================

type UIStateHandler struct {
	uiState service.UIStateService
}

func (h *UIStateHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.uiState.Get())
}

func (h *UIStateHandler) Update(c *gin.Context) {
	var req models.UpdateUIStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.uiState.Update(service.UIStatePatch{
		ActiveTab:    req.ActiveTab,
		CalendarView: req.CalendarView,
		TasksView:    req.TasksView,
	})
	if err != nil {
		respondError(c, err, "Failed to update UI state")
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *UIStateHandler) OpenModal(c *gin.Context) {
	state, err := h.uiState.OpenModal(c.Param("name"))
	if err != nil {
		respondError(c, err, "Failed to open modal")
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *UIStateHandler) CloseModal(c *gin.Context) {
	state, err := h.uiState.CloseModal(c.Param("name"))
	if err != nil {
		respondError(c, err, "Failed to close modal")
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *UIStateHandler) PrevMonth(c *gin.Context) {
	c.JSON(http.StatusOK, h.uiState.NavigateMonth(-1))
}

func (h *UIStateHandler) NextMonth(c *gin.Context) {
	c.JSON(http.StatusOK, h.uiState.NavigateMonth(1))
}
