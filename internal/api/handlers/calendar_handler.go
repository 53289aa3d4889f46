package handlers

import (
	"net/http"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/models"
	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Calendar Handler
// ============================================

type CalendarHandler struct {
	eventService service.EventService
	uiState      service.UIStateService
	loc          *time.Location
}

func (h *CalendarHandler) List(c *gin.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// Upcoming - GET /events/upcoming?limit=5
func (h *CalendarHandler) Upcoming(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 5)
	if !ok {
		return
	}
	events, err := h.eventService.Upcoming(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "Failed to fetch events")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *CalendarHandler) Create(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := models.ParseDate(req.Date, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: " + err.Error()})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), service.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Type:        req.Type,
		ProjectID:   req.ProjectID,
		TaskID:      req.TaskID,
	})
	if err != nil {
		respondError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// Month - GET /calendar/month?year=&month=
// Missing parameters fall back to the calendar cursor in the UI state.
func (h *CalendarHandler) Month(c *gin.Context) {
	cursor := h.uiState.Get().Calendar
	year, ok := queryInt(c, "year", cursor.Year)
	if !ok {
		return
	}
	month, ok := queryInt(c, "month", cursor.Month)
	if !ok {
		return
	}

	grid, err := h.eventService.Month(c.Request.Context(), year, time.Month(month))
	if err != nil {
		respondError(c, err, "Failed to build calendar")
		return
	}
	c.JSON(http.StatusOK, grid)
}

// Week - GET /calendar/week?date=2024-03-15, defaulting to today
func (h *CalendarHandler) Week(c *gin.Context) {
	anchor := time.Now().In(h.loc)
	if raw := c.Query("date"); raw != "" {
		d, err := models.ParseDate(raw, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: " + err.Error()})
			return
		}
		anchor = d
	}

	days, err := h.eventService.Week(c.Request.Context(), anchor)
	if err != nil {
		respondError(c, err, "Failed to build week")
		return
	}
	c.JSON(http.StatusOK, days)
}
