package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Project      *ProjectHandler
	Task         *TaskHandler
	Calendar     *CalendarHandler
	Notification *NotificationHandler
	Activity     *ActivityHandler
	Settings     *SettingsHandler
	Dashboard    *DashboardHandler
	UIState      *UIStateHandler
}

// NewHandlers creates all handlers. Dates without an offset are read in loc.
func NewHandlers(services *service.Services, loc *time.Location) *Handlers {
	return &Handlers{
		Auth:         &AuthHandler{authService: services.Auth},
		User:         &UserHandler{userService: services.User},
		Project:      &ProjectHandler{projectService: services.Project, loc: loc},
		Task:         &TaskHandler{taskService: services.Task, loc: loc},
		Calendar:     &CalendarHandler{eventService: services.Event, uiState: services.UIState, loc: loc},
		Notification: &NotificationHandler{notificationService: services.Notification},
		Activity:     &ActivityHandler{activityService: services.Activity},
		Settings:     &SettingsHandler{settingsService: services.Settings},
		Dashboard:    &DashboardHandler{dashboardService: services.Dashboard},
		UIState:      &UIStateHandler{uiState: services.UIState},
	}
}

// RegisterRoutes mounts the public auth routes and the session-protected
// routes on api.
func RegisterRoutes(api *gin.RouterGroup, h *Handlers, authMiddleware gin.HandlerFunc) {
	// ============================================
	// Public routes (no auth required)
	// ============================================
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.GET("/status", h.Auth.Status)
	}

	// ============================================
	// Protected routes (require auth middleware)
	// ============================================
	protected := api.Group("")
	protected.Use(authMiddleware)
	{
		protected.POST("/auth/logout", h.Auth.Logout)
		protected.GET("/auth/me", h.Auth.Me)

		protected.PUT("/users/me", h.User.UpdateProfile)
		protected.GET("/team", h.User.Team)

		projects := protected.Group("/projects")
		{
			projects.GET("", h.Project.List)
			projects.POST("", h.Project.Create)
			projects.GET("/:id", h.Project.Get)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", h.Task.List)
			tasks.POST("", h.Task.Create)
			tasks.GET("/board", h.Task.Board)
		}

		events := protected.Group("/events")
		{
			events.GET("", h.Calendar.List)
			events.POST("", h.Calendar.Create)
			events.GET("/upcoming", h.Calendar.Upcoming)
		}

		calendar := protected.Group("/calendar")
		{
			calendar.GET("/month", h.Calendar.Month)
			calendar.GET("/week", h.Calendar.Week)
		}

		protected.GET("/dashboard", h.Dashboard.Dashboard)
		protected.GET("/analytics", h.Dashboard.Analytics)

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", h.Notification.List)
			notifications.GET("/count", h.Notification.Count)
			notifications.PUT("/read-all", h.Notification.MarkAllRead)
			notifications.PUT("/:id/read", h.Notification.MarkRead)
		}

		protected.GET("/activities", h.Activity.List)

		protected.GET("/settings", h.Settings.Get)
		protected.PUT("/settings", h.Settings.Update)

		ui := protected.Group("/ui-state")
		{
			ui.GET("", h.UIState.Get)
			ui.PUT("", h.UIState.Update)
			ui.POST("/modals/:name/open", h.UIState.OpenModal)
			ui.POST("/modals/:name/close", h.UIState.CloseModal)
			ui.POST("/calendar/prev", h.UIState.PrevMonth)
			ui.POST("/calendar/next", h.UIState.NextMonth)
		}
	}
}

// ============================================
// Helper Functions
// ============================================

// respondError maps service sentinels to status codes; anything else is a
// 500 with the fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "Request cancelled"})
	default:
		log.Printf("❌ [API] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + key})
		return 0, false
	}
	return n, true
}
