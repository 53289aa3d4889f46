package handlers

import (
	"net/http"

	"github.com/Marga-Ghale/projectflow/internal/models"
	"github.com/Marga-Ghale/projectflow/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Notification Handler
// ============================================

type NotificationHandler struct {
	notificationService service.NotificationService
}

func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.notificationService.List(c.Request.Context(), unreadOnly)
	if err != nil {
		respondError(c, err, "Failed to fetch notifications")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) Count(c *gin.Context) {
	all, err := h.notificationService.List(c.Request.Context(), false)
	if err != nil {
		respondError(c, err, "Failed to count notifications")
		return
	}
	unread, err := h.notificationService.UnreadCount(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to count notifications")
		return
	}

	c.JSON(http.StatusOK, models.NotificationCountResponse{
		Total:  len(all),
		Unread: unread,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	if err := h.notificationService.MarkAsRead(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to mark notification as read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	changed, err := h.notificationService.MarkAllAsRead(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to mark notifications as read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read", "updated": changed})
}
