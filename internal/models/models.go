package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/repository"
)

// ============================================
// Auth DTOs
// ============================================

// Passwords are accepted for form compatibility and never checked.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  *repository.User `json:"user"`
	Token string           `json:"token"`
}

type AuthStatusResponse struct {
	State string           `json:"state"`
	User  *repository.User `json:"user"`
}

// ============================================
// User DTOs
// ============================================

type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// ============================================
// Project DTOs
// ============================================

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	Color       string `json:"color"`
	Progress    *int   `json:"progress"`
}

// ============================================
// Task DTOs
// ============================================

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	ProjectID   string `json:"projectId" binding:"required"`
	Priority    string `json:"priority"`
	AssigneeID  string `json:"assigneeId"`
	DueDate     string `json:"dueDate"`
}

// ============================================
// Calendar DTOs
// ============================================

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Type        string `json:"type"`
	ProjectID   string `json:"projectId"`
	TaskID      string `json:"taskId"`
}

// ============================================
// Notification DTOs
// ============================================

type NotificationCountResponse struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
}

// ============================================
// UI State DTOs
// ============================================

type UpdateUIStateRequest struct {
	ActiveTab    *string `json:"activeTab"`
	CalendarView *string `json:"calendarView"`
	TasksView    *string `json:"tasksView"`
}

// ============================================
// Helpers
// ============================================

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps as well as the date and
// datetime-local formats browsers submit. Values without an offset are read
// in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}
