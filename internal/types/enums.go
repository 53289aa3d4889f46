package types

// User Role values
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
)

// Project Status values
const (
	ProjectPlanning  = "planning"
	ProjectActive    = "active"
	ProjectOnHold    = "on-hold"
	ProjectCompleted = "completed"
)

// Task Status values
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusReview     = "review"
	StatusCompleted  = "completed"
)

// Task Priority values
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Calendar Event types
const (
	EventDeadline  = "deadline"
	EventMeeting   = "meeting"
	EventMilestone = "milestone"
)

// Notification types
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Activity types
const (
	ActivityTaskCreated    = "task_created"
	ActivityTaskUpdated    = "task_updated"
	ActivityProjectCreated = "project_created"
	ActivityUserJoined     = "user_joined"
)

// Navigation tabs
const (
	TabDashboard = "dashboard"
	TabProjects  = "projects"
	TabTasks     = "tasks"
	TabTeam      = "team"
	TabCalendar  = "calendar"
	TabAnalytics = "analytics"
	TabSettings  = "settings"
)

// View modes
const (
	CalendarMonth = "month"
	CalendarWeek  = "week"

	TasksKanban = "kanban"
	TasksList   = "list"
)

// Appearance
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// FilterAll disables a status or priority filter.
const FilterAll = "all"

// DefaultProjectColor is used when a new project names no color.
const DefaultProjectColor = "#3b82f6"

// Valid values for validation, in display order
var ValidRoles = []string{RoleAdmin, RoleManager, RoleMember}

var ValidProjectStatuses = []string{
	ProjectActive, ProjectPlanning, ProjectOnHold, ProjectCompleted,
}

var ValidTaskStatuses = []string{
	StatusTodo, StatusInProgress, StatusReview, StatusCompleted,
}

var ValidPriorities = []string{
	PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow,
}

var ValidEventTypes = []string{EventDeadline, EventMeeting, EventMilestone}

var ValidNotificationTypes = []string{
	NotificationInfo, NotificationSuccess, NotificationWarning, NotificationError,
}

var ValidActivityTypes = []string{
	ActivityTaskCreated, ActivityTaskUpdated, ActivityProjectCreated, ActivityUserJoined,
}

var ValidTabs = []string{
	TabDashboard, TabProjects, TabTasks, TabTeam, TabCalendar, TabAnalytics, TabSettings,
}

var ValidThemes = []string{ThemeLight, ThemeDark, ThemeSystem}

var ValidLanguages = []string{"en", "es", "fr", "de"}

// ProjectColors is the palette offered when creating a project.
var ProjectColors = []string{
	"#3b82f6", "#8b5cf6", "#10b981", "#f59e0b",
	"#ef4444", "#06b6d4", "#84cc16", "#f97316",
}

// Helper functions for validation
func IsValidRole(role string) bool {
	return contains(ValidRoles, role)
}

func IsValidProjectStatus(status string) bool {
	return contains(ValidProjectStatuses, status)
}

func IsValidTaskStatus(status string) bool {
	return contains(ValidTaskStatuses, status)
}

func IsValidPriority(priority string) bool {
	return contains(ValidPriorities, priority)
}

func IsValidEventType(eventType string) bool {
	return contains(ValidEventTypes, eventType)
}

func IsValidNotificationType(t string) bool {
	return contains(ValidNotificationTypes, t)
}

func IsValidTab(tab string) bool {
	return contains(ValidTabs, tab)
}

func IsValidTheme(theme string) bool {
	return contains(ValidThemes, theme)
}

func IsValidLanguage(lang string) bool {
	return contains(ValidLanguages, lang)
}

func IsValidCalendarView(mode string) bool {
	return mode == CalendarMonth || mode == CalendarWeek
}

func IsValidTasksView(mode string) bool {
	return mode == TasksKanban || mode == TasksList
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
