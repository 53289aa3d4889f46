package service

import (
	"errors"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/config"
	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/socket"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
)

// ============================================
// Services Container
// ============================================

type Services struct {
	Auth         AuthService
	User         UserService
	Project      ProjectService
	Task         TaskService
	Event        EventService
	Notification NotificationService
	Activity     ActivityService
	Settings     SettingsService
	Dashboard    DashboardService
	UIState      UIStateService
	Broadcaster  *socket.Broadcaster
}

// ServiceDeps contains all dependencies needed to create services
type ServiceDeps struct {
	Config      *config.Config
	Repos       *repository.Repositories
	Broadcaster *socket.Broadcaster

	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

func NewServices(deps *ServiceDeps) *Services {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	loc := deps.Config.Location()

	uiState := NewUIStateService(now, deps.Broadcaster)
	notificationService := NewNotificationService(deps.Repos.NotificationRepo, deps.Broadcaster, now)

	return &Services{
		Auth:         NewAuthService(deps.Config, deps.Repos.UserRepo, deps.Repos.SessionRepo, uiState, deps.Broadcaster, now),
		User:         NewUserService(deps.Repos.UserRepo, deps.Repos.SessionRepo, deps.Repos.ProjectRepo, deps.Repos.TaskRepo, deps.Broadcaster),
		Project:      NewProjectService(deps.Repos.ProjectRepo, deps.Repos.SessionRepo, uiState, deps.Broadcaster),
		Task:         NewTaskService(deps.Repos.TaskRepo, deps.Repos.UserRepo, uiState, deps.Broadcaster, now),
		Event:        NewEventService(deps.Repos.EventRepo, uiState, deps.Broadcaster, now, loc),
		Notification: notificationService,
		Activity:     NewActivityService(deps.Repos.ActivityRepo),
		Settings:     NewSettingsService(deps.Repos.SettingsRepo, deps.Broadcaster),
		Dashboard:    NewDashboardService(deps.Repos.ProjectRepo, deps.Repos.TaskRepo, deps.Repos.UserRepo),
		UIState:      uiState,
		Broadcaster:  deps.Broadcaster,
	}
}
