package repository

import (
	"github.com/Marga-Ghale/projectflow/internal/store"
)

type Repositories struct {
	UserRepo         UserRepository
	SessionRepo      SessionRepository
	ProjectRepo      ProjectRepository
	TaskRepo         TaskRepository
	EventRepo        EventRepository
	NotificationRepo NotificationRepository
	ActivityRepo     ActivityRepository
	SettingsRepo     SettingsRepository
}

func NewRepositories(s store.Store) *Repositories {
	return &Repositories{
		UserRepo:         NewUserRepository(s),
		SessionRepo:      NewSessionRepository(s),
		ProjectRepo:      NewProjectRepository(s),
		TaskRepo:         NewTaskRepository(s),
		EventRepo:        NewEventRepository(s),
		NotificationRepo: NewNotificationRepository(s),
		ActivityRepo:     NewActivityRepository(s),
		SettingsRepo:     NewSettingsRepository(s),
	}
}
