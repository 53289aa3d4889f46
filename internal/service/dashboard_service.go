package service

import (
	"context"
	"fmt"

	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/views"
)

// ============================================
// Dashboard Service
// ============================================

type DashboardService interface {
	Dashboard(ctx context.Context) (views.DashboardStats, error)
	Analytics(ctx context.Context) (views.Analytics, error)
}

type dashboardService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
}

func NewDashboardService(
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
) DashboardService {
	return &dashboardService{projectRepo: projectRepo, taskRepo: taskRepo, userRepo: userRepo}
}

func (s *dashboardService) Dashboard(ctx context.Context) (views.DashboardStats, error) {
	projects, tasks, users, err := s.load(ctx)
	if err != nil {
		return views.DashboardStats{}, err
	}
	return views.Dashboard(projects, tasks, users), nil
}

func (s *dashboardService) Analytics(ctx context.Context) (views.Analytics, error) {
	projects, tasks, users, err := s.load(ctx)
	if err != nil {
		return views.Analytics{}, err
	}
	return views.BuildAnalytics(projects, tasks, users), nil
}

func (s *dashboardService) load(ctx context.Context) ([]repository.Project, []repository.Task, []repository.User, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load projects: %w", err)
	}
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load users: %w", err)
	}
	return projects, tasks, users, nil
}
