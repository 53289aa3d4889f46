package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/socket"
	"github.com/Marga-Ghale/projectflow/internal/views"
)

// ============================================
// User Service
// ============================================

type UpdateProfileInput struct {
	Name   *string
	Email  *string
	Avatar *string
}

type UserService interface {
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*repository.User, error)
	Team(ctx context.Context, search string) ([]views.TeamMember, error)
}

type userService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	broadcaster *socket.Broadcaster
}

func NewUserService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	broadcaster *socket.Broadcaster,
) UserService {
	return &userService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		broadcaster: broadcaster,
	}
}

// UpdateProfile edits the signed-in user in both the session and the
// registered users list.
func (s *userService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*repository.User, error) {
	current, err := s.sessionRepo.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if current == nil {
		return nil, ErrUnauthorized
	}

	updated := *current
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		updated.Name = *input.Name
	}
	if input.Email != nil && *input.Email != current.Email {
		email := strings.TrimSpace(*input.Email)
		if email == "" {
			return nil, fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
		}
		other, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		if other != nil && other.ID != current.ID {
			return nil, ErrUserExists
		}
		updated.Email = email
	}
	if input.Avatar != nil {
		updated.Avatar = *input.Avatar
	}

	err = s.userRepo.Update(ctx, &updated)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if err := s.sessionRepo.Set(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastProfileUpdated(&updated)
	}
	return &updated, nil
}

// Team lists registered users with derived project and task counts.
func (s *userService) Team(ctx context.Context, search string) ([]views.TeamMember, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	members := views.FilterTeam(views.TeamMembers(users, projects, tasks), search)
	if s.broadcaster != nil {
		for i := range members {
			members[i].Online = s.broadcaster.IsUserOnline(members[i].ID)
		}
	}
	return members, nil
}
