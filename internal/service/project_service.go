package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Marga-Ghale/projectflow/internal/repository"
	"github.com/Marga-Ghale/projectflow/internal/socket"
	"github.com/Marga-Ghale/projectflow/internal/types"
	"github.com/Marga-Ghale/projectflow/internal/views"
	"github.com/google/uuid"
)

// ============================================
// Project Service
// ============================================

type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Color       string
	Progress    *int
}

type ProjectService interface {
	List(ctx context.Context, search, status string) ([]repository.Project, error)
	GetByID(ctx context.Context, id string) (*repository.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*repository.Project, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	sessionRepo repository.SessionRepository
	uiState     UIStateService
	broadcaster *socket.Broadcaster
}

func NewProjectService(
	projectRepo repository.ProjectRepository,
	sessionRepo repository.SessionRepository,
	uiState UIStateService,
	broadcaster *socket.Broadcaster,
) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		sessionRepo: sessionRepo,
		uiState:     uiState,
		broadcaster: broadcaster,
	}
}

func (s *projectService) List(ctx context.Context, search, status string) ([]repository.Project, error) {
	projects, err := s.projectRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return views.FilterProjects(projects, search, status), nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*repository.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return project, err
}

// Create adds a project in planning status. The signed-in user, if any,
// becomes its only team member.
func (s *projectService) Create(ctx context.Context, input CreateProjectInput) (*repository.Project, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" ||
		input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: name, description, start date and end date are required", ErrInvalidInput)
	}

	progress := 0
	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			return nil, fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidInput)
		}
		progress = *input.Progress
	}

	color := input.Color
	if color == "" {
		color = types.DefaultProjectColor
	}

	team := []repository.User{}
	current, err := s.sessionRepo.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if current != nil {
		team = append(team, *current)
	}

	project := &repository.Project{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Status:      types.ProjectPlanning,
		Progress:    progress,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Team:        team,
		Tasks:       []repository.Task{},
		Color:       color,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	log.Printf("✅ [Project] Created %q (%s)", project.Name, project.ID)

	s.uiState.CloseModal(ModalNewProject)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastProjectCreated(project)
	}
	return project, nil
}
