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
// Task Service
// ============================================

type CreateTaskInput struct {
	Title       string
	Description string
	ProjectID   string
	Priority    string
	AssigneeID  string
	DueDate     *time.Time
}

type TaskFilter struct {
	Search    string
	Priority  string
	ProjectID string
}

type TaskService interface {
	List(ctx context.Context, filter TaskFilter) ([]repository.Task, error)
	Board(ctx context.Context, filter TaskFilter) ([]views.KanbanColumn, error)
	Create(ctx context.Context, input CreateTaskInput) (*repository.Task, error)
}

type taskService struct {
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
	uiState     UIStateService
	broadcaster *socket.Broadcaster
	now         func() time.Time
}

func NewTaskService(
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	uiState UIStateService,
	broadcaster *socket.Broadcaster,
	now func() time.Time,
) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		userRepo:    userRepo,
		uiState:     uiState,
		broadcaster: broadcaster,
		now:         now,
	}
}

func (s *taskService) List(ctx context.Context, filter TaskFilter) ([]repository.Task, error) {
	if filter.Priority != "" && filter.Priority != types.FilterAll && !types.IsValidPriority(filter.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, filter.Priority)
	}

	var (
		tasks []repository.Task
		err   error
	)
	if filter.ProjectID != "" {
		tasks, err = s.taskRepo.FindByProject(ctx, filter.ProjectID)
	} else {
		tasks, err = s.taskRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	return views.FilterTasks(tasks, filter.Search, filter.Priority), nil
}

// Board applies the same filters as List, then groups by status.
func (s *taskService) Board(ctx context.Context, filter TaskFilter) ([]views.KanbanColumn, error) {
	tasks, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return views.Kanban(tasks), nil
}

// Create adds a todo task. The project ID is stored as given; an unknown
// assignee ID leaves the task unassigned.
func (s *taskService) Create(ctx context.Context, input CreateTaskInput) (*repository.Task, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.ProjectID) == "" {
		return nil, fmt.Errorf("%w: title, description and project are required", ErrInvalidInput)
	}

	priority := input.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}
	if !types.IsValidPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, priority)
	}

	var assignee *repository.User
	if input.AssigneeID != "" {
		user, err := s.userRepo.FindByID(ctx, input.AssigneeID)
		switch {
		case err == nil:
			assignee = user
		case errors.Is(err, repository.ErrNotFound):
			log.Printf("⚠️  [Task] Assignee %s not registered, leaving unassigned", input.AssigneeID)
		default:
			return nil, fmt.Errorf("failed to look up assignee: %w", err)
		}
	}

	now := s.now()
	task := &repository.Task{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Status:      types.StatusTodo,
		Priority:    priority,
		Assignee:    assignee,
		DueDate:     input.DueDate,
		ProjectID:   input.ProjectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	log.Printf("✅ [Task] Created %q in project %s", task.Title, task.ProjectID)

	s.uiState.CloseModal(ModalNewTask)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastTaskCreated(task)
	}
	return task, nil
}
