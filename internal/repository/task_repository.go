package repository

import (
	"context"

	"github.com/Marga-Ghale/projectflow/internal/store"
)

type TaskRepository interface {
	FindAll(ctx context.Context) ([]Task, error)
	FindByProject(ctx context.Context, projectID string) ([]Task, error)
	Create(ctx context.Context, task *Task) error
	ReplaceAll(ctx context.Context, tasks []Task) error
}

type taskRepository struct {
	tasks *collection[Task]
}

func NewTaskRepository(s store.Store) TaskRepository {
	return &taskRepository{tasks: newCollection[Task](s, store.KeyTasks)}
}

func (r *taskRepository) FindAll(ctx context.Context) ([]Task, error) {
	return r.tasks.list(ctx)
}

func (r *taskRepository) FindByProject(ctx context.Context, projectID string) ([]Task, error) {
	all, err := r.tasks.list(ctx)
	if err != nil {
		return nil, err
	}
	tasks := make([]Task, 0)
	for _, t := range all {
		if t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (r *taskRepository) Create(ctx context.Context, task *Task) error {
	return r.tasks.append(ctx, *task)
}

func (r *taskRepository) ReplaceAll(ctx context.Context, tasks []Task) error {
	return r.tasks.replace(ctx, tasks)
}
