package repository

import (
	"context"

	"github.com/Marga-Ghale/projectflow/internal/store"
)

type ProjectRepository interface {
	FindAll(ctx context.Context) ([]Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, project *Project) error
	ReplaceAll(ctx context.Context, projects []Project) error
}

type projectRepository struct {
	projects *collection[Project]
}

func NewProjectRepository(s store.Store) ProjectRepository {
	return &projectRepository{projects: newCollection[Project](s, store.KeyProjects)}
}

func (r *projectRepository) FindAll(ctx context.Context) ([]Project, error) {
	return r.projects.list(ctx)
}

func (r *projectRepository) FindByID(ctx context.Context, id string) (*Project, error) {
	return r.projects.find(ctx, func(p *Project) bool { return p.ID == id })
}

func (r *projectRepository) Create(ctx context.Context, project *Project) error {
	return r.projects.append(ctx, *project)
}

func (r *projectRepository) ReplaceAll(ctx context.Context, projects []Project) error {
	return r.projects.replace(ctx, projects)
}
