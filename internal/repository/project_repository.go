package repository

import (
	"context"

	"buildpro/internal/errors"
	"buildpro/internal/model"
)

// ProjectRepository defines project lookup operations.
type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
}

type projectRepository struct {
	byID  map[string]model.Project
	order []string
}

// NewProjectRepository builds an in-memory project repository indexed by id.
func NewProjectRepository(projects []model.Project) ProjectRepository {
	r := &projectRepository{byID: make(map[string]model.Project, len(projects))}
	for _, p := range projects {
		if _, ok := r.byID[p.ID]; ok {
			continue
		}
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

// FindByID finds a project by ID.
func (r *projectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrProjectNotFound
	}
	return &p, nil
}

// List returns all projects in seed order.
func (r *projectRepository) List(ctx context.Context) ([]model.Project, error) {
	out := make([]model.Project, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
