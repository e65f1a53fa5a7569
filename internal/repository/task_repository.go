package repository

import (
	"context"
	"sync"

	"buildpro/internal/errors"
	"buildpro/internal/model"
)

// TaskRepository defines task lookup operations and the single mutation in
// the system, the status update.
type TaskRepository interface {
	FindByID(ctx context.Context, id string) (*model.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]model.Task, error)
	ListByAssignee(ctx context.Context, assigneeID string) ([]model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	UpdateStatus(ctx context.Context, id string, status model.TaskStatus) (*model.Task, error)
}

type taskRepository struct {
	mu    sync.RWMutex
	byID  map[string]model.Task
	order []string
}

// NewTaskRepository builds an in-memory task repository indexed by id.
func NewTaskRepository(tasks []model.Task) TaskRepository {
	r := &taskRepository{byID: make(map[string]model.Task, len(tasks))}
	for _, t := range tasks {
		if _, ok := r.byID[t.ID]; ok {
			continue
		}
		r.byID[t.ID] = t
		r.order = append(r.order, t.ID)
	}
	return r
}

// FindByID finds a task by ID.
func (r *taskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrTaskNotFound
	}
	return &t, nil
}

// ListByProject returns the tasks belonging to a project, in seed order.
func (r *taskRepository) ListByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Task{}
	for _, id := range r.order {
		if t := r.byID[id]; t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

// ListByAssignee returns the tasks assigned to a user, in seed order.
func (r *taskRepository) ListByAssignee(ctx context.Context, assigneeID string) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Task{}
	for _, id := range r.order {
		if t := r.byID[id]; t.AssigneeID == assigneeID {
			out = append(out, t)
		}
	}
	return out, nil
}

// List returns all tasks in seed order.
func (r *taskRepository) List(ctx context.Context) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Task, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// UpdateStatus moves a task to a new status, enforcing the transition table.
// The updated task is returned.
func (r *taskRepository) UpdateStatus(ctx context.Context, id string, status model.TaskStatus) (*model.Task, error) {
	if !status.Valid() {
		return nil, errors.ErrInvalidTransition
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrTaskNotFound
	}
	if !t.Status.CanTransitionTo(status) {
		return nil, errors.ErrInvalidTransition
	}
	t.Status = status
	r.byID[id] = t
	return &t, nil
}
