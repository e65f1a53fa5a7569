package scope

import (
	"context"

	"buildpro/internal/errors"
	"buildpro/internal/model"
)

// VisibleProjects returns the projects the user may see.
//
// Contractor sees every project. A supervisor sees only the projects whose
// team carries a supervisor membership for them. Project-managers, engineers,
// and laborers see the projects of any team they belong to. A user with no
// membership, or an unrecognized role, sees nothing.
func (r *Resolver) VisibleProjects(ctx context.Context, user *model.User) ([]model.Project, error) {
	if user == nil || !user.Role.Valid() {
		return []model.Project{}, nil
	}
	if user.Role == model.RoleContractor {
		return r.projects.List(ctx)
	}

	memberships, err := r.ResolveMemberships(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	out := []model.Project{}
	seen := map[string]bool{}
	for _, m := range memberships {
		if user.Role == model.RoleSupervisor && m.Role != model.RoleSupervisor {
			continue
		}
		if seen[m.ProjectID] {
			continue
		}
		seen[m.ProjectID] = true
		p, err := r.projects.FindByID(ctx, m.ProjectID)
		if err == errors.ErrProjectNotFound {
			// dangling team reference
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// VisibleTasks returns the tasks the user may see.
//
// Contractor sees every task. A user holding the supervisor or
// project-manager team role sees every task of the projects they supervise or
// manage. Any other team member sees only the tasks assigned to them. A user
// with no membership, or an unrecognized role, sees nothing.
func (r *Resolver) VisibleTasks(ctx context.Context, user *model.User) ([]model.Task, error) {
	if user == nil || !user.Role.Valid() {
		return []model.Task{}, nil
	}
	if user.Role == model.RoleContractor {
		return r.tasks.List(ctx)
	}

	memberships, err := r.ResolveMemberships(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	// Membership gates everything below: a membership-less user sees no
	// tasks even when named as an assignee.
	if len(memberships) == 0 {
		return []model.Task{}, nil
	}

	out := []model.Task{}
	seen := map[string]bool{}
	supervisory := false
	for _, m := range memberships {
		if m.Role != model.RoleSupervisor && m.Role != model.RoleProjectManager {
			continue
		}
		supervisory = true
		if seen[m.ProjectID] {
			continue
		}
		seen[m.ProjectID] = true
		tasks, err := r.tasks.ListByProject(ctx, m.ProjectID)
		if err != nil {
			return nil, err
		}
		out = append(out, tasks...)
	}
	if supervisory {
		return out, nil
	}
	return r.tasks.ListByAssignee(ctx, user.ID)
}

// VisibleDocuments returns the documents the user may see: everything for the
// contractor, otherwise the documents of every project the user's teams are
// attached to. Document visibility follows project membership, not task
// assignment.
func (r *Resolver) VisibleDocuments(ctx context.Context, user *model.User) ([]model.Document, error) {
	if user == nil || !user.Role.Valid() {
		return []model.Document{}, nil
	}
	if user.Role == model.RoleContractor {
		return r.documents.List(ctx)
	}

	memberships, err := r.ResolveMemberships(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	out := []model.Document{}
	seen := map[string]bool{}
	for _, m := range memberships {
		if seen[m.ProjectID] {
			continue
		}
		seen[m.ProjectID] = true
		docs, err := r.documents.ListByProject(ctx, m.ProjectID)
		if err != nil {
			return nil, err
		}
		out = append(out, docs...)
	}
	return out, nil
}
