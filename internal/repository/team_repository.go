package repository

import (
	"context"

	"buildpro/internal/errors"
	"buildpro/internal/model"
)

// TeamRepository defines team lookup operations.
type TeamRepository interface {
	FindByID(ctx context.Context, id string) (*model.Team, error)
	FindByProjectID(ctx context.Context, projectID string) (*model.Team, error)
	List(ctx context.Context) ([]model.Team, error)
}

type teamRepository struct {
	byID  map[string]model.Team
	order []string
}

// NewTeamRepository builds an in-memory team repository indexed by id.
func NewTeamRepository(teams []model.Team) TeamRepository {
	r := &teamRepository{byID: make(map[string]model.Team, len(teams))}
	for _, t := range teams {
		if _, ok := r.byID[t.ID]; ok {
			continue
		}
		r.byID[t.ID] = t
		r.order = append(r.order, t.ID)
	}
	return r
}

// FindByID finds a team by ID.
func (r *teamRepository) FindByID(ctx context.Context, id string) (*model.Team, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrTeamNotFound
	}
	t.Members = copyMembers(t.Members)
	return &t, nil
}

// FindByProjectID finds the team attached to a project. Seed data assumes at
// most one team per project; the first match in seed order wins.
func (r *teamRepository) FindByProjectID(ctx context.Context, projectID string) (*model.Team, error) {
	for _, id := range r.order {
		if t := r.byID[id]; t.ProjectID == projectID {
			t.Members = copyMembers(t.Members)
			return &t, nil
		}
	}
	return nil, errors.ErrTeamNotFound
}

// List returns all teams in seed order.
func (r *teamRepository) List(ctx context.Context) ([]model.Team, error) {
	out := make([]model.Team, 0, len(r.order))
	for _, id := range r.order {
		t := r.byID[id]
		t.Members = copyMembers(t.Members)
		out = append(out, t)
	}
	return out, nil
}

func copyMembers(members []model.Membership) []model.Membership {
	if members == nil {
		return nil
	}
	out := make([]model.Membership, len(members))
	copy(out, members)
	return out
}
