package repository

import (
	"context"

	"buildpro/internal/errors"
	"buildpro/internal/model"
)

// UserRepository defines user lookup operations.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	byID  map[string]model.User
	order []string
}

// NewUserRepository builds an in-memory user repository indexed by id.
// Duplicate ids keep the first record. Insertion order is preserved for
// listings.
func NewUserRepository(users []model.User) UserRepository {
	r := &userRepository{byID: make(map[string]model.User, len(users))}
	for _, u := range users {
		if _, ok := r.byID[u.ID]; ok {
			continue
		}
		r.byID[u.ID] = u
		r.order = append(r.order, u.ID)
	}
	return r
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	return &u, nil
}

// List returns all users in seed order.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
