package repository

import (
	"context"

	"buildpro/internal/errors"
	"buildpro/internal/model"
)

// DocumentRepository defines document lookup operations.
type DocumentRepository interface {
	FindByID(ctx context.Context, id string) (*model.Document, error)
	ListByProject(ctx context.Context, projectID string) ([]model.Document, error)
	List(ctx context.Context) ([]model.Document, error)
}

type documentRepository struct {
	byID  map[string]model.Document
	order []string
}

// NewDocumentRepository builds an in-memory document repository indexed by id.
func NewDocumentRepository(documents []model.Document) DocumentRepository {
	r := &documentRepository{byID: make(map[string]model.Document, len(documents))}
	for _, d := range documents {
		if _, ok := r.byID[d.ID]; ok {
			continue
		}
		r.byID[d.ID] = d
		r.order = append(r.order, d.ID)
	}
	return r
}

// FindByID finds a document by ID.
func (r *documentRepository) FindByID(ctx context.Context, id string) (*model.Document, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrDocumentNotFound
	}
	return &d, nil
}

// ListByProject returns the documents belonging to a project, in seed order.
func (r *documentRepository) ListByProject(ctx context.Context, projectID string) ([]model.Document, error) {
	out := []model.Document{}
	for _, id := range r.order {
		if d := r.byID[id]; d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	return out, nil
}

// List returns all documents in seed order.
func (r *documentRepository) List(ctx context.Context) ([]model.Document, error) {
	out := make([]model.Document, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
