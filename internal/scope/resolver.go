// Package scope resolves role, membership, and entity visibility for BuildPro
// users. Two authorization axes exist and are never conflated: a user's global
// role selects the visibility rule (contractor has blanket access, unknown
// roles have none), while the team-scoped role and permission set govern
// project-scoped capability.
package scope

import (
	"buildpro/internal/repository"
)

// Resolver computes the subset of projects, tasks, and documents a user may
// see. All operations are pure reads; input collections are never mutated and
// results are freshly allocated on every call.
type Resolver struct {
	teams     repository.TeamRepository
	projects  repository.ProjectRepository
	tasks     repository.TaskRepository
	documents repository.DocumentRepository
}

// NewResolver creates a new access-scope resolver.
func NewResolver(
	teams repository.TeamRepository,
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
	documents repository.DocumentRepository,
) *Resolver {
	return &Resolver{
		teams:     teams,
		projects:  projects,
		tasks:     tasks,
		documents: documents,
	}
}
