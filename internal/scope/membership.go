package scope

import (
	"context"

	"buildpro/internal/model"
)

// MembershipInfo is a resolved team membership for one user.
type MembershipInfo struct {
	TeamID      string        `json:"team_id"`
	TeamName    string        `json:"team_name"`
	ProjectID   string        `json:"project_id"`
	Role        model.Role    `json:"role"`
	Permissions PermissionSet `json:"permissions"`
}

// ResolveMemberships returns every membership held by the user, in stable
// team seed order. A user appears at most once per team. An empty result is
// normal and carries no error.
func (r *Resolver) ResolveMemberships(ctx context.Context, userID string) ([]MembershipInfo, error) {
	teams, err := r.teams.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []MembershipInfo
	for _, t := range teams {
		for _, m := range t.Members {
			if m.UserID != userID {
				continue
			}
			out = append(out, MembershipInfo{
				TeamID:      t.ID,
				TeamName:    t.Name,
				ProjectID:   t.ProjectID,
				Role:        m.Role,
				Permissions: PermissionSet(m.Permissions),
			})
			break
		}
	}
	return out, nil
}

// ResolveMembership returns the first membership held by the user, or nil
// when the user belongs to no team. This keeps the historical one-team-at-a-
// time behavior: a user on several teams gets the team that seeds first.
// Callers that can handle multiple teams should use ResolveMemberships.
func (r *Resolver) ResolveMembership(ctx context.Context, userID string) (*MembershipInfo, error) {
	all, err := r.ResolveMemberships(ctx, userID)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return &all[0], nil
}
