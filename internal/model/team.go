package model

// Permission is a capability token granted to a team membership.
type Permission string

const (
	PermissionView    Permission = "view"
	PermissionEdit    Permission = "edit"
	PermissionAssign  Permission = "assign"
	PermissionApprove Permission = "approve"
	PermissionReport  Permission = "report"
)

// Valid reports whether p is one of the known capability tokens.
func (p Permission) Valid() bool {
	switch p {
	case PermissionView, PermissionEdit, PermissionAssign, PermissionApprove, PermissionReport:
		return true
	}
	return false
}

// Membership links a user to a team with a team-scoped role and permission
// set. Permissions are only meaningful within the owning team's project; a
// user with no membership on a team holds no permissions there.
type Membership struct {
	UserID      string       `json:"user_id"`
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// Team is a named group tied to exactly one project.
type Team struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	ProjectID string       `json:"project_id"`
	Members   []Membership `json:"members"`
}
