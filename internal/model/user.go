package model

// Role classifies a user globally or a membership within one team. The two
// axes use the same value space but are resolved independently: a user with
// global role engineer may still hold the supervisor role on a team.
type Role string

const (
	// RoleContractor is the owner/admin role with blanket access.
	RoleContractor     Role = "contractor"
	RoleSupervisor     Role = "supervisor"
	RoleEngineer       Role = "engineer"
	RoleLaborer        Role = "laborer"
	RoleProjectManager Role = "project-manager"
)

// Valid reports whether r is one of the known roles. Unknown role strings
// must be treated as no access, never as a default grant.
func (r Role) Valid() bool {
	switch r {
	case RoleContractor, RoleSupervisor, RoleEngineer, RoleLaborer, RoleProjectManager:
		return true
	}
	return false
}

// CanManageCompany reports whether the global role may edit the company
// profile. Only the contractor role qualifies.
func (r Role) CanManageCompany() bool {
	return r == RoleContractor
}

// CanAccessDocumentLibrary reports whether the global role may open the
// document library screens.
func (r Role) CanAccessDocumentLibrary() bool {
	return r == RoleContractor || r == RoleSupervisor || r == RoleEngineer
}

// User represents an identity record. Users are created once at seed time and
// never mutated during a session.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	Phone  string `json:"phone,omitempty"`
}
