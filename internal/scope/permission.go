package scope

import "buildpro/internal/model"

// PermissionSet is the capability tokens attached to one membership.
// Permissions are only meaningful within that membership's team and project.
type PermissionSet []model.Permission

// Has reports whether the set contains p. Nil and empty sets grant nothing.
func (s PermissionSet) Has(p model.Permission) bool {
	for _, have := range s {
		if have == p {
			return true
		}
	}
	return false
}

// HasPermission reports whether perms contains the requested capability
// token. A nil or absent permission set resolves to false, never an error.
func HasPermission(perms []model.Permission, p model.Permission) bool {
	return PermissionSet(perms).Has(p)
}

// CanView reports whether perms grants the view capability.
func CanView(perms []model.Permission) bool {
	return HasPermission(perms, model.PermissionView)
}

// CanEdit reports whether perms grants the edit capability.
func CanEdit(perms []model.Permission) bool {
	return HasPermission(perms, model.PermissionEdit)
}

// CanAssign reports whether perms grants the assign capability.
func CanAssign(perms []model.Permission) bool {
	return HasPermission(perms, model.PermissionAssign)
}

// CanApprove reports whether perms grants the approve capability.
func CanApprove(perms []model.Permission) bool {
	return HasPermission(perms, model.PermissionApprove)
}

// CanReport reports whether perms grants the report capability.
func CanReport(perms []model.Permission) bool {
	return HasPermission(perms, model.PermissionReport)
}
