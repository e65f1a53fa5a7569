package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"buildpro/internal/model"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name  string
		perms []model.Permission
		token model.Permission
		want  bool
	}{
		{"nil set grants nothing", nil, model.PermissionView, false},
		{"empty set grants nothing", []model.Permission{}, model.PermissionEdit, false},
		{"present token", []model.Permission{model.PermissionView, model.PermissionEdit}, model.PermissionEdit, true},
		{"absent token", []model.Permission{model.PermissionView}, model.PermissionApprove, false},
		{"unknown token", []model.Permission{model.PermissionView}, model.Permission("demolish"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.perms, tt.token))
		})
	}
}

func TestConveniencePredicates(t *testing.T) {
	perms := []model.Permission{model.PermissionView, model.PermissionAssign, model.PermissionReport}

	assert.True(t, CanView(perms))
	assert.False(t, CanEdit(perms))
	assert.True(t, CanAssign(perms))
	assert.False(t, CanApprove(perms))
	assert.True(t, CanReport(perms))

	assert.False(t, CanView(nil))
	assert.False(t, CanApprove(nil))
}

func TestPermissionSetHas(t *testing.T) {
	var empty PermissionSet
	assert.False(t, empty.Has(model.PermissionView))

	s := PermissionSet{model.PermissionView}
	assert.True(t, s.Has(model.PermissionView))
	assert.False(t, s.Has(model.PermissionEdit))
}
