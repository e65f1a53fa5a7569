package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleContractor, RoleSupervisor, RoleEngineer, RoleLaborer, RoleProjectManager} {
		assert.True(t, r.Valid(), string(r))
	}
	assert.False(t, Role("intern").Valid())
	assert.False(t, Role("").Valid())
}

func TestRoleGates(t *testing.T) {
	assert.True(t, RoleContractor.CanManageCompany())
	assert.False(t, RoleSupervisor.CanManageCompany())
	assert.False(t, RoleProjectManager.CanManageCompany())

	assert.True(t, RoleSupervisor.CanAccessDocumentLibrary())
	assert.True(t, RoleEngineer.CanAccessDocumentLibrary())
	assert.True(t, RoleContractor.CanAccessDocumentLibrary())
	assert.False(t, RoleLaborer.CanAccessDocumentLibrary())
	assert.False(t, Role("intern").CanAccessDocumentLibrary())
}
