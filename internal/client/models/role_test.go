package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleStudent, ParseRole("STUDENT"))
	assert.Equal(t, RoleTeacher, ParseRole("TEACHER"))
	assert.Equal(t, RoleAdmin, ParseRole("ADMIN"))
	assert.Equal(t, RoleUnknown, ParseRole(""))
	assert.Equal(t, RoleUnknown, ParseRole("student"))
	assert.Equal(t, RoleUnknown, ParseRole("JANITOR"))
}

func TestCapabilities(t *testing.T) {
	assert.True(t, RoleTeacher.CanManageCatalog())
	assert.True(t, RoleAdmin.CanManageCatalog())
	assert.False(t, RoleStudent.CanManageCatalog())
	assert.False(t, RoleUnknown.CanManageCatalog())

	assert.True(t, RoleTeacher.CanManageExams())
	assert.True(t, RoleAdmin.CanManageExams())
	assert.False(t, RoleStudent.CanManageExams())
	assert.False(t, RoleUnknown.CanManageExams())
}
