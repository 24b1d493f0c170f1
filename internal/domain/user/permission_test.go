package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleAdmin, PermissionAttendanceViewAll, true},
		{RoleAdmin, PermissionLeaveDeleteAny, true},
		{RoleAdmin, PermissionSalaryViewAll, true},
		{RoleAdmin, PermissionDocumentManageAll, true},
		{RoleEmployee, PermissionAttendanceViewAll, false},
		{RoleEmployee, PermissionLeaveDeleteAny, false},
		{RoleEmployee, PermissionSalaryViewAll, false},
		{RoleEmployee, PermissionDocumentManageAll, false},
		{Role("owner"), PermissionSalaryViewAll, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HasPermission(c.role, c.permission), "%s/%s", c.role, c.permission)
	}
}

func TestRolePermissions_OnlyCheckedPermissions(t *testing.T) {
	granted := map[Permission]bool{}
	for _, perms := range RolePermissions {
		for _, p := range perms {
			granted[p] = true
		}
	}
	assert.ElementsMatch(t,
		[]Permission{PermissionAttendanceViewAll, PermissionLeaveDeleteAny, PermissionSalaryViewAll, PermissionDocumentManageAll},
		keys(granted))
}

func keys(m map[Permission]bool) []Permission {
	out := make([]Permission, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestAuthorize(t *testing.T) {
	admin := Identity{UserID: "a", Role: RoleAdmin}
	employee := Identity{UserID: "e", Role: RoleEmployee}

	assert.NoError(t, Authorize(admin, RoleAdmin))
	assert.ErrorIs(t, Authorize(employee, RoleAdmin), ErrAdminAccessRequired)
	assert.ErrorIs(t, Authorize(admin, RoleEmployee), ErrEmployeeAccessRequired)
	assert.NoError(t, Authorize(employee, RoleAdmin, RoleEmployee))
	assert.ErrorIs(t, Authorize(Identity{Role: "guest"}, RoleAdmin, RoleEmployee), ErrAccessDenied)
}
