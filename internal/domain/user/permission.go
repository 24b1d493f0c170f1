package user

type Permission string

// Permissions gate access to records the caller does not own. Route-level
// role checks live in the HTTP middleware.
const (
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionLeaveDeleteAny    Permission = "leave.delete_any"
	PermissionSalaryViewAll     Permission = "salary.view_all"
	PermissionDocumentManageAll Permission = "document.manage_all"
)

// RolePermissions maps roles to their permissions. Employees act on their
// own records only.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceViewAll,
		PermissionLeaveDeleteAny,
		PermissionSalaryViewAll,
		PermissionDocumentManageAll,
	},
	RoleEmployee: {},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}

// Authorize allows identity when its role is one of roles.
func Authorize(identity Identity, roles ...Role) error {
	for _, role := range roles {
		if identity.Role == role {
			return nil
		}
	}
	if len(roles) == 1 {
		switch roles[0] {
		case RoleAdmin:
			return ErrAdminAccessRequired
		case RoleEmployee:
			return ErrEmployeeAccessRequired
		}
	}
	return ErrAccessDenied
}
