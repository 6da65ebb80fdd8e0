package user

type Permission string

const (
	PermissionManageShifts    Permission = "shifts:manage"
	PermissionPublishShifts   Permission = "shifts:publish"
	PermissionViewTodayBoard  Permission = "attendance:board"
	PermissionReviewRequests  Permission = "requests:review"
	PermissionManageUsers     Permission = "users:manage"
	PermissionManageWorkRoles Permission = "workroles:manage"
	PermissionManageSettings  Permission = "settings:manage"
)

var rolePermissions = map[Role][]Permission{
	RoleOperator: {
		PermissionManageShifts,
		PermissionPublishShifts,
		PermissionViewTodayBoard,
		PermissionReviewRequests,
		PermissionManageUsers,
		PermissionManageWorkRoles,
		PermissionManageSettings,
	},
	RoleEmployee: {},
}

func HasPermission(role Role, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// Require is the single capability enforcement point used by services.
func Require(actor Actor, permission Permission) error {
	if !HasPermission(actor.Role, permission) {
		return ErrForbidden
	}
	return nil
}
