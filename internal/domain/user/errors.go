package user

import "errors"

var (
	ErrUserNotFound           = errors.New("User not found")
	ErrUserEmailExists        = errors.New("User with this email already exists")
	ErrAdminAccessRequired    = errors.New("Admin access required")
	ErrEmployeeAccessRequired = errors.New("Employee access required")
	ErrAccessDenied           = errors.New("Access denied")
)
