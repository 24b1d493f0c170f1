package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrUserExists          = errors.New("User already exists")
	ErrAdminSignupDisabled = errors.New("Admin registration is disabled")
	ErrTokenMissing        = errors.New("Access token required")
	ErrInvalidToken        = errors.New("Invalid or expired token")
)
