package auth

import (
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

const minPasswordLength = 6

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.TrimSpace(r.Email)
	if validator.IsEmpty(r.Email) || r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Email and password are required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SignupRequest struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      user.Role `json:"role"`
}

func (r *SignupRequest) Validate() error {
	var errs validator.ValidationErrors

	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)

	if validator.IsEmpty(r.FirstName) || validator.IsEmpty(r.LastName) || validator.IsEmpty(r.Email) || r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "fields",
			Message: "All fields are required",
		})
		return errs
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Invalid email format",
		})
	}
	if len(r.Password) < minPasswordLength {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password must be at least 6 characters",
		})
	}

	if r.Role == "" {
		r.Role = user.RoleEmployee
	}
	if !r.Role.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "Invalid role",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AuthResponse is returned by login and signup
type AuthResponse struct {
	User      user.UserResponse `json:"user"`
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expiresAt"`
}
