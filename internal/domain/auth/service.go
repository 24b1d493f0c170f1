package auth

import (
	"context"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)
	Verify(ctx context.Context, identity user.Identity) (user.UserResponse, error)
}
