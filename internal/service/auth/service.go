package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/metrics"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	database.Transactor
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
	clock            clock.Clock
	allowAdminSignup bool
}

func NewAuthService(
	transactor database.Transactor,
	userRepository user.UserRepository,
	employeeRepository employee.EmployeeRepository,
	jwtService jwt.Service,
	clk clock.Clock,
	allowAdminSignup bool,
) auth.AuthService {
	return &AuthServiceImpl{
		Transactor:         transactor,
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		clock:              clk,
		allowAdminSignup:   allowAdminSignup,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			metrics.LoginAttempts.WithLabelValues("failure").Inc()
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	resp, err := a.issue(userData)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	return resp, nil
}

// Signup implements auth.AuthService.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}
	if req.Role == user.RoleAdmin && !a.allowAdminSignup {
		return auth.AuthResponse{}, auth.ErrAdminSignupDisabled
	}

	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	if exists {
		return auth.AuthResponse{}, auth.ErrUserExists
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = a.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err = a.UserRepository.Create(txCtx, user.User{
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			PasswordHash: hashed,
			Role:         req.Role,
		})
		if err != nil {
			return err
		}

		if created.Role == user.RoleEmployee {
			profile := employee.NewProfile(created.ID, clock.DateString(a.clock.Now()))
			if _, err := a.EmployeeRepository.Create(txCtx, profile); err != nil {
				return fmt.Errorf("failed to provision employee profile: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		// Lost a race with a concurrent signup for the same address.
		if errors.Is(err, user.ErrUserEmailExists) {
			return auth.AuthResponse{}, auth.ErrUserExists
		}
		return auth.AuthResponse{}, err
	}

	return a.issue(created)
}

// Verify implements auth.AuthService.
func (a *AuthServiceImpl) Verify(ctx context.Context, identity user.Identity) (user.UserResponse, error) {
	found, err := a.UserRepository.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, auth.ErrInvalidToken
		}
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(found), nil
}

func (a *AuthServiceImpl) issue(u user.User) (auth.AuthResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(u)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return auth.AuthResponse{
		User:      user.NewUserResponse(u),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
