package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

// RequireRole allows callers whose role is one of roles.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := user.IdentityFromContext(r.Context())
			if !ok {
				response.HandleError(w, auth.ErrTokenMissing)
				return
			}

			if err := user.Authorize(identity, roles...); err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin requires admin role
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(user.RoleAdmin)(next)
}

// RequireEmployee requires employee role
func RequireEmployee(next http.Handler) http.Handler {
	return RequireRole(user.RoleEmployee)(next)
}
