package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/document"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

var (
	badRequestErrors = []error{
		attendance.ErrClockOutBeforeClockIn,
		employee.ErrNoFieldsToUpdate,
	}
	unauthorizedErrors = []error{
		auth.ErrInvalidCredentials,
		auth.ErrTokenMissing,
		auth.ErrInvalidToken,
	}
	forbiddenErrors = []error{
		user.ErrAccessDenied,
		user.ErrAdminAccessRequired,
		user.ErrEmployeeAccessRequired,
		auth.ErrAdminSignupDisabled,
	}
	notFoundErrors = []error{
		user.ErrUserNotFound,
		employee.ErrEmployeeNotFound,
		employee.ErrProfileNotFound,
		attendance.ErrAttendanceNotFound,
		leave.ErrLeaveNotFound,
		leave.ErrLeaveNotDeletable,
		salary.ErrSalaryNotFound,
		document.ErrDocumentNotFound,
		document.ErrFileMissing,
	}
	conflictErrors = []error{
		attendance.ErrAlreadyClockedIn,
		attendance.ErrAlreadyClockedOut,
		auth.ErrUserExists,
		user.ErrUserEmailExists,
		salary.ErrSalaryExists,
		leave.ErrLeaveAlreadyProcessed,
	}
)

// matches returns the sentinel in targets that err wraps, if any.
func matches(err error, targets []error) (error, bool) {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target, true
		}
	}
	return nil, false
}

// HandleError maps domain errors to HTTP responses. Anything unrecognised is
// logged and reported as a 500 without detail.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Message(), validationErrs.ToMap())
		return
	}

	if target, ok := matches(err, badRequestErrors); ok {
		BadRequest(w, target.Error(), nil)
		return
	}
	if target, ok := matches(err, unauthorizedErrors); ok {
		Unauthorized(w, target.Error())
		return
	}
	if target, ok := matches(err, forbiddenErrors); ok {
		Forbidden(w, target.Error())
		return
	}
	if target, ok := matches(err, notFoundErrors); ok {
		NotFound(w, target.Error())
		return
	}
	if target, ok := matches(err, conflictErrors); ok {
		Conflict(w, target.Error())
		return
	}

	slog.Error("unhandled error", "error", err)
	InternalServerError(w, "Internal server error")
}
