package attendance

import (
	"strings"

	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

const (
	DefaultHistoryLimit = 30
	MaxHistoryLimit     = 365
)

type ClockOutRequest struct {
	AttendanceID string `json:"attendanceId"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	r.AttendanceID = strings.TrimSpace(r.AttendanceID)
	if r.AttendanceID == "" {
		errs = append(errs, validator.ValidationError{Field: "attendanceId", Message: "Attendance ID is required"})
	} else if !validator.IsValidUUID(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{Field: "attendanceId", Message: "Invalid attendance ID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ClampLimit applies the history page size rules.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}
